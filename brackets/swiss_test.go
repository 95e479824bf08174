package brackets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
)

func TestSwissGeneratorPairsNeighbours(t *testing.T) {
	cases := []struct {
		name      string
		standings []models.Standing
		want      []models.Pairing
	}{
		{
			name:      "no players",
			standings: nil,
			want:      []models.Pairing{},
		},
		{
			name: "fresh tournament",
			standings: []models.Standing{
				{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"},
			},
			want: []models.Pairing{
				{Player1ID: 1, Player1Name: "A", Player2ID: 2, Player2Name: "B"},
				{Player1ID: 3, Player1Name: "C", Player2ID: 4, Player2Name: "D"},
			},
		},
		{
			name: "follows rank order not id order",
			standings: []models.Standing{
				{ID: 1, Name: "A", Wins: 1, Matches: 1},
				{ID: 3, Name: "C", Wins: 1, Matches: 1},
				{ID: 2, Name: "B", Wins: 0, Matches: 1},
				{ID: 4, Name: "D", Wins: 0, Matches: 1},
			},
			want: []models.Pairing{
				{Player1ID: 1, Player1Name: "A", Player2ID: 3, Player2Name: "C"},
				{Player1ID: 2, Player1Name: "B", Player2ID: 4, Player2Name: "D"},
			},
		},
	}
	gen := NewSwissGenerator()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := gen.GeneratePairings(c.standings)
			if err != nil {
				t.Fatalf("GeneratePairings: %v", err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("GeneratePairings = %+v; want %+v", got, c.want)
			}
		})
	}
}

func TestSwissGeneratorEveryPlayerOnce(t *testing.T) {
	for n := 0; n <= 16; n += 2 {
		standings := make([]models.Standing, n)
		for i := range standings {
			standings[i] = models.Standing{ID: 100 + i, Name: "p"}
		}
		pairings, err := NewSwissGenerator().GeneratePairings(standings)
		if err != nil {
			t.Fatalf("n=%d: GeneratePairings: %v", n, err)
		}
		if len(pairings) != n/2 {
			t.Errorf("n=%d: %d pairings; want %d", n, len(pairings), n/2)
		}
		seen := make(map[int]int)
		for _, p := range pairings {
			seen[p.Player1ID]++
			seen[p.Player2ID]++
		}
		for _, s := range standings {
			if seen[s.ID] != 1 {
				t.Errorf("n=%d: player %d paired %d times", n, s.ID, seen[s.ID])
			}
		}
	}
}

func TestSwissGeneratorOddCount(t *testing.T) {
	standings := []models.Standing{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}
	pairings, err := NewSwissGenerator().GeneratePairings(standings)
	if pairings != nil {
		t.Errorf("GeneratePairings returned %d pairings; want none", len(pairings))
	}
	if !errors.Is(err, ErrOddPlayerCount) {
		t.Fatalf("GeneratePairings error = %v; want ErrOddPlayerCount", err)
	}
	var oddErr *OddPlayerCountError
	if !errors.As(err, &oddErr) {
		t.Fatalf("GeneratePairings error %T is not *OddPlayerCountError", err)
	}
	if oddErr.Count != 3 {
		t.Errorf("Count = %d; want 3", oddErr.Count)
	}
}

func TestSwissGeneratorName(t *testing.T) {
	if got := NewSwissGenerator().GetName(); got != "Swiss" {
		t.Errorf("GetName = %q; want %q", got, "Swiss")
	}
}
