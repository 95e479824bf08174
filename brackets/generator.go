package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

// ErrOddPlayerCount matches every *OddPlayerCountError.
var ErrOddPlayerCount = errors.New("odd number of players")

// OddPlayerCountError is returned when a round cannot be paired without a bye.
type OddPlayerCountError struct {
	Count int
}

func (e *OddPlayerCountError) Error() string {
	return fmt.Sprintf("cannot pair %d players: %v", e.Count, ErrOddPlayerCount)
}

func (e *OddPlayerCountError) Is(target error) bool {
	return target == ErrOddPlayerCount
}

// PairingGenerator builds the games of the next round from the current standings.
type PairingGenerator interface {
	GeneratePairings(standings []models.Standing) ([]models.Pairing, error)

	GetName() string
}
