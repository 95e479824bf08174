package services

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

// TournamentService derives standings and pairings. It keeps no state between
// calls; every call reads a fresh snapshot.
type TournamentService interface {
	PlayerStandings(ctx context.Context) ([]models.Standing, error)
	// SwissPairings fails with *brackets.OddPlayerCountError for an odd field.
	SwissPairings(ctx context.Context) ([]models.Pairing, error)
}

type tournamentService struct {
	db         *sql.DB
	dialect    db.Dialect
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	generator  brackets.PairingGenerator
	logger     *slog.Logger
}

func NewTournamentService(
	conn *sql.DB,
	dialect db.Dialect,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	generator brackets.PairingGenerator,
	logger *slog.Logger,
) TournamentService {
	if generator == nil {
		generator = brackets.NewSwissGenerator()
	}
	return &tournamentService{
		db:         conn,
		dialect:    dialect,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		generator:  generator,
		logger:     orDefaultLogger(logger),
	}
}

func (s *tournamentService) PlayerStandings(ctx context.Context) ([]models.Standing, error) {
	players, matches, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.CalculateStandings(players, matches), nil
}

func (s *tournamentService) SwissPairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := s.generator.GeneratePairings(standings)
	if err != nil {
		s.logger.WarnContext(ctx, "pairing failed", slog.String("generator", s.generator.GetName()), slog.Int("players", len(standings)), slog.Any("error", err))
		return nil, err
	}
	return pairings, nil
}

// snapshot reads players and matches inside one transaction so both lists
// describe the same moment.
func (s *tournamentService) snapshot(ctx context.Context) ([]models.Player, []models.Match, error) {
	var players []*models.Player
	var matches []*models.Match
	err := runInTx(ctx, s.db, s.dialect.SnapshotTxOptions(), func(tx *sql.Tx) error {
		var err error
		if players, err = s.playerRepo.List(ctx, tx); err != nil {
			return storeError("read players", err)
		}
		if matches, err = s.matchRepo.List(ctx, tx); err != nil {
			return storeError("read matches", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	playerValues := make([]models.Player, len(players))
	for i, p := range players {
		playerValues[i] = *p
	}
	matchValues := make([]models.Match, len(matches))
	for i, m := range matches {
		matchValues[i] = *m
	}
	return playerValues, matchValues, nil
}
