package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

type MatchService interface {
	ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	DeleteMatches(ctx context.Context) error
}

type matchService struct {
	db        *sql.DB
	matchRepo repositories.MatchRepository
	events    EventPublisher
	logger    *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	events EventPublisher,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:        db,
		matchRepo: matchRepo,
		events:    orNopPublisher(events),
		logger:    orDefaultLogger(logger),
	}
}

// ReportMatch records that winnerID beat loserID. Both players must exist; the
// store enforces that and a violation comes back as ErrConstraintViolation.
func (s *matchService) ReportMatch(ctx context.Context, winnerID, loserID int) (*models.Match, error) {
	if winnerID <= 0 || loserID <= 0 {
		return nil, fmt.Errorf("%w: %w (winner %d, loser %d)", ErrConstraintViolation, ErrInvalidPlayerID, winnerID, loserID)
	}
	if winnerID == loserID {
		return nil, fmt.Errorf("%w: %w (player %d)", ErrConstraintViolation, ErrSameWinnerAndLoser, winnerID)
	}

	match := &models.Match{WinnerID: winnerID, LoserID: loserID}
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		err := s.matchRepo.Create(ctx, tx, match)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repositories.ErrMatchPlayerInvalid), errors.Is(err, repositories.ErrMatchSamePlayer):
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		default:
			return storeError("report match", err)
		}
	})
	if err != nil {
		if errors.Is(err, ErrConstraintViolation) {
			s.logger.WarnContext(ctx, "match rejected", slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID), slog.Any("error", err))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "match reported", slog.Int("match_id", match.ID), slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID))
	s.events.Publish(brackets.EventMatchReported, match)
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	var matches []*models.Match
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		var err error
		if matches, err = s.matchRepo.List(ctx, tx); err != nil {
			return storeError("list matches", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *matchService) DeleteMatches(ctx context.Context) error {
	var deleted int64
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		var err error
		if deleted, err = s.matchRepo.DeleteAll(ctx, tx); err != nil {
			return storeError("delete matches", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "matches deleted", slog.Int64("matches", deleted))
	s.events.Publish(brackets.EventMatchesDeleted, map[string]int64{"matches": deleted})
	return nil
}
