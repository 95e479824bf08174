package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
)

const maxPlayerNameLength = 200

type PlayerService interface {
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	CountPlayers(ctx context.Context) (int, error)
	ListPlayers(ctx context.Context) ([]*models.Player, error)
	// DeletePlayers removes every match and then every player.
	DeletePlayers(ctx context.Context) error
}

type playerService struct {
	db         *sql.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	events     EventPublisher
	logger     *slog.Logger
}

func NewPlayerService(
	db *sql.DB,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	events EventPublisher,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		db:         db,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		events:     orNopPublisher(events),
		logger:     orDefaultLogger(logger),
	}
}

func (s *playerService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, ErrPlayerNameRequired)
	}
	if utf8.RuneCountInString(name) > maxPlayerNameLength {
		return nil, fmt.Errorf("%w: %w (max %d characters)", ErrValidationFailed, ErrPlayerNameTooLong, maxPlayerNameLength)
	}

	player := &models.Player{Name: name}
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		if err := s.playerRepo.Create(ctx, tx, player); err != nil {
			return storeError("register player", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "player registered", slog.Int("player_id", player.ID), slog.String("name", player.Name))
	s.events.Publish(brackets.EventPlayerRegistered, player)
	return player, nil
}

func (s *playerService) CountPlayers(ctx context.Context) (int, error) {
	var count int
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		var err error
		if count, err = s.playerRepo.Count(ctx, tx); err != nil {
			return storeError("count players", err)
		}
		return nil
	})
	return count, err
}

func (s *playerService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	var players []*models.Player
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		var err error
		if players, err = s.playerRepo.List(ctx, tx); err != nil {
			return storeError("list players", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (s *playerService) DeletePlayers(ctx context.Context) error {
	var matchesDeleted, playersDeleted int64
	err := runInTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		var err error
		if matchesDeleted, err = s.matchRepo.DeleteAll(ctx, tx); err != nil {
			return storeError("delete matches", err)
		}
		if playersDeleted, err = s.playerRepo.DeleteAll(ctx, tx); err != nil {
			return storeError("delete players", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "players deleted", slog.Int64("players", playersDeleted), slog.Int64("matches", matchesDeleted))
	s.events.Publish(brackets.EventPlayersDeleted, map[string]int64{"players": playersDeleted, "matches": matchesDeleted})
	return nil
}
