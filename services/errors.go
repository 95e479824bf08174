package services

import (
	"errors"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/db"
)

var (
	// Store could not be reached; fatal to the calling operation.
	ErrStoreUnavailable = db.ErrUnavailable

	// Input rejected before touching the store.
	ErrValidationFailed   = errors.New("validation failed")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrPlayerNameTooLong  = errors.New("player name is too long")

	// Match rejected by validation or by the store's constraints.
	ErrConstraintViolation = errors.New("constraint violation")
	ErrSameWinnerAndLoser  = errors.New("winner and loser must be different players")
	ErrInvalidPlayerID     = errors.New("player id must be positive")

	// Pairing requested for an odd number of players.
	ErrOddPlayerCount = brackets.ErrOddPlayerCount

	ErrExportDisabled = errors.New("snapshot export is not configured")
)
