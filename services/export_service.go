package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
)

type ExportService interface {
	// ExportSnapshot uploads the current standings, and the next round's pairings
	// when the field is even, as JSON objects.
	ExportSnapshot(ctx context.Context) (*models.SnapshotExport, error)
}

type exportService struct {
	tournament TournamentService
	uploader   storage.FileUploader
	logger     *slog.Logger
	now        func() time.Time
}

// NewExportService accepts a nil uploader; ExportSnapshot then returns ErrExportDisabled.
func NewExportService(tournament TournamentService, uploader storage.FileUploader, logger *slog.Logger) ExportService {
	return &exportService{
		tournament: tournament,
		uploader:   uploader,
		logger:     orDefaultLogger(logger),
		now:        time.Now,
	}
}

func (s *exportService) ExportSnapshot(ctx context.Context) (*models.SnapshotExport, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	standings, err := s.tournament.PlayerStandings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := brackets.NewSwissGenerator().GeneratePairings(standings)
	if err != nil && !errors.Is(err, brackets.ErrOddPlayerCount) {
		return nil, err
	}

	exportedAt := s.now().UTC()
	prefix := fmt.Sprintf("snapshots/%d", exportedAt.UnixNano())
	export := &models.SnapshotExport{
		StandingsKey: prefix + "/standings.json",
		PlayerCount:  len(standings),
		ExportedAt:   exportedAt,
	}
	if pairings != nil {
		export.PairingsKey = prefix + "/pairings.json"
	}

	uploaded := make(chan string, 2)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.uploadJSON(gCtx, export.StandingsKey, map[string]interface{}{"standings": standings, "exported_at": exportedAt})
		if err != nil {
			return err
		}
		uploaded <- export.StandingsKey
		export.StandingsURL = url
		return nil
	})
	if pairings != nil {
		g.Go(func() error {
			url, err := s.uploadJSON(gCtx, export.PairingsKey, map[string]interface{}{"pairings": pairings, "exported_at": exportedAt})
			if err != nil {
				return err
			}
			uploaded <- export.PairingsKey
			export.PairingsURL = url
			return nil
		})
	}
	err = g.Wait()
	close(uploaded)

	if err != nil {
		// do not leave half a snapshot behind
		for key := range uploaded {
			if delErr := s.uploader.Delete(ctx, key); delErr != nil {
				s.logger.WarnContext(ctx, "failed to remove partial snapshot", slog.String("key", key), slog.Any("error", delErr))
			}
		}
		return nil, fmt.Errorf("export snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "snapshot exported", slog.String("standings_key", export.StandingsKey), slog.String("pairings_key", export.PairingsKey), slog.Int("players", export.PlayerCount))
	return export, nil
}

func (s *exportService) uploadJSON(ctx context.Context, key string, body interface{}) (string, error) {
	data, err := json.MarshalIndent(body, "", "\t")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", key, err)
	}
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
