package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/certificate"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const folder = "portfolio/backups"

// Schemas exported by a backup, keyed in the snapshot by table name.
var Schemas = []schema.Schema{
	profile.Schema,
	profile.ExperienceSchema,
	profile.InterestSchema,
	profile.ServiceSchema,
	project.Schema,
	certificate.Schema,
}

// Snapshot is the exported content. Rows use wire names, so write-only
// fields such as the profile password are never part of a backup.
type Snapshot struct {
	TakenAt time.Time                   `json:"taken_at"`
	Tables  map[string][]map[string]any `json:"tables"`
}

type BackupUseCase struct {
	client   record.Client
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(client record.Client, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		client:   client,
		uploader: uploader,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type BackupOutput struct {
	URL      string
	PublicID string
	Rows     int
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting content backup...")

	snap, rows, err := uc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}

	publicID := fmt.Sprintf("backup-%s.json", snap.TakenAt.Format("2006-01-02_15-04-05"))
	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(body), folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload backup", err)
		return nil, fmt.Errorf("upload backup: %w", err)
	}

	uc.logger.Info("Content backup completed and uploaded successfully",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
		zap.Int("rows", rows),
	)
	return &BackupOutput{URL: uploadURL, PublicID: publicID, Rows: rows}, nil
}

// Snapshot reads every table. Any failed read aborts the backup.
func (uc *BackupUseCase) Snapshot(ctx context.Context) (*Snapshot, int, error) {
	snap := &Snapshot{TakenAt: uc.now(), Tables: make(map[string][]map[string]any, len(Schemas))}
	total := 0
	for _, s := range Schemas {
		rows, err := uc.client.Select(ctx, s.Table, record.All())
		if err != nil {
			return nil, 0, fmt.Errorf("read %s for backup: %w", s.Table, err)
		}
		snap.Tables[s.Table] = s.EncodeAll(rows)
		total += len(rows)
	}
	return snap, total, nil
}
