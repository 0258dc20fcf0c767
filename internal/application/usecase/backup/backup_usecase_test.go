package backup

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type captureUploader struct {
	folder, publicID string
	body             []byte
}

func (u *captureUploader) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	u.folder, u.publicID = folder, publicID
	u.body, _ = io.ReadAll(file)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func TestBackup_UploadsRedactedSnapshot(t *testing.T) {
	ctx := context.Background()
	client := persistence.NewMemoryRecordClient()
	_, err := client.Insert(ctx, profile.Table, record.Row{"name": "Ada", "password": "$2a$10$hash"})
	require.NoError(t, err)
	_, err = client.Insert(ctx, project.Table, record.Row{"title": "Site", "long_description": "Long"})
	require.NoError(t, err)

	up := &captureUploader{}
	uc := NewBackupUseCase(client, up, logger.NewNopLogger())
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) }

	out, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows)
	assert.Equal(t, "portfolio/backups", up.folder)
	assert.Equal(t, "backup-2024-05-01_10-30-00.json", up.publicID)
	assert.NotContains(t, string(up.body), "password")
	assert.NotContains(t, string(up.body), "$2a$10$hash")

	var snap Snapshot
	require.NoError(t, json.Unmarshal(up.body, &snap))
	assert.Len(t, snap.Tables, len(Schemas))
	require.Len(t, snap.Tables[project.Table], 1)
	assert.Equal(t, "Long", snap.Tables[project.Table][0]["longDescription"])
	assert.Empty(t, snap.Tables[profile.ServiceTable])
}

func TestBackup_StoreFailureAborts(t *testing.T) {
	up := &captureUploader{}
	uc := NewBackupUseCase(persistence.NewPlaceholderRecordClient(), up, logger.NewNopLogger())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Nil(t, up.body)
}
