package backup

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/internal/mocks"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
}

func TestBackup_UploadsDump(t *testing.T) {
	uploader := &mocks.Uploader{}
	uploader.On("Folder").Return("portfolio")
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(r io.Reader) bool {
		b, _ := io.ReadAll(r)
		return string(b) == "DUMP"
	}), "portfolio/backups", "backup-2026-03-04_05-06-07").Return("https://cdn/backup", nil)

	var gotDSN string
	dump := func(_ context.Context, dsn string) ([]byte, error) {
		gotDSN = dsn
		return []byte("DUMP"), nil
	}

	uc := NewBackupUseCase("postgres://db", dump, uploader, logger.NewNopLogger())
	uc.now = fixedClock

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "postgres://db", gotDSN)
	assert.Equal(t, "https://cdn/backup", out.URL)
	assert.Equal(t, "portfolio/backups/backup-2026-03-04_05-06-07", out.PublicID)
	uploader.AssertExpectations(t)
}

func TestBackup_DumpFailure(t *testing.T) {
	uploader := &mocks.Uploader{}
	dump := func(context.Context, string) ([]byte, error) {
		return nil, errors.New("pg_dump: connection refused")
	}

	uc := NewBackupUseCase("postgres://db", dump, uploader, logger.NewNopLogger())
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, apperror.ErrInternal)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackup_UploadFailure(t *testing.T) {
	uploader := &mocks.Uploader{}
	uploader.On("Folder").Return("portfolio")
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota"))

	dump := func(context.Context, string) ([]byte, error) { return []byte("x"), nil }

	uc := NewBackupUseCase("dsn", dump, uploader, logger.NewNopLogger())
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, apperror.ErrInternal)
}
