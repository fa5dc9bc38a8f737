package backup

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/apperror"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

const backupTimeout = 10 * time.Minute

// DumpFunc produces a restorable dump of the database behind dsn.
type DumpFunc func(ctx context.Context, dsn string) ([]byte, error)

// PgDump shells out to pg_dump in custom format.
func PgDump(ctx context.Context, dsn string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "pg_dump", "--dbname="+dsn, "--format=c")

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pg_dump failed: %w: %s", err, stderr.String())
	}
	return out.Bytes(), nil
}

type BackupUseCase struct {
	dsn      string
	dump     DumpFunc
	uploader service.Uploader
	logger   logger.Logger
	now      func() time.Time
}

func NewBackupUseCase(dsn string, dump DumpFunc, uploader service.Uploader, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		dsn:      dsn,
		dump:     dump,
		uploader: uploader,
		logger:   log,
		now:      time.Now,
	}
}

type BackupOutput struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

func (uc *BackupUseCase) Execute(ctx context.Context) (*BackupOutput, error) {
	uc.logger.Info("Starting database backup...")

	data, err := uc.dump(ctx, uc.dsn)
	if err != nil {
		return nil, apperror.NewInternal("database dump failed", err)
	}

	timestamp := uc.now().UTC().Format("2006-01-02_15-04-05")
	folder := uc.uploader.Folder() + "/backups"
	publicID := fmt.Sprintf("backup-%s", timestamp)

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(data), folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload backup", err)
	}

	uc.logger.Info("Database backup completed and uploaded successfully",
		zap.String("url", url),
		zap.String("public_id", folder+"/"+publicID),
		zap.Int("bytes", len(data)),
	)
	return &BackupOutput{PublicID: folder + "/" + publicID, URL: url}, nil
}

// Trigger runs Execute detached from the request so the admin call returns
// immediately. The outcome is only logged.
func (uc *BackupUseCase) Trigger() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()
		if _, err := uc.Execute(ctx); err != nil {
			uc.logger.Error("Database backup failed", err)
		}
	}()
}
