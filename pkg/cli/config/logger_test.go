package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/cli/config"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "console info", level: "info", format: "console"},
		{name: "json debug", level: "debug", format: "json"},
		{name: "warn level", level: "warn", format: "console"},
		{name: "error level", level: "error", format: "json"},
		{name: "defaults when empty", level: "", format: ""},
		{name: "invalid level", level: "verbose", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewLoggerForTest(tt.level, tt.format, "-")
			closer, err := cfg.Configure()

			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}

			gt.NoError(t, err).Required()
			gt.Value(t, closer).NotNil()
			closer()
		})
	}
}

func TestLoggerConfigure_FileOutput(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "teamboard.log")

	cfg := config.NewLoggerForTest("info", "json", logPath)
	closer, err := cfg.Configure()
	gt.NoError(t, err).Required()

	logging.Default().Info("file output check", "key", "value")
	closer()

	data, err := os.ReadFile(logPath)
	gt.NoError(t, err).Required()
	gt.Value(t, len(data) > 0).Equal(true)
}

func TestRepositoryConfigure_Memory(t *testing.T) {
	cfg := config.NewRepositoryForTest("memory", "", "")
	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err).Required()
	gt.Value(t, repo).NotNil()
	gt.NoError(t, repo.Close())
}

func TestRepositoryConfigure_UnknownBackend(t *testing.T) {
	cfg := config.NewRepositoryForTest("postgres", "", "")
	_, err := cfg.Configure(context.Background())
	gt.Error(t, err).Is(config.ErrUnknownBackend)
}

func TestRepositoryConfigure_FirestoreWithoutProject(t *testing.T) {
	cfg := config.NewRepositoryForTest("firestore", "", "")
	_, err := cfg.Configure(context.Background())
	gt.Error(t, err).Is(config.ErrMissingProjectID)
}
