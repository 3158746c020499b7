package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/cli"
)

func TestRun_ValidateCommand_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "workspaces.toml")
	content := `
[[workspace]]
id = "test-ws"
name = "Test Workspace"

  [[workspace.member]]
  id = "U001"
  name = "alice"
  real_name = "Alice Adams"

  [[workspace.member]]
  id = "U002"
  name = "bob"
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"teamboard", "validate", "--workspace-config", configPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "workspaces.toml")

	// Invalid: member listed twice
	content := `
[[workspace]]
id = "test-ws"
name = "Test Workspace"

  [[workspace.member]]
  id = "U001"
  name = "alice"

  [[workspace.member]]
  id = "U001"
  name = "duplicate"
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"teamboard", "validate", "--workspace-config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nonexistent.toml")

	err := cli.Run(context.Background(), []string{"teamboard", "validate", "--workspace-config", configPath}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_DuplicateWorkspaceID(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "workspaces.toml")

	content := `
[[workspace]]
id = "duplicate-ws"
name = "Workspace One"

[[workspace]]
id = "duplicate-ws"
name = "Workspace Two"
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"teamboard", "validate", "--workspace-config", configPath}, "test")
	gt.Value(t, err).NotNil()
}
