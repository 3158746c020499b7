package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrDuplicateWorkspace = goerr.New("duplicate workspace ID")
	ErrDuplicateMember    = goerr.New("duplicate member ID")
	ErrMissingWorkspaceID = goerr.New("workspace ID is required")
	ErrMissingName        = goerr.New("name is required")
	ErrUnknownBackend     = goerr.New("unknown repository backend")
	ErrMissingProjectID   = goerr.New("firestore-project-id is required for the firestore backend")
)
