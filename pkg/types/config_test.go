package types

import "testing"

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Backend: BackendSQLite, DataDir: "/tmp/data"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config failed validation: %v", err)
	}

	cfg = Config{Backend: "", DataDir: "/tmp/data"}
	if err := cfg.Validate(); err != ErrBackendEmpty {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}

	cfg = Config{Backend: "postgres"}
	if err := cfg.Validate(); err != ErrBackendUnknown {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestConfig_ValidateEmptyDataDir(t *testing.T) {
	// DataDir is optional; the backend defaults it to the current directory.
	cfg := Config{Backend: BackendSQLite}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config without DataDir should validate, got %v", err)
	}
}
