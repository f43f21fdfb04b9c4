// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-vote/poll"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY", "secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("expected memory backend, got %s", cfg.DatabaseType)
	}
	if cfg.MaxVotes != 100 {
		t.Errorf("expected max votes 100, got %d", cfg.MaxVotes)
	}
	if cfg.MaxPerOption != 0 {
		t.Errorf("expected derived per-option limit (0), got %d", cfg.MaxPerOption)
	}
	if len(cfg.OptionLabels) != 4 || cfg.OptionLabels[0] != "Option A" || cfg.OptionLabels[3] != "Option D" {
		t.Errorf("unexpected default labels: %v", cfg.OptionLabels)
	}
	if cfg.PollMode != poll.ModeGated {
		t.Errorf("expected gated mode, got %s", cfg.PollMode)
	}
	if cfg.PollActive {
		t.Error("expected poll inactive by default")
	}
	if !cfg.LiveUpdates {
		t.Error("expected live updates enabled by default")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ADMIN_KEY", "test-key")
	os.Setenv("MAX_VOTES", "40")
	os.Setenv("MAX_PER_OPTION", "7")
	os.Setenv("OPTION_LABELS", "Red, Green ,Blue")
	os.Setenv("POLL_MODE", "open")
	os.Setenv("POLL_ACTIVE_DEFAULT", "true")
	os.Setenv("LIVE_UPDATES", "false")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.MaxVotes != 40 || cfg.MaxPerOption != 7 {
		t.Errorf("unexpected limits %d/%d", cfg.MaxVotes, cfg.MaxPerOption)
	}
	if len(cfg.OptionLabels) != 3 || cfg.OptionLabels[1] != "Green" {
		t.Errorf("unexpected labels %v", cfg.OptionLabels)
	}
	if cfg.PollMode != poll.ModeOpen {
		t.Errorf("expected open mode, got %s", cfg.PollMode)
	}
	if !cfg.PollActive || cfg.LiveUpdates {
		t.Errorf("unexpected flags active=%v live=%v", cfg.PollActive, cfg.LiveUpdates)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	os.Setenv("MAX_VOTES", "50")
	os.Setenv("POLL_MODE", "open")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{
		"-p", "8080", "-t", "sqlite", "-d", "file:test.db", "-admin-key", "k",
		"-max-votes", "4", "-max-per-option", "1", "-mode", "gated", "-active", "true",
	})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.MaxVotes != 4 || cfg.MaxPerOption != 1 {
		t.Errorf("CLI should override env: got limits %d/%d", cfg.MaxVotes, cfg.MaxPerOption)
	}
	if cfg.PollMode != poll.ModeGated || !cfg.PollActive {
		t.Errorf("CLI should override env: got mode %s active %v", cfg.PollMode, cfg.PollActive)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing admin key", nil, nil},
		{"bad port", map[string]string{"ADMIN_KEY": "k", "PORT": "abc"}, nil},
		{"unknown backend", map[string]string{"ADMIN_KEY": "k", "DATABASE_TYPE": "mongo"}, nil},
		{"postgres without url", map[string]string{"ADMIN_KEY": "k", "DATABASE_TYPE": "postgres"}, nil},
		{"bolt without data dir", map[string]string{"ADMIN_KEY": "k", "DATABASE_TYPE": "bolt"}, nil},
		{"negative max votes", map[string]string{"ADMIN_KEY": "k"}, []string{"-max-votes", "-3"}},
		{"negative per option", map[string]string{"ADMIN_KEY": "k", "MAX_PER_OPTION": "-2"}, nil},
		{"unknown mode", map[string]string{"ADMIN_KEY": "k", "POLL_MODE": "sometimes"}, nil},
		{"bad active flag", map[string]string{"ADMIN_KEY": "k", "POLL_ACTIVE_DEFAULT": "maybe"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ADMIN_KEY=from-file\nMAX_VOTES=12\n"), 0600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("MAX_VOTES", "20")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminKey != "from-file" {
		t.Errorf("expected admin key from .env, got %q", cfg.AdminKey)
	}
	// Existing environment wins over the file
	if cfg.MaxVotes != 20 {
		t.Errorf("expected MAX_VOTES 20 from env, got %d", cfg.MaxVotes)
	}
}
