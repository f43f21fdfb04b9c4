package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/poll"
)

// Storage backends
const (
	DatabaseMemory   = "memory"
	DatabaseBolt     = "bolt"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DataDir      string
	AdminKey     string

	MaxVotes     int
	MaxPerOption int
	OptionLabels []string

	PollMode    poll.Mode
	PollActive  bool
	LiveUpdates bool
}

// LoadDotEnv loads variables from a .env file if one exists. Variables
// already set in the environment win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var (
		cfg          Config
		optionLabels string
		pollMode     string
		pollActive   string
		liveUpdates  string
	)

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Storage backend (memory, bolt, sqlite or postgres)")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Data directory for the bolt backend")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key (prefer env)")

	// Poll config
	fs.IntVar(&cfg.MaxVotes, "max-votes", 0, "Total vote limit")
	fs.IntVar(&cfg.MaxPerOption, "max-per-option", -1, "Per-option vote limit (0 derives max-votes / options)")
	fs.StringVar(&optionLabels, "options", "", "Comma separated option labels")
	fs.StringVar(&pollMode, "mode", "", "Voting mode (gated or open)")
	fs.StringVar(&pollActive, "active", "", "Initial poll-active flag (true or false)")
	fs.StringVar(&liveUpdates, "live", "", "Enable live result updates (true or false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseMemory
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}

	switch cfg.DatabaseType {
	case DatabaseMemory:
	case DatabaseBolt:
		if cfg.DataDir == "" {
			return Config{}, errors.New("data directory required for bolt (use --data-dir or DATA_DIR env)")
		}
	case DatabaseSQLite, DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown DATABASE_TYPE %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if cfg.MaxVotes == 0 {
		maxVotes, err := envInt("MAX_VOTES", 100)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxVotes = maxVotes
	}
	if cfg.MaxVotes <= 0 {
		return Config{}, errors.New("MAX_VOTES must be positive")
	}

	if cfg.MaxPerOption < 0 {
		perOption, err := envInt("MAX_PER_OPTION", 0)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxPerOption = perOption
	}
	if cfg.MaxPerOption < 0 {
		return Config{}, errors.New("MAX_PER_OPTION must not be negative")
	}

	if optionLabels == "" {
		optionLabels = os.Getenv("OPTION_LABELS")
	}
	if optionLabels == "" {
		cfg.OptionLabels = append([]string(nil), poll.DefaultLabels...)
	} else {
		for _, label := range strings.Split(optionLabels, ",") {
			cfg.OptionLabels = append(cfg.OptionLabels, strings.TrimSpace(label))
		}
	}

	if pollMode == "" {
		pollMode = os.Getenv("POLL_MODE")
	}
	if pollMode == "" {
		pollMode = string(poll.ModeGated)
	}
	mode, err := poll.ParseMode(pollMode)
	if err != nil {
		return Config{}, err
	}
	cfg.PollMode = mode

	if cfg.PollActive, err = boolSetting(pollActive, "POLL_ACTIVE_DEFAULT", false); err != nil {
		return Config{}, err
	}
	if cfg.LiveUpdates, err = boolSetting(liveUpdates, "LIVE_UPDATES", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", name)
	}
	return n, nil
}

func boolSetting(flagValue, env string, def bool) (bool, error) {
	s := flagValue
	if s == "" {
		s = os.Getenv(env)
	}
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q", env, s)
	}
	return b, nil
}
