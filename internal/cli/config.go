package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/audiograms/internal/paths"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "AUDIOGRAM"

	journalFileName = "journal.db"

	cfgKeyBaseURL     = "base_url"
	cfgKeyUsername    = "username"
	cfgKeyPassword    = "password"
	cfgKeyTimeout     = "timeout"
	cfgKeyLogMode     = "log_mode"
	cfgKeyJournalPath = "journal_path"
	cfgKeyDataDir     = "data_dir"
)

// loadConfig builds the client configuration from, in increasing
// precedence: defaults, config.yaml in configDir, .env files (configDir
// then the working directory), AUDIOGRAM_* environment variables and the
// --log-mode flag. A missing config.yaml or .env is not an error.
func loadConfig(configDir string) (types.Config, error) {
	if err := loadEnvFiles(filepath.Join(configDir, envFileName), envFileName); err != nil {
		return types.Config{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyBaseURL, types.DefaultBaseURL)
	v.SetDefault(cfgKeyUsername, "")
	v.SetDefault(cfgKeyPassword, "")
	v.SetDefault(cfgKeyTimeout, types.DefaultTimeout)
	v.SetDefault(cfgKeyLogMode, types.DefaultLogMode)
	v.SetDefault(cfgKeyJournalPath, "")
	v.SetDefault(cfgKeyDataDir, "")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if flags.logMode != "" {
		cfg.LogMode = flags.logMode
	}
	if cfg.JournalPath == "" {
		dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
		if err != nil {
			return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.JournalPath = filepath.Join(dataDir, journalFileName)
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadEnvFiles loads each .env file that exists. Variables already set in
// the environment are left alone.
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}
