package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/audiograms/internal/journal"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// configFile holds the structure written to config.yaml. The password is
// never written; it belongs in .env or AUDIOGRAM_PASSWORD.
type configFile struct {
	BaseURL     string `yaml:"base_url"`
	Username    string `yaml:"username,omitempty"`
	Timeout     string `yaml:"timeout"`
	LogMode     string `yaml:"log_mode"`
	JournalPath string `yaml:"journal_path,omitempty"`
}

type initOptions struct {
	baseURL  string
	username string
}

func newInitCmd() *cobra.Command {
	var opts initOptions
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration and create the journal",
		Long: `Init creates the configuration directory with a config.yaml (left alone
if it already exists) and the data directory holding the journal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.baseURL, "base-url", types.DefaultBaseURL, "admin API base URL")
	cmd.Flags().StringVar(&opts.username, "username", "", "admin API user")
	return cmd
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysErr(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, opts); err != nil {
		return sysErr(fmt.Errorf("write config: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return sysErr(err)
	}
	if err := j.Close(); err != nil {
		return sysErr(fmt.Errorf("close journal: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "journal: %s\n", cfg.JournalPath)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string, opts initOptions) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		BaseURL:  opts.baseURL,
		Username: opts.username,
		Timeout:  types.DefaultTimeout.String(),
		LogMode:  types.DefaultLogMode,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
