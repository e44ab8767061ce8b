package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		projectRoot = wd
	}
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project root: %w", err)
		}
		projectRoot = abs
	}

	return &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		EnvFiles:       v.GetStringSlice("env_file"),
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}, nil
}

// ProvideLookup reads the configured env files and layers them under the
// process environment. Missing files are not an error.
func ProvideLookup(cfg *config.RuntimeConfig, log *slog.Logger) (LookupFunc, error) {
	files, err := ReadEnvFiles(cfg.ProjectRoot, cfg.EnvFiles)
	if err != nil {
		return nil, err
	}
	for _, path := range files.Loaded {
		log.Debug("loaded env file", "path", path)
	}
	return WithEnvFiles(OSLookup, files), nil
}

// ProvideToolchainConfig loads the toolchain configuration once per process.
func ProvideToolchainConfig(lookup LookupFunc, log *slog.Logger) *config.Config {
	cfg := Load(lookup)
	for _, name := range cfg.NetworkNames() {
		p := cfg.Networks[name]
		if !p.IsLocalSimulation() && p.RPCURL == "" {
			log.Debug("network has no rpc url", "network", name)
		}
	}
	return &cfg
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".chainconf"))

	v.SetEnvPrefix("CHAINCONF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("env_file", []string{".env", ".env.local"})
	v.SetDefault("timeout", "10s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd.Flags())
	}

	return v
}

// bindFlags binds every flag under its snake_case key so that flags,
// CHAINCONF_* variables and the config file share one namespace.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}
