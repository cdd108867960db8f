// Package config resolves where the book sources live.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. XANADU_ROOT.
const EnvPrefix = "XANADU"

// Config names the source directory and the files inside it.
type Config struct {
	// Root is the directory holding all source files.
	Root string `mapstructure:"root"`

	Pages     string `mapstructure:"pages"`
	Contents  string `mapstructure:"contents"`
	Behaviors string `mapstructure:"behaviors"`
	Modes     string `mapstructure:"modes"`
	Safety    string `mapstructure:"safety"`
	Tools     string `mapstructure:"tools"`
}

// DefaultConfig returns the layout the book ships with.
func DefaultConfig() *Config {
	return &Config{
		Root:      "prompts",
		Pages:     "pages.txt",
		Contents:  "tableofcontents.yaml",
		Behaviors: "behavior.yaml",
		Modes:     "modes.yaml",
		Safety:    "safety.yaml",
		Tools:     "tools.yaml",
	}
}

// Path joins name onto the root directory. Absolute names are returned as is.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Root, name)
}

// Load resolves the configuration from defaults, an optional config file,
// XANADU_* environment variables and the "root" flag, in increasing order
// of precedence.
//
// A relative root that does not exist under the working directory is looked
// up next to the executable instead.
//
// When cfgFile is empty, xanadu.yaml is looked up in the working directory
// and in $HOME/.xanadu; not finding one is fine. A named cfgFile must exist.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("pages", defaults.Pages)
	v.SetDefault("contents", defaults.Contents)
	v.SetDefault("behaviors", defaults.Behaviors)
	v.SetDefault("modes", defaults.Modes)
	v.SetDefault("safety", defaults.Safety)
	v.SetDefault("tools", defaults.Tools)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("root"); f != nil {
			if err := v.BindPFlag("root", f); err != nil {
				return nil, fmt.Errorf("binding root flag: %w", err)
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("xanadu")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.xanadu")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Root = resolveRoot(cfg.Root, executableDir())
	return &cfg, nil
}

// resolveRoot keeps a relative root that exists under the working directory
// and otherwise prefers the same directory beside exeDir, when there is one.
func resolveRoot(root, exeDir string) string {
	if root == "" || filepath.IsAbs(root) || exeDir == "" {
		return root
	}
	if _, err := os.Stat(root); err == nil {
		return root
	}
	candidate := filepath.Join(exeDir, root)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return root
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
