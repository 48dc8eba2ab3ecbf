package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config is the resolved configuration for the journal.
type Config interface {
	BasePath() string
	View() ViewDefaults
	LogLevel() string
}

// ViewDefaults seed every catalog view when it opens.
type ViewDefaults struct {
	Filter string
	Sort   string
	Locale string
	// Ranks overrides the category-grouped sort order, category -> rank.
	Ranks map[string]int
}

const (
	envPrefix     = "HAIRJOURNEY"
	configName    = ".hairjourney" // .yaml is implicit
	configPathEnv = "HAIRJOURNEY_CONFIG_PATH"
)

// LoadConfig reads .hairjourney.yaml from $HAIRJOURNEY_CONFIG_PATH or the
// working directory, then applies HAIRJOURNEY_* environment overrides.
// A missing file is fine; a malformed one is an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.hairjourney.db")
	v.SetDefault("view.filter", "all")
	v.SetDefault("view.sort", "date-desc")
	v.SetDefault("view.locale", "en")
	v.SetDefault("log.level", "warn")

	v.SetConfigName(configName)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(configPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	ranks, err := parseRanks(v.Get("view.ranks"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path: path,
		ViewDefaults: ViewDefaults{
			Filter: v.GetString("view.filter"),
			Sort:   v.GetString("view.sort"),
			Locale: v.GetString("view.locale"),
			Ranks:  ranks,
		},
		Level: v.GetString("log.level"),
	}, nil
}

func parseRanks(raw interface{}) (map[string]int, error) {
	if raw == nil {
		return nil, nil
	}
	m, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, fmt.Errorf("store: view.ranks: %w", err)
	}
	ranks := make(map[string]int, len(m))
	for k, val := range m {
		rank, err := cast.ToIntE(val)
		if err != nil {
			return nil, fmt.Errorf("store: view.ranks.%s: %w", k, err)
		}
		ranks[strings.ToLower(strings.TrimSpace(k))] = rank
	}
	return ranks, nil
}

// StaticConfig is a Config with fixed values, for tests and embedding.
type StaticConfig struct {
	Path     string
	Defaults ViewDefaults
	Level    string
}

func (s StaticConfig) BasePath() string   { return s.Path }
func (s StaticConfig) View() ViewDefaults { return s.Defaults }
func (s StaticConfig) LogLevel() string   { return s.Level }

type fileConfig struct {
	Path         string
	ViewDefaults ViewDefaults
	Level        string
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) View() ViewDefaults {
	return f.ViewDefaults
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}
