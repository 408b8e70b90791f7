package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. THORSYNC_BACKEND.
const EnvPrefix = "THORSYNC"

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Backend           string
	BackendArgs       []string
	MidgardURL        string
	Pool              string
	Interval          string
	From              int64
	To                int64
	Window            time.Duration
	PageSize          int
	Kinds             []string
	Out               string
	Checkpoint        string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
	LogLevel          string
	MetricsAddr       string
}

// Load merges config file, environment variables, and flags into Config.
// Only keys the command declares as flags, or that appear in the file or
// environment, are read; the rest keep their defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("midgard-url", "https://midgard.ninerealms.com")
	v.SetDefault("pool", "BTC.BTC")
	v.SetDefault("interval", "hour")
	v.SetDefault("window", 400*time.Hour)
	v.SetDefault("page-size", 400)
	v.SetDefault("checkpoint", "./data/checkpoint.json")
	v.SetDefault("checkpoint-enabled", true)
	v.SetDefault("max-retries", 5)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	from, err := ParseTimestamp(v.GetString("from"))
	if err != nil {
		return Config{}, fmt.Errorf("parse from: %w", err)
	}
	to, err := ParseTimestamp(v.GetString("to"))
	if err != nil {
		return Config{}, fmt.Errorf("parse to: %w", err)
	}

	cfg := Config{
		Backend:           v.GetString("backend"),
		BackendArgs:       getArgs(v, "backend-args"),
		MidgardURL:        v.GetString("midgard-url"),
		Pool:              v.GetString("pool"),
		Interval:          v.GetString("interval"),
		From:              from,
		To:                to,
		Window:            v.GetDuration("window"),
		PageSize:          v.GetInt("page-size"),
		Kinds:             getStringSlice(v, "kinds"),
		Out:               v.GetString("out"),
		Checkpoint:        v.GetString("checkpoint"),
		CheckpointEnabled: v.GetBool("checkpoint-enabled"),
		MaxRetries:        v.GetInt("max-retries"),
		RetryBackoff:      v.GetDuration("retry-backoff"),
		LogLevel:          v.GetString("log-level"),
		MetricsAddr:       v.GetString("metrics-addr"),
	}

	if cfg.From != 0 && cfg.To != 0 && cfg.To < cfg.From {
		return Config{}, fmt.Errorf("to (%d) is before from (%d)", cfg.To, cfg.From)
	}
	if cfg.PageSize < 0 {
		return Config{}, fmt.Errorf("page-size must not be negative")
	}

	return cfg, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// getArgs reads a positional list. Unlike getStringSlice it keeps empty
// items, so "uri,user," still carries an empty password.
func getArgs(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	var items []string
	switch typed := v.Get(key).(type) {
	case []string:
		items = typed
	case string:
		if typed == "" {
			return nil
		}
		items = strings.Split(typed, ",")
	case []interface{}:
		items = make([]string, 0, len(typed))
		for _, item := range typed {
			if item == nil {
				items = append(items, "")
				continue
			}
			items = append(items, fmt.Sprintf("%v", item))
		}
	default:
		return nil
	}

	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}
