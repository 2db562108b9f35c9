// Package config loads the bot's settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/clang-format-bot/internal/core"
	"github.com/sevigo/clang-format-bot/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	Scope   core.RepositoryScope
	Format  FormatConfig
	Logging logger.Config
}

// ServerConfig configures the webhook listener.
type ServerConfig struct {
	Port              string
	MaxConcurrentRuns int
}

// GitHubConfig holds the bot account's credentials and the platform hosts.
type GitHubConfig struct {
	Token         string
	WebhookSecret string
	Host          string
	APIURL        string
}

// FormatConfig tunes a single pipeline run.
type FormatConfig struct {
	RefMode       core.RefMode
	WorkspaceRoot string
	Concurrency   int
	StepTimeout   time.Duration
}

const envFile = ".env"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("GITHUB_HOST", "github.com")
	v.SetDefault("REF_MODE", string(core.RefModeHead))
	v.SetDefault("MAX_CONCURRENT_RUNS", 4)
	v.SetDefault("FORMAT_CONCURRENCY", 1)
	v.SetDefault("STEP_TIMEOUT", "5m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
}

// LoadConfig reads configuration from environment variables and a .env file
// using the global viper instance, then validates it.
func LoadConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	// The .env file is optional; viper reports a missing explicit file as a
	// plain fs error rather than ConfigFileNotFoundError.
	if _, err := os.Stat(envFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			slog.Error("failed to read config file", "file", envFile, "error", err)
		}
	}
	return Load(v)
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	token := strings.TrimSpace(v.GetString("GH_TOKEN"))
	if token == "" {
		return nil, errors.New("GH_TOKEN must be set")
	}

	port := strings.TrimSpace(v.GetString("PORT"))
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", port)
	}

	mode, err := core.ParseRefMode(strings.ToLower(strings.TrimSpace(v.GetString("REF_MODE"))))
	if err != nil {
		return nil, fmt.Errorf("REF_MODE: %w", err)
	}

	scope, err := loadScope(v)
	if err != nil {
		return nil, err
	}

	maxRuns := v.GetInt("MAX_CONCURRENT_RUNS")
	if maxRuns < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENT_RUNS must be at least 1, got %d", maxRuns)
	}
	concurrency := v.GetInt("FORMAT_CONCURRENCY")
	if concurrency < 1 {
		return nil, fmt.Errorf("FORMAT_CONCURRENCY must be at least 1, got %d", concurrency)
	}
	timeout := v.GetDuration("STEP_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("STEP_TIMEOUT must be a positive duration, got %q", v.GetString("STEP_TIMEOUT"))
	}

	return &Config{
		Server: ServerConfig{
			Port:              port,
			MaxConcurrentRuns: maxRuns,
		},
		GitHub: GitHubConfig{
			Token:         token,
			WebhookSecret: v.GetString("GITHUB_WEBHOOK_SECRET"),
			Host:          strings.TrimSpace(v.GetString("GITHUB_HOST")),
			APIURL:        strings.TrimSpace(v.GetString("GITHUB_API_URL")),
		},
		Scope: scope,
		Format: FormatConfig{
			RefMode:       mode,
			WorkspaceRoot: v.GetString("WORKSPACE_ROOT"),
			Concurrency:   concurrency,
			StepTimeout:   timeout,
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}, nil
}

func loadScope(v *viper.Viper) (core.RepositoryScope, error) {
	var scope core.RepositoryScope

	if target := strings.TrimSpace(v.GetString("TARGET_REPO")); target != "" {
		if _, _, err := core.SplitFullName(target); err != nil {
			return scope, fmt.Errorf("TARGET_REPO: %w", err)
		}
		scope.Target = target
	}

	for _, pattern := range strings.Split(v.GetString("ALLOWED_REPOS"), ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if _, err := path.Match(pattern, ""); err != nil || strings.Count(pattern, "/") != 1 {
			return scope, fmt.Errorf("ALLOWED_REPOS: invalid pattern %q, want owner/name or owner/*", pattern)
		}
		scope.Allowed = append(scope.Allowed, pattern)
	}
	return scope, nil
}
