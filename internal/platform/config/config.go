package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "wellness/internal/platform/errors"
)

const (
	FileName            = "config.yaml"
	DefaultFetchLimit   = 90
	DefaultWindowDays   = 30
	DefaultCommentURL   = "http://127.0.0.1:8000"
	DefaultCommentLimit = 10 * time.Second
	DefaultHTTPAddr     = ":8080"
)

type Config struct {
	HomePath       string
	DBPath         string
	LogPath        string
	FetchLimit     int
	DefaultWindow  int
	CommentBaseURL string
	CommentTimeout time.Duration
	LogLevel       string
	DesktopNotify  bool
	HTTPAddr       string
}

// fileConfig mirrors config.yaml; zero values leave defaults untouched.
type fileConfig struct {
	DBPath        string `yaml:"db_path"`
	FetchLimit    int    `yaml:"fetch_limit"`
	DefaultWindow int    `yaml:"default_window"`
	Comment       struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"comment"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Notify struct {
		Desktop bool `yaml:"desktop"`
	} `yaml:"notify"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
}

func New(homePath string) (Config, error) {
	if homePath == "" {
		return Config{}, fmt.Errorf("home path is required")
	}
	return Config{
		HomePath:       homePath,
		DBPath:         filepath.Join(homePath, "wellness.db"),
		LogPath:        filepath.Join(homePath, "wellness.log"),
		FetchLimit:     DefaultFetchLimit,
		DefaultWindow:  DefaultWindowDays,
		CommentBaseURL: DefaultCommentURL,
		CommentTimeout: DefaultCommentLimit,
		LogLevel:       "info",
		HTTPAddr:       DefaultHTTPAddr,
	}, nil
}

// Load returns the defaults for homePath overlaid with homePath/config.yaml when present.
func Load(homePath string) (Config, error) {
	cfg, err := New(homePath)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(filepath.Join(homePath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg.overlay(raw)
}

func (c Config) overlay(raw []byte) (Config, error) {
	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if file.DBPath != "" {
		c.DBPath = file.DBPath
		if !filepath.IsAbs(c.DBPath) {
			c.DBPath = filepath.Join(c.HomePath, c.DBPath)
		}
	}
	if file.FetchLimit != 0 {
		c.FetchLimit = file.FetchLimit
	}
	if file.DefaultWindow != 0 {
		c.DefaultWindow = file.DefaultWindow
	}
	if file.Comment.BaseURL != "" {
		c.CommentBaseURL = file.Comment.BaseURL
	}
	if file.Comment.Timeout != "" {
		timeout, err := time.ParseDuration(file.Comment.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("%w: comment.timeout %q", apperrors.ErrInvalidInput, file.Comment.Timeout)
		}
		c.CommentTimeout = timeout
	}
	if file.Log.Level != "" {
		c.LogLevel = file.Log.Level
	}
	if file.HTTP.Addr != "" {
		c.HTTPAddr = file.HTTP.Addr
	}
	c.DesktopNotify = file.Notify.Desktop
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.FetchLimit <= 0 {
		return fmt.Errorf("%w: fetch_limit must be positive", apperrors.ErrInvalidInput)
	}
	if c.DefaultWindow <= 0 {
		return fmt.Errorf("%w: default_window must be positive", apperrors.ErrInvalidInput)
	}
	if c.CommentTimeout <= 0 {
		return fmt.Errorf("%w: comment.timeout must be positive", apperrors.ErrInvalidInput)
	}
	return nil
}
