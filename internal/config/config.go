// Package config loads the TOML configuration file and persists the API
// token.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/wisereader/internal/readwise"
)

// TokenEnv overrides the token from the file.
const TokenEnv = "READWISE_TOKEN"

// Reader settings.
type Reader struct {
	// Style is the Markdown style: auto, dark, light, notty, or a JSON
	// style file.
	Style     string `toml:"style"`
	ShowTitle bool   `toml:"show_title"`
}

// Log settings.
type Log struct {
	// File receives debug logs. Empty disables logging.
	File string `toml:"file"`
}

// Config is the application configuration. It is loaded once at startup
// and passed to whoever needs it.
type Config struct {
	Token          string `toml:"token"`
	BaseURL        string `toml:"base_url"`
	Location       string `toml:"location"`
	PageSize       int    `toml:"page_size"`
	MaxPages       int    `toml:"max_pages"`
	TimeoutSeconds int    `toml:"timeout_seconds"`

	Reader Reader `toml:"reader"`
	Log    Log    `toml:"log"`

	path      string
	fileToken string
}

func Default() *Config {
	return &Config{
		BaseURL:        readwise.DefaultBaseURL,
		Location:       readwise.LocationNew,
		PageSize:       readwise.DefaultPageSize,
		MaxPages:       readwise.DefaultMaxPages,
		TimeoutSeconds: int(readwise.DefaultTimeout / time.Second),
		Reader:         Reader{Style: "auto"},
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/wisereader/config.toml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(dir, "wisereader", "config.toml"), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, layered on top of the defaults. A
// missing file yields the defaults. The token from READWISE_TOKEN wins over
// the file.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if _, err := os.Stat(path); err == nil {
		user, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		merge(cfg, user)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.fileToken = cfg.Token

	if tok := strings.TrimSpace(os.Getenv(TokenEnv)); tok != "" {
		cfg.Token = tok
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string) (*Config, error) {
	var user Config
	if _, err := toml.DecodeFile(path, &user); err != nil {
		pe := &ParseError{Path: path, Message: err.Error(), Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			pe.Line = tomlErr.Position.Line
			pe.Message = tomlErr.Message
		}
		return nil, pe
	}
	return &user, nil
}

// merge layers the non-zero values of user onto cfg.
func merge(cfg, user *Config) {
	if user.Token != "" {
		cfg.Token = strings.TrimSpace(user.Token)
	}
	if user.BaseURL != "" {
		cfg.BaseURL = user.BaseURL
	}
	if user.Location != "" {
		cfg.Location = user.Location
	}
	if user.PageSize != 0 {
		cfg.PageSize = user.PageSize
	}
	if user.MaxPages != 0 {
		cfg.MaxPages = user.MaxPages
	}
	if user.TimeoutSeconds != 0 {
		cfg.TimeoutSeconds = user.TimeoutSeconds
	}
	if user.Reader.Style != "" {
		cfg.Reader.Style = user.Reader.Style
	}
	if user.Reader.ShowTitle {
		cfg.Reader.ShowTitle = true
	}
	if user.Log.File != "" {
		cfg.Log.File = user.Log.File
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case !readwise.ValidLocation(c.Location):
		return fmt.Errorf("%w: location %q", ErrValidationFailed, c.Location)
	case c.PageSize < 1 || c.PageSize > 1000:
		return fmt.Errorf("%w: page_size %d not in 1..1000", ErrValidationFailed, c.PageSize)
	case c.MaxPages < 1:
		return fmt.Errorf("%w: max_pages %d", ErrValidationFailed, c.MaxPages)
	case c.TimeoutSeconds < 1:
		return fmt.Errorf("%w: timeout_seconds %d", ErrValidationFailed, c.TimeoutSeconds)
	}
	return nil
}

// File returns the path the config was loaded from and is saved to.
func (c *Config) File() string { return c.path }

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ClientOptions returns the API client options for this config.
func (c *Config) ClientOptions(userAgent string) readwise.Options {
	return readwise.Options{
		BaseURL:   c.BaseURL,
		Token:     c.Token,
		Timeout:   c.Timeout(),
		UserAgent: userAgent,
		PageSize:  c.PageSize,
		MaxPages:  c.MaxPages,
	}
}

// Save writes the config file. A token that came from the environment is
// not written; the file keeps its own.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := Path()
		if err != nil {
			return err
		}
		c.path = path
	}

	out := *c
	out.Token = c.fileToken

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SaveToken stores token in the config file and makes it the active token.
func (c *Config) SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrValidationFailed)
	}
	c.Token = token
	c.fileToken = token
	return c.Save()
}
