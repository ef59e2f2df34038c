// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// FileName is the configuration file looked up at the root of a source tree.
	FileName = "_config.yml"
	// EnvPrefix prefixes environment variables overriding configuration keys,
	// e.g. WWWGEN_BASEURL.
	EnvPrefix = "WWWGEN"
	// NotSet is the placeholder used for unset well-known fields.
	NotSet = "NOT-SET"
)

// SiteConfig holds the configuration from the _config.yml file. It is built
// once before any page is loaded and never mutated afterwards.
type SiteConfig struct {
	Title           string
	Name            string
	Description     string
	SiteDescription string
	Author          string
	BaseURL         string
	Prev            string
	Next            string

	// Params carries every other top-level key, lower-cased.
	Params map[string]any
}

var wellKnown = map[string]bool{
	"title":            true,
	"name":             true,
	"description":      true,
	"site_description": true,
	"author":           true,
	"baseurl":          true,
	"prev":             true,
	"next":             true,
}

// staticDefaults are applied before reading the file. Derived defaults
// (description, name) depend on other keys and are applied after.
var staticDefaults = map[string]string{
	"site_description": NotSet,
	"prev":             NotSet + ".html",
	"next":             NotSet + ".html",
	"author":           NotSet,
	"title":            NotSet,
	"baseurl":          "",
}

// LoadSiteConfig reads the YAML configuration at path and applies defaults
// for the optional fields.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for key, value := range staticDefaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	if !v.IsSet("description") {
		v.SetDefault("description", v.GetString("site_description"))
	}
	if !v.IsSet("name") {
		v.SetDefault("name", v.GetString("title"))
	}

	cfg := &SiteConfig{
		Title:           v.GetString("title"),
		Name:            v.GetString("name"),
		Description:     v.GetString("description"),
		SiteDescription: v.GetString("site_description"),
		Author:          v.GetString("author"),
		BaseURL:         v.GetString("baseurl"),
		Prev:            v.GetString("prev"),
		Next:            v.GetString("next"),
		Params:          make(map[string]any),
	}
	for key, value := range v.AllSettings() {
		key = strings.ToLower(key)
		if wellKnown[key] {
			continue
		}
		cfg.Params[key] = value
	}
	return cfg, nil
}

// LoadEnvFile loads a .env file from dir into the process environment, if
// one exists. Variables already present in the environment win.
func LoadEnvFile(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("could not load env file %s: %w", path, err)
	}
	return nil
}

// URLFor joins the base URL and a slash-separated path relative to the
// output root.
func (c *SiteConfig) URLFor(rel string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(rel, "/")
}
