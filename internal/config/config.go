package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/minigrep/internal/constants"
)

// Keys shared by the config file, flags and MINIGREP_* environment variables.
const (
	KeyColor         = "color"
	KeyCaseSensitive = "case_sensitive"
	KeyLineNumbers   = "line_numbers"
)

// File mirrors the optional YAML config file.
type File struct {
	Color         string `yaml:"color"          json:"color"`
	CaseSensitive bool   `yaml:"case_sensitive" json:"case_sensitive"`
	LineNumbers   bool   `yaml:"line_numbers"   json:"line_numbers"`
}

// Options is the resolved configuration handed to the search run.
type Options struct {
	Color         Color
	CaseSensitive bool
	LineNumbers   bool
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// Load reads the config file at path. A missing file yields an empty File.
func Load(path string) (*File, error) {
	cfg := &File{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, &ConfigLoadError{path: path, err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigLoadError{path: path, err: err}
	}

	if cfg.Color != "" {
		if _, err := ParseColor(cfg.Color); err != nil {
			return nil, &ConfigLoadError{path: path, err: err}
		}
	}

	return cfg, nil
}

// Bind registers file values as defaults underneath flags and environment
// variables, so lookups through v resolve flag > env > file > default.
func Bind(v *viper.Viper, file *File) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyColor, string(DefaultColor))
	if file == nil {
		return
	}
	if file.Color != "" {
		v.SetDefault(KeyColor, file.Color)
	}
	v.SetDefault(KeyCaseSensitive, file.CaseSensitive)
	v.SetDefault(KeyLineNumbers, file.LineNumbers)
}

// Resolve reads the effective options from v. Unknown color names fall back to
// DefaultColor; the second return value reports whether that happened.
func Resolve(v *viper.Viper) (Options, bool) {
	raw := v.GetString(KeyColor)
	color, err := ParseColor(raw)

	return Options{
		Color:         color,
		CaseSensitive: v.GetBool(KeyCaseSensitive),
		LineNumbers:   v.GetBool(KeyLineNumbers),
	}, err != nil
}
