package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/minigrep/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) string {
	t.Helper()
	path := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cfg, err := config.Load(config.GetConfigPath(t.TempDir()))
	if err != nil {
		t.Fatalf("expected missing config to load, got %v", err)
	}
	if *cfg != (config.File{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), map[string]any{
		"color":          "cyan",
		"case_sensitive": true,
		"line_numbers":   true,
	})

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}
	if cfg.Color != "cyan" || !cfg.CaseSensitive || !cfg.LineNumbers {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsUnsupportedColor(t *testing.T) {
	path := writeConfig(t, t.TempDir(), map[string]any{"color": "chartreuse"})

	_, err := config.Load(path)
	var loadErr *config.ConfigLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected ConfigLoadError, got %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("color: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected malformed YAML to fail")
	}
}

func TestResolvePrecedence(t *testing.T) {
	file := &config.File{Color: "blue", LineNumbers: true}

	t.Run("file over default", func(t *testing.T) {
		v := viper.New()
		config.Bind(v, file)

		opts, fellBack := config.Resolve(v)
		if fellBack || opts.Color != "blue" || !opts.LineNumbers {
			t.Fatalf("unexpected options %+v (fallback=%v)", opts, fellBack)
		}
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("MINIGREP_COLOR", "Green")
		v := viper.New()
		config.Bind(v, file)

		opts, _ := config.Resolve(v)
		if opts.Color != "green" {
			t.Fatalf("expected env color, got %q", opts.Color)
		}
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("MINIGREP_COLOR", "green")
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("color", "", "")
		if err := flags.Parse([]string{"--color", "magenta"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		v := viper.New()
		config.Bind(v, file)
		if err := v.BindPFlag(config.KeyColor, flags.Lookup("color")); err != nil {
			t.Fatalf("failed to bind flag: %v", err)
		}

		opts, _ := config.Resolve(v)
		if opts.Color != "magenta" {
			t.Fatalf("expected flag color, got %q", opts.Color)
		}
	})

	t.Run("unknown env color falls back", func(t *testing.T) {
		t.Setenv("MINIGREP_COLOR", "plaid")
		v := viper.New()
		config.Bind(v, nil)

		opts, fellBack := config.Resolve(v)
		if !fellBack || opts.Color != config.DefaultColor {
			t.Fatalf("expected default color fallback, got %+v (fallback=%v)", opts, fellBack)
		}
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    config.Color
		wantErr bool
	}{
		{"red", "red", false},
		{" YELLOW ", "yellow", false},
		{"bright_blue", "bright-blue", false},
		{"BrightCyan", "bright-cyan", false},
		{"", config.DefaultColor, true},
		{"orange", config.DefaultColor, true},
	}

	for _, tt := range tests {
		got, err := config.ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestColorANSI(t *testing.T) {
	if got := config.Color("blue").ANSI(); got != "4" {
		t.Fatalf("expected blue to map to 4, got %q", got)
	}
	if got := config.Color("nope").ANSI(); got != config.DefaultColor.ANSI() {
		t.Fatalf("expected unknown color to use default, got %q", got)
	}
	if got := config.ColorOrDefault("nope"); got != config.DefaultColor {
		t.Fatalf("expected ColorOrDefault fallback, got %q", got)
	}
}
