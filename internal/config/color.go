package config

import (
	"fmt"
	"sort"
	"strings"
)

// Color names a highlight color from the fixed ANSI palette.
type Color string

const DefaultColor Color = "red"

// ansiCodes maps each supported color to its ANSI palette index.
var ansiCodes = map[Color]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright-black":   "8",
	"bright-red":     "9",
	"bright-green":   "10",
	"bright-yellow":  "11",
	"bright-blue":    "12",
	"bright-magenta": "13",
	"bright-cyan":    "14",
	"bright-white":   "15",
}

// ParseColor resolves a user supplied color name. Matching ignores case,
// surrounding space and the separator between "bright" and the base color.
func ParseColor(name string) (Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	if strings.HasPrefix(normalized, "bright") && !strings.HasPrefix(normalized, "bright-") {
		normalized = "bright-" + strings.TrimPrefix(normalized, "bright")
	}

	c := Color(normalized)
	if _, ok := ansiCodes[c]; !ok {
		return DefaultColor, fmt.Errorf(
			"invalid color: %q. Please choose from %s.",
			name,
			strings.Join(ColorNames(), ", "),
		)
	}
	return c, nil
}

// ColorOrDefault is ParseColor without the error: empty or unknown names fall
// back to DefaultColor.
func ColorOrDefault(name string) Color {
	c, err := ParseColor(name)
	if err != nil {
		return DefaultColor
	}
	return c
}

// ANSI returns the palette index understood by lipgloss.Color.
func (c Color) ANSI() string {
	if code, ok := ansiCodes[c]; ok {
		return code
	}
	return ansiCodes[DefaultColor]
}

func ColorNames() []string {
	names := make([]string, 0, len(ansiCodes))
	for c := range ansiCodes {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}
