package config

import (
	"fmt"
	"slices"
	"strings"
)

// Style is the console layout for poll reports.
type Style string

const (
	// StyleDefault prints each report over several colored lines.
	StyleDefault Style = "default"
	// StyleCompact squeezes each report onto one colored line.
	StyleCompact Style = "compact"
	// StylePlain is the default layout with colors off, for pipes and log files.
	StylePlain Style = "plain"
)

var styles = []Style{StyleDefault, StyleCompact, StylePlain}

// ParseStyle accepts a style name in any case, ignoring surrounding blanks.
// An empty name is StyleDefault.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleDefault, nil
	}
	if s := Style(name); slices.Contains(styles, s) {
		return s, nil
	}
	return "", fmt.Errorf("unknown output style %q (want default, compact or plain)", name)
}

// Colored is false only for the plain style.
func (s Style) Colored() bool { return s != StylePlain }

// Compact reports whether one line per poll is printed.
func (s Style) Compact() bool { return s == StyleCompact }
