// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI codes for the plain fmt output of settings and the logo.
const (
	Green = "\033[92m"
	Reset = "\033[0m"
)

type TerminalMode int

const (
	TerminalModeDark TerminalMode = iota
	TerminalModeLight
)

// detectTerminalMode guesses the background from COLORFGBG and TERM_THEME.
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// "foreground;background"
		parts := strings.Split(colorScheme, ";")
		switch parts[len(parts)-1] {
		case "15", "7", "255":
			return TerminalModeLight
		}
	}
	if theme := strings.ToLower(os.Getenv("TERM_THEME")); strings.Contains(theme, "light") {
		return TerminalModeLight
	}
	return TerminalModeDark
}

// palette styles the pieces of rendered trees. The zero value prints plain
// text.
type palette struct {
	enabled   bool
	header    lipgloss.Style
	duplicate lipgloss.Style
	muted     lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		return palette{}
	}
	accent, dup, muted := "39", "205", "245"
	if detectTerminalMode() == TerminalModeLight {
		accent, dup, muted = "25", "162", "240"
	}
	return palette{
		enabled:   true,
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		duplicate: lipgloss.NewStyle().Foreground(lipgloss.Color(dup)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

func (p palette) Header(s string) string {
	if !p.enabled {
		return s
	}
	return p.header.Render(s)
}

func (p palette) Duplicate(s string) string {
	if !p.enabled {
		return s
	}
	return p.duplicate.Render(s)
}

func (p palette) Muted(s string) string {
	if !p.enabled {
		return s
	}
	return p.muted.Render(s)
}
