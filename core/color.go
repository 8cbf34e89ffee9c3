package core

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/josephlewis42/labshell/core/config"
	"github.com/josephlewis42/labshell/core/terminal"
)

var (
	ColorBoldRed = color.New(color.FgRed, color.Bold)
)

// ColorPrinter decides whether diagnostics get colored.
type ColorPrinter struct {
	mode    string
	session *terminal.Session
}

// NewColorPrinter creates a printer for one of the config.Color* modes.
func NewColorPrinter(mode string, session *terminal.Session) *ColorPrinter {
	return &ColorPrinter{mode: mode, session: session}
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c == nil || c.mode == config.ColorNever:
		return false
	case c.mode == config.ColorAlways:
		return true
	default:
		return c.session != nil && c.session.Interactive
	}
}

func (c *ColorPrinter) Sprintf(clr *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return clr.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
