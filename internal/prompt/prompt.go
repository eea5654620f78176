// Package prompt renders the interpreter's prompt string. The prompt text
// comes from configuration and is optionally coloured and bolded; with the
// stock configuration the rendered prompt is the plain "QWERTYSH> ".
package prompt

import (
	"strings"

	"github.com/fatih/color"

	"Qwertysh/internal/config"
)

// DefaultPrompt is used when the configured prompt text is empty.
const DefaultPrompt = "QWERTYSH> "

// Render returns the prompt string for the interpreter, applying the
// configured colour and bold styling to the configured text.
func Render(cfg config.Prompt) string {

	text := cfg.Text
	if text == "" {
		text = DefaultPrompt
	}

	painter := resolveColour(cfg.Colour)
	if painter == nil && !cfg.Bold {
		return text
	}

	if painter == nil {
		painter = color.New()
	}
	if cfg.Bold {
		painter.Add(color.Bold)
	}

	return painter.Sprint(text)

}

// resolveColour maps a colour name from the configuration to a colour
// value. Unknown names and the empty string mean "no colour".
func resolveColour(name string) *color.Color {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black":
		return color.New(color.FgBlack)
	case "red":
		return color.New(color.FgRed)
	case "green":
		return color.New(color.FgGreen)
	case "yellow":
		return color.New(color.FgYellow)
	case "blue":
		return color.New(color.FgBlue)
	case "magenta":
		return color.New(color.FgMagenta)
	case "cyan":
		return color.New(color.FgCyan)
	case "white":
		return color.New(color.FgWhite)
	default:
		return nil
	}
}
