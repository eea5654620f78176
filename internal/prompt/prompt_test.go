package prompt

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"Qwertysh/internal/config"
)

func TestRenderDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "QWERTYSH> ", Render(cfg.Prompt))
}

func TestRenderEmptyTextFallsBack(t *testing.T) {
	assert.Equal(t, DefaultPrompt, Render(config.Prompt{}))
}

func TestRenderColoured(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	rendered := Render(config.Prompt{Text: "qsh> ", Colour: "green"})

	assert.Contains(t, rendered, "qsh> ")
	assert.Contains(t, rendered, "\x1b[32m")
}

func TestRenderUnknownColourIsPlain(t *testing.T) {
	assert.Equal(t, "qsh> ", Render(config.Prompt{Text: "qsh> ", Colour: "mauve"}))
}
