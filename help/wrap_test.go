package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/term"
)

func TestWrapDegradesWithLeadingLineBreak(t *testing.T) {
	body := term.New().AddText("a sufficientlylongwordthatcannotfit here")

	// start is wide enough that start+longest word overflows width, forcing
	// the column-0 degrade branch.
	out := wrap(body, 40, 20)

	assert.True(t, strings.HasPrefix(out, "\n"),
		"degraded wrap must emit a line break before repositioning to column 0, got %q", out)
}

func TestWrapStaysOnLineWhenItFits(t *testing.T) {
	body := term.New().AddText("short")

	out := wrap(body, 4, 80)

	assert.False(t, strings.HasPrefix(out, "\n"))
}

func TestRenderItemSynopsisAppliesOnlyWithDesc(t *testing.T) {
	opt := &schema.Option{}
	opt.Desc = "do the thing"

	phrase, text := renderItem(opt, ItemSynopsis, "")
	assert.True(t, phrase)
	assert.Equal(t, "do the thing", text)

	opt.Desc = ""

	phrase, _ = renderItem(opt, ItemSynopsis, "")
	assert.False(t, phrase)
}
