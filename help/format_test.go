package help_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/clargs/help"
	"go.jacobcolvin.com/clargs/schema"
	"go.jacobcolvin.com/clargs/validate"
)

func TestFormatHelpRendersVisibleNames(t *testing.T) {
	opts := []*schema.Option{
		schema.NewString("-n", "--name").WithDesc("the name to use"),
		schema.NewFlag("-v", "--verbose").WithDesc("enable verbose output"),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)
	require.NoError(t, v.Validate())

	f := help.New(v, nil)
	out := f.FormatHelp(80)

	assert.Contains(t, out, "-n")
	assert.Contains(t, out, "--name")
	assert.Contains(t, out, "the name to use")
	assert.Contains(t, out, "-v")
	assert.Contains(t, out, "enable verbose output")
}

func TestFormatHelpHidesHiddenOptions(t *testing.T) {
	opts := []*schema.Option{
		schema.NewFlag("--secret").WithHide(),
		schema.NewFlag("--public"),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)

	f := help.New(v, nil)
	out := f.FormatHelp(80)

	assert.NotContains(t, out, "--secret")
	assert.Contains(t, out, "--public")
}

func TestFormatHelpRendersFlagSynopsisInDescColumn(t *testing.T) {
	opts := []*schema.Option{
		schema.NewFlag("-a", "--all").WithDesc("do all"),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)
	require.NoError(t, v.Validate())

	f := help.New(v, nil)
	out := f.FormatHelp(80)

	assert.Contains(t, out, "-a")
	assert.Contains(t, out, "--all")
	assert.Contains(t, out, "do all")
}

func TestFormatHelpOmitsSynopsisWhenCallerDropsItem(t *testing.T) {
	opts := []*schema.Option{
		schema.NewFlag("--all").WithDesc("do all").WithRequired(),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)
	require.NoError(t, v.Validate())

	cfg := help.DefaultFormatConfig()
	cfg.Items = []help.DescItem{help.ItemRequired}

	f := help.New(v, cfg)
	out := f.FormatHelp(80)

	assert.NotContains(t, out, "do all")
	assert.Contains(t, out, "required")
}

func TestFormatHelpDegradesAtNarrowWidthWithoutPanic(t *testing.T) {
	opts := []*schema.Option{
		schema.NewString("-n", "--name").WithDesc("a reasonably long description to force wrapping"),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)
	require.NoError(t, v.Validate())

	f := help.New(v, nil)

	assert.NotPanics(t, func() {
		out := f.FormatHelp(10)
		assert.NotEmpty(t, out)
	})
}

func TestFormatGroupsSeparatesGroups(t *testing.T) {
	opts := []*schema.Option{
		schema.NewFlag("--a").WithGroup("extra"),
		schema.NewFlag("--b"),
	}

	v, err := validate.New(opts)
	require.NoError(t, err)

	f := help.New(v, nil)
	groups := f.FormatGroups(80)

	require.Contains(t, groups, "extra")
	require.Contains(t, groups, "")
	assert.True(t, strings.Contains(groups["extra"], "--a"))
	assert.True(t, strings.Contains(groups[""], "--b"))
}
