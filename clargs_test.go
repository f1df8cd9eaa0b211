package clargs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/clargs"
)

func TestNewAndParse(t *testing.T) {
	p, err := clargs.New([]*clargs.Option{
		clargs.NewString("-n", "--name").WithDefault("world"),
		clargs.NewFlag("-v", "--verbose"),
	})
	require.NoError(t, err)

	values, err := p.Parse("--name gopher -v")
	require.NoError(t, err)
	assert.Equal(t, "gopher", values.String("-n"))
	assert.True(t, values.Bool("-v"))
}

func TestNewRejectsInvalidSchema(t *testing.T) {
	_, err := clargs.New([]*clargs.Option{
		clargs.NewString("--dup"),
		clargs.NewFlag("--dup"),
	})
	require.Error(t, err)
}

func TestParseHelpReturnsControl(t *testing.T) {
	p, err := clargs.New([]*clargs.Option{
		clargs.NewHelp("-h", "--help"),
		clargs.NewString("--name"),
	})
	require.NoError(t, err)

	_, err = p.Parse("--help")
	require.Error(t, err)

	var ctrl *clargs.Control
	require.ErrorAs(t, err, &ctrl)
	assert.NotEmpty(t, ctrl.Text)
}
