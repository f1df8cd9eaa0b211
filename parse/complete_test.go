package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/clargs/clargserr"
	"go.jacobcolvin.com/clargs/parse"
	"go.jacobcolvin.com/clargs/schema"
)

func TestParseIntoCompletionSuppressesParseError(t *testing.T) {
	p, err := parse.New([]*schema.Option{
		schema.NewString("--name").WithRequired(),
	})
	require.NoError(t, err)

	// "--nam" matches no registered name, which would normally fail with
	// unknownOption (or unknownOptionWithSimilar); completion mode must
	// never surface that as an error, only a candidate list.
	args := []string{"--nam"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 0})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Equal(t, clargserr.Completion, ctrl.Kind)
	assert.Contains(t, ctrl.Text, "--name")
}

func TestParseIntoCompletionOffersOptionNamesByPrefix(t *testing.T) {
	p, err := parse.New([]*schema.Option{
		schema.NewString("--name"),
		schema.NewFlag("--verbose"),
		schema.NewFlag("--version-info"),
	})
	require.NoError(t, err)

	args := []string{"--ver"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 0})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Contains(t, ctrl.Text, "--verbose")
	assert.Contains(t, ctrl.Text, "--version-info")
	assert.NotContains(t, ctrl.Text, "--name")
}

func TestParseIntoCompletionUsesOptionCompleteCallback(t *testing.T) {
	env := schema.NewString("--env").WithComplete(func(values schema.Values, partial string) []string {
		return []string{"dev", "prod", "production"}
	})

	p, err := parse.New([]*schema.Option{env})
	require.NoError(t, err)

	args := []string{"--env", "pro"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 1})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Contains(t, ctrl.Text, "prod")
	assert.Contains(t, ctrl.Text, "production")
	assert.NotContains(t, ctrl.Text, "dev")
}

func TestParseIntoCompletionFallsBackToEnums(t *testing.T) {
	env := schema.NewString("--env").WithEnums("dev", "staging", "prod")

	p, err := parse.New([]*schema.Option{env})
	require.NoError(t, err)

	args := []string{"--env", "s"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 1})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Equal(t, "staging", ctrl.Text)
}

func TestParseIntoCompletionNiladicOptionDoesNotConsumeCursorAsValue(t *testing.T) {
	p, err := parse.New([]*schema.Option{
		schema.NewFlag("--verbose"),
		schema.NewString("--name"),
	})
	require.NoError(t, err)

	// After a niladic flag, the next word completes an option name, not a
	// value for --verbose (which takes none).
	args := []string{"--verbose", "--na"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 1})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Equal(t, "--name", ctrl.Text)
}

func TestParseIntoNestedCommandCompletionShiftsCompIndex(t *testing.T) {
	sub := []*schema.Option{
		schema.NewString("--region").WithEnums("us-east", "us-west", "eu-west"),
	}

	cmd := schema.NewCommand(sub, func(outer, inner schema.Values) any {
		return inner
	}, "deploy")

	p, err := parse.New([]*schema.Option{cmd})
	require.NoError(t, err)

	// Index 2 ("us-") is the third token overall, but only the second
	// ("--region", "us-") once inside the nested command's own argv.
	args := []string{"deploy", "--region", "us-"}
	_, err = p.ParseInto(schema.Values{}, args, parse.Config{Completing: true, CompIndex: 2})

	var ctrl *clargserr.Control
	require.ErrorAs(t, err, &ctrl)
	assert.Contains(t, ctrl.Text, "us-east")
	assert.Contains(t, ctrl.Text, "us-west")
	assert.NotContains(t, ctrl.Text, "eu-west")
}
