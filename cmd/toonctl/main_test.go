package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args []string, stdin string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestEncodeSubcommand(t *testing.T) {
	out, _, code := runCLI(t, []string{"encode"}, `{"name":"Alice","scores":[95,87,92]}`)
	require.Equal(t, 0, code)
	assert.Equal(t, "name: Alice\nscores[3]: 95,87,92\n", out)
}

func TestDecodeSubcommand(t *testing.T) {
	out, _, code := runCLI(t, []string{"decode"}, "name: Alice\nscores[3]: 95,87,92")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"name":"Alice","scores":[95,87,92]}`, strings.TrimSpace(out))
}

func TestStatsSubcommand(t *testing.T) {
	out, _, code := runCLI(t, []string{"stats"}, `{"name":"Alice","scores":[95,87,92]}`)
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "JSON size: "))
	assert.True(t, strings.HasPrefix(lines[1], "TOON size: "))
	assert.True(t, strings.HasPrefix(lines[2], "Reduction: "))
	assert.True(t, strings.HasSuffix(lines[2], "%"))
}

func TestEncodeWithFilterFlag(t *testing.T) {
	out, _, code := runCLI(t, []string{"encode", "--filter", "etag"}, `{"etag":"x","name":"Alice"}`)
	require.Equal(t, 0, code)
	assert.Equal(t, "name: Alice\n", out)
}

func TestEncodeWithGoogleFilterPreset(t *testing.T) {
	out, _, code := runCLI(t, []string{"encode", "--filter-preset", "google"}, `{"etag":"x","kind":"y","name":"Alice"}`)
	require.Equal(t, 0, code)
	assert.Equal(t, "name: Alice\n", out)
}

func TestEncodeWithUnknownFilterPresetFails(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"encode", "--filter-preset", "nope"}, `{"name":"Alice"}`)
	require.NotEqual(t, 0, code)
	assert.Contains(t, stderr, "nope")
}

func TestUnknownSubcommandExitsNonZero(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"bogus"}, "")
	require.NotEqual(t, 0, code)
	assert.Contains(t, stderr, "bogus")
}

func TestHelpExitsZeroAndListsSubcommands(t *testing.T) {
	out, _, code := runCLI(t, []string{"--help"}, "")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "encode")
	assert.Contains(t, out, "decode")
	assert.Contains(t, out, "stats")
}

func TestNoArgsPrintsUsageAndExitsZero(t *testing.T) {
	out, _, code := runCLI(t, []string{}, "")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "usage:")
}

func TestEncodeMalformedJSONFails(t *testing.T) {
	_, stderr, code := runCLI(t, []string{"encode"}, `{not json`)
	require.NotEqual(t, 0, code)
	assert.NotEmpty(t, stderr)
}
