package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrinelab/vitrine/tool"
)

func TestServeLoopRoundTrip(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`{"id":"a1","tool":"compute_display_state_distance","params":{"state_a_id":"luxury_isolation","state_b_id":"abundance_wall"}}`,
		``,
		`{"tool":"no_such_tool"}`,
		`not json`,
	}, "\n") + "\n")

	var out bytes.Buffer
	err := serveLoop(tool.New(zerolog.Nop()), in, &out, zerolog.Nop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, "blank lines produce no envelope")

	var first tool.Envelope
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a1", first.ID)
	assert.Equal(t, "compute_display_state_distance", first.Tool)
	assert.True(t, first.OK)
	assert.Nil(t, first.Error)

	var second tool.Envelope
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.False(t, second.OK)
	assert.NotEmpty(t, second.ID, "absent ids are filled with a fresh UUID")
	require.NotNil(t, second.Error)
	assert.Equal(t, "unknown_tool", second.Error.Kind)

	var third tool.Envelope
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.False(t, third.OK)
	require.NotNil(t, third.Error)
	assert.Equal(t, "bad_request", third.Error.Kind)
}

func TestServeLoopEmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := serveLoop(tool.New(zerolog.Nop()), strings.NewReader(""), &out, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestServeCommandOverStdio(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(`{"id":"r1","tool":"get_server_info"}` + "\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--log-level", "error", "serve"})

	require.NoError(t, cmd.Execute())

	var env tool.Envelope
	require.NoError(t, json.Unmarshal(out.Bytes(), &env))
	assert.Equal(t, "r1", env.ID)
	assert.True(t, env.OK)

	info, ok := env.Result.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "vitrine", info["name"])
	assert.Equal(t, tool.Version, info["version"])
}
