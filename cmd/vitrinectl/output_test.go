package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitCompactByDefault(t *testing.T) {
	var buf bytes.Buffer
	o := &rootOptions{cfg: defaultConfig(), out: &buf}

	require.NoError(t, o.emit(map[string]int{"count": 7}))
	assert.Equal(t, "{\"count\":7}\n", buf.String())
}

func TestEmitPrettyUsesConfiguredIndent(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig()
	cfg.Pretty = true
	o := &rootOptions{cfg: cfg, out: &buf}

	require.NoError(t, o.emit(map[string]int{"count": 7}))
	assert.Equal(t, "{\n  \"count\": 7\n}\n", buf.String())
}

func TestEmitSelectProjectsResult(t *testing.T) {
	var buf bytes.Buffer
	o := &rootOptions{cfg: defaultConfig(), out: &buf, selectExpr: "$.name"}

	payload := struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{Name: "vitrine", Count: 3}

	require.NoError(t, o.emit(payload))
	assert.Equal(t, "\"vitrine\"\n", buf.String())
}

func TestEmitSelectMissingPathFails(t *testing.T) {
	var buf bytes.Buffer
	o := &rootOptions{cfg: defaultConfig(), out: &buf, selectExpr: "$.nope"}

	err := o.emit(map[string]int{"count": 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.nope")
}

func TestLoadStateMap(t *testing.T) {
	path := writeFile(t, "state.yaml",
		"compositional_tension: 0.15\nlighting_drama: 0.4\nnegative_space_ratio: 0.9\n")

	state, err := loadStateMap(path)
	require.NoError(t, err)

	assert.Len(t, state, 3, "partial vectors are allowed; missing axes default downstream")
	assert.InDelta(t, 0.15, state["compositional_tension"], 1e-12)
	assert.InDelta(t, 0.9, state["negative_space_ratio"], 1e-12)
}

func TestLoadStateMapRejectsEmpty(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	_, err := loadStateMap(path)
	assert.Error(t, err)
}

func TestLoadStateMapRejectsNonNumeric(t *testing.T) {
	path := writeFile(t, "bad.yaml", "lighting_drama: high\n")

	_, err := loadStateMap(path)
	assert.Error(t, err)
}
