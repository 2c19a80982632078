package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confpipe/confpipe/cnfg"
)

func TestParseYAML_Full(t *testing.T) {
	data := []byte(`
global:
  seed: 7
dataset:
  global:
    root: data/
  train:
    priority: 0
    steps:
      - name: load
        kwargs: {path: train.csv}
      - clean
model:
  default:
    producer: sgd
    init: {}
    steps:
      - name: fit
        kwargs: {data: dataset__train, seed: 0}
`)
	cfg, global, err := ParseYAML(data)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"seed": 7}, global)

	train := cfg["dataset"]["train"]
	require.NotNil(t, train.Priority)
	assert.Equal(t, 0, *train.Priority)
	require.Len(t, train.Steps, 2)
	assert.Equal(t, "load", train.Steps[0].Name)
	assert.Equal(t, "train.csv", train.Steps[0].Kwargs["path"])
	assert.Equal(t, "clean", train.Steps[1].Name)
	assert.Nil(t, train.Steps[1].Kwargs)

	secGlobal, ok := cfg["dataset"][cnfg.GlobalID]
	require.True(t, ok, "section global should be preserved as pseudo-spec")
	assert.Equal(t, "data/", secGlobal.Global["root"])

	model := cfg["model"]["default"]
	assert.Equal(t, "sgd", model.Producer)
	assert.Equal(t, "dataset__train", model.Steps[0].Kwargs["data"])
}

func TestParseYAML_UnknownKeysBecomeGlobals(t *testing.T) {
	data := []byte(`
model:
  default:
    epochs: 12
    steps:
      - name: fit
        kwargs: {epochs: 0}
`)
	cfg, _, err := ParseYAML(data)
	require.NoError(t, err)
	spec := cfg["model"]["default"]
	assert.Equal(t, 12, spec.Global["epochs"])
}

func TestParseYAML_MalformedSection(t *testing.T) {
	_, _, err := ParseYAML([]byte("model: [not, a, mapping]\n"))
	require.Error(t, err)
	var cerr *cnfg.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "model", cerr.SectionType)
}

func TestParseYAML_MalformedSteps(t *testing.T) {
	_, _, err := ParseYAML([]byte("model:\n  default:\n    steps: 42\n"))
	require.Error(t, err)
	var cerr *cnfg.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "default", cerr.SectionID)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[dataset.train]
priority = 0

[[dataset.train.steps]]
name = "load"
kwargs = { path = "train.csv" }
`)
	cfg, global, err := ParseTOML(data)
	require.NoError(t, err)
	assert.Nil(t, global)
	train := cfg["dataset"]["train"]
	require.NotNil(t, train.Priority)
	assert.Equal(t, 0, *train.Priority)
	require.Len(t, train.Steps, 1)
	assert.Equal(t, "load", train.Steps[0].Name)
	assert.Equal(t, "train.csv", train.Steps[0].Kwargs["path"])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a:\n  x:\n    steps: [go]\n"), 0o644))

	cfg, _, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "go", cfg["a"]["x"].Steps[0].Name)

	_, _, err = LoadFile(filepath.Join(dir, "run.ini"))
	assert.Error(t, err, "unsupported extension should fail")
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
