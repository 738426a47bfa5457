package common

import (
	"testing"

	"mlops-pipeline/internal/errs"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trainedModel struct {
	Name    string
	Weights []float64
	Classes map[string]int
}

func TestSaveLoadBin(t *testing.T) {
	fs := afero.NewMemMapFs()
	model := trainedModel{
		Name:    "logistic",
		Weights: []float64{0.25, -1.5, 3},
		Classes: map[string]int{"setosa": 0, "virginica": 1},
	}

	require.NoError(t, SaveBin(fs, "models/trained/model.bin", model))

	var loaded trainedModel
	require.NoError(t, LoadBin(fs, "models/trained/model.bin", &loaded))
	assert.Equal(t, model, loaded)
}

func TestLoadBin_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "garbage.bin", []byte("not a gob stream"), 0o644))

	var v trainedModel
	assert.ErrorIs(t, LoadBin(fs, "missing.bin", &v), errs.NotFound)
	assert.ErrorIs(t, LoadBin(fs, "garbage.bin", &v), errs.Serialization)
}

func TestSaveBin_Unencodable(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := SaveBin(fs, "out/fn.bin", func() {})
	assert.ErrorIs(t, err, errs.Serialization)
}

func TestSaveBin_GobLimits(t *testing.T) {
	fs := afero.NewMemMapFs()

	assert.ErrorIs(t, SaveBin(fs, "out/nil.bin", nil), errs.Serialization)

	type holder struct {
		Name  string
		Tags  map[string]int
		Items []int
	}
	require.NoError(t, SaveBin(fs, "out/empty.bin", holder{Name: "h", Tags: map[string]int{}, Items: []int{}}))

	var loaded holder
	require.NoError(t, LoadBin(fs, "out/empty.bin", &loaded))
	assert.Equal(t, "h", loaded.Name)
	assert.Nil(t, loaded.Tags)
	assert.Nil(t, loaded.Items)
}
