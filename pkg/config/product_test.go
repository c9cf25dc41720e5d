package config

import (
	"math/big"
	"testing"

	"github.com/limaJavier/lazycart/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLProduct(t *testing.T) {
	//** Arrange
	spec, err := LoadProductFile("testdata/product.yaml")
	require.NoError(t, err)

	//** Act
	described, err := spec.Build()
	require.NoError(t, err)

	//** Assert
	assert.Equal(t, []string{"colour", "size", "id"}, described.Names)
	assert.Equal(t, []string{"1", "2"}, spec.Axes[1].Values)
	assert.Equal(t, "600000000000000000000000", described.Size().String())

	entry, err := described.AtIndex(big.NewInt(100000000000000000))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"colour": "red", "size": "1", "id": "100000000000000000"}, described.Named(entry))
}

func TestLoadJSONProductKeepsBigBounds(t *testing.T) {
	spec, err := LoadProductFile("testdata/product.json")
	require.NoError(t, err)

	assert.Equal(t, "-3", spec.Axes[2].Range.From)
	assert.Equal(t, "123456789012345678901234567890", spec.Axes[2].Range.To)

	described, err := spec.Build()
	require.NoError(t, err)

	entry, err := described.ParseEntry([]string{"2", "a", "123456789012345678901234567889"})
	require.NoError(t, err)

	index, err := described.IndexOf(entry)
	require.NoError(t, err)

	back, err := described.AtIndex(index)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"number": "2", "letter": "a", "offset": "123456789012345678901234567889"}, described.Named(back))
}

func TestParseEntry(t *testing.T) {
	described, err := ProductSpec{Axes: []AxisSpec{
		{Name: "word", Values: []string{"x"}},
		{Name: "n", Range: &RangeSpec{From: "0", To: "3"}},
	}}.Build()
	require.NoError(t, err)

	_, err = described.ParseEntry([]string{"x"})
	assert.ErrorIs(t, err, model.ErrArityMismatch)

	_, err = described.ParseEntry([]string{"x", "two"})
	assert.ErrorContains(t, err, "expects an integer")

	entry, err := described.ParseEntry([]string{"x", " 2"})
	require.NoError(t, err)
	index, err := described.IndexOf(entry)
	require.NoError(t, err)
	assert.Equal(t, "2", index.String())

	entry, err = described.ParseEntry([]string{"y", "2"})
	require.NoError(t, err)
	_, err = described.IndexOf(entry)
	assert.ErrorIs(t, err, model.ErrEntryNotFound)
}

func TestInvalidProductDescriptions(t *testing.T) {
	scenarios := map[string]map[string]any{
		"no axes": {"axes": []any{}},
		"unnamed axis": {"axes": []any{
			map[string]any{"values": []any{"a"}},
		}},
		"duplicate names": {"axes": []any{
			map[string]any{"name": "a", "values": []any{"a"}},
			map[string]any{"name": "a", "values": []any{"b"}},
		}},
		"values and range": {"axes": []any{
			map[string]any{"name": "a", "values": []any{"a"}, "range": map[string]any{"from": "0", "to": "1"}},
		}},
		"neither values nor range": {"axes": []any{
			map[string]any{"name": "a"},
		}},
		"bad bound": {"axes": []any{
			map[string]any{"name": "a", "range": map[string]any{"from": "zero", "to": "1"}},
		}},
		"reversed range": {"axes": []any{
			map[string]any{"name": "a", "range": map[string]any{"from": "5", "to": "1"}},
		}},
		"unknown key": {"axes": []any{
			map[string]any{"name": "a", "values": []any{"a"}, "weight": 3},
		}},
	}

	for name, raw := range scenarios {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeProduct(raw)
			assert.Error(t, err)
		})
	}
}

func TestEmptyValueAxis(t *testing.T) {
	spec, err := DecodeProduct(map[string]any{"axes": []any{
		map[string]any{"name": "a", "values": []any{1}},
		map[string]any{"name": "b", "values": []any{}},
	}})
	require.NoError(t, err)

	described, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, described.Size().Sign())
}

func TestMissingProductFile(t *testing.T) {
	_, err := LoadProductFile("testdata/missing.yaml")
	assert.ErrorContains(t, err, "cannot read product file")
}
