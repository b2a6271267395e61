package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(a, b int) int { return a + b }

func TestMerge(t *testing.T) {
	existing := map[string]int{"a": 1, "b": 2}
	incoming := map[string]int{"b": 3, "c": 4}

	merged := Merge(existing, incoming, sum)
	assert.Equal(t, map[string]int{"a": 1, "b": 5, "c": 4}, merged)

	// inputs are untouched
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, existing)
	assert.Equal(t, map[string]int{"b": 3, "c": 4}, incoming)

	assert.Empty(t, Merge[string, int](nil, nil, sum))
}

func TestAccumulate(t *testing.T) {
	pairs := []Pair[string, int]{{"a", 1}, {"b", 2}, {"a", 10}}
	assert.Equal(t, map[string]int{"a": 11, "b": 2}, Accumulate(sum, pairs))
	assert.Empty(t, Accumulate[string, int](sum, nil))
}

func TestDictOfDicts(t *testing.T) {
	triples := []Triple[int, string, string]{
		{10000, "ARG0", "x1"},
		{10000, "RSTR", "h2"},
		{10001, "ARG0", "e3"},
		{10000, "ARG0", "x4"},
	}
	d := DictOfDicts(triples)
	require.Len(t, d, 2)
	assert.Equal(t, map[string]string{"ARG0": "x4", "RSTR": "h2"}, d[10000])
	assert.Equal(t, map[string]string{"ARG0": "e3"}, d[10001])
}

func TestParseKVList(t *testing.T) {
	kv, err := ParseKVList("num=sg|pers=3|num=pl")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"num": "sg,pl", "pers": "3"}, kv)

	kv, err = ParseKVList("_")
	require.NoError(t, err)
	assert.Empty(t, kv)

	_, err = ParseKVList("num")
	assert.Error(t, err)
	_, err = ParseKVList("=sg")
	assert.Error(t, err)
}

func TestFormatKVList(t *testing.T) {
	assert.Equal(t, "_", FormatKVList(nil))
	assert.Equal(t, "num=sg|pers=3", FormatKVList(map[string]string{"pers": "3", "num": "sg"}))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 1, RuneLen("犬"))
	assert.Equal(t, 3, RuneLen("dog"))
}
