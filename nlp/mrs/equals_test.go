package mrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquals(t *testing.T) {
	x1 := mustVar(t, "x1", nil)
	e2 := mustVar(t, "e2", map[string]string{"a": "1"})
	dog := StringPred("_dog_n_rel")

	tests := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"variable and varstring", x1, "x1", true},
		{"varstring and variable", "x1", x1, true},
		{"variable and other varstring", x1, "x2", false},
		{"property-bearing variable and varstring", e2, "e2", false},
		{"varstring and property-bearing variable", "e2", e2, false},
		{"equal variables", e2, mustVar(t, "e2", map[string]string{"a": "1"}), true},
		{"pred and string", dog, "_dog_n_rel", true},
		{"string and quoted pred", "_dog_n_rel", StringPred(`"_dog_n_rel"`), true},
		{"pred and pred", dog, GrammarPred("'_dog_n_rel'"), true},
		{"pred and variable", dog, x1, false},
		{"strings", "x1", "x1", true},
		{"string and int", "x1", 1, false},
		{"variable and int", x1, 1, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Equals(test.a, test.b))
		})
	}
}

func TestKeyOf(t *testing.T) {
	x1 := mustVar(t, "x1", map[string]string{"num": "sg"})
	d := map[string]string{}
	k, ok := KeyOf(x1)
	assert.True(t, ok)
	d[k] = "x1"

	k, ok = KeyOf("x1")
	assert.True(t, ok)
	assert.Equal(t, "x1", d[k])

	_, ok = KeyOf(1)
	assert.False(t, ok)
}
