package mrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedPolicy(t *testing.T) {
	p, ok := ParseMalformedPolicy("warn")
	assert.True(t, ok)
	assert.Equal(t, PolicyWarn, p)
	assert.Equal(t, "warn", p.String())

	p, ok = ParseMalformedPolicy("silent")
	assert.True(t, ok)
	assert.Equal(t, PolicySilent, p)

	_, ok = ParseMalformedPolicy("strict")
	assert.False(t, ok)
	assert.Equal(t, "unknown", MalformedPolicy(9).String())
}
