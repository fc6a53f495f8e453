package flashkw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundarySetDefaults(t *testing.T) {
	b := NewBoundarySet()
	assert.True(t, b.Contains('a'))
	assert.True(t, b.Contains('Z'))
	assert.True(t, b.Contains('5'))
	assert.True(t, b.Contains('_'))
	assert.False(t, b.Contains(' '))
	assert.False(t, b.Contains('.'))
	assert.False(t, b.Contains('中'))
}

func TestBoundarySetMutation(t *testing.T) {
	b := NewBoundarySet()
	b.Add('-')
	assert.True(t, b.Contains('-'))
	b.Remove('-')
	assert.False(t, b.Contains('-'))
}

func TestBoundarySetReset(t *testing.T) {
	b := NewBoundarySet()
	b.Reset([]rune{'x', 'y'})
	assert.True(t, b.Contains('x'))
	assert.False(t, b.Contains('a'))
}

func TestBoundaryChangeAffectsNextScan(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("apple")
	assert.Empty(t, kp.ExtractKeywords("pineapple"))

	kp.Boundary().Reset([]rune{})
	got := cleanNames(kp.ExtractKeywords("pineapple"))
	assert.Equal(t, []string{"apple"}, got)
}
