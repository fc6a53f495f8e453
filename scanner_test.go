package flashkw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cleanNames(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Clean
	}
	return out
}

func TestExtractCaseInsensitiveDAG(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Test")
	got := cleanNames(kp.ExtractKeywords("TEST test TeSt"))
	assert.Equal(t, []string{"Test", "Test", "Test"}, got)
}

func TestExtractCaseSensitiveStrict(t *testing.T) {
	kp := New(true)
	kp.AddKeyword("Test")
	got := cleanNames(kp.ExtractKeywords("TEST test TeSt Test"))
	assert.Equal(t, []string{"Test"}, got)
}

func TestExtractLongestMatch(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("word")
	kp.AddKeyword("word2")
	got := cleanNames(kp.ExtractKeywords("word2"))
	assert.Equal(t, []string{"word2"}, got)
}

func TestExtractBoundaryLaw(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("apple")
	assert.Equal(t, []string{"apple"}, cleanNames(kp.ExtractKeywords("apple.")))
	assert.Empty(t, kp.ExtractKeywords("pineapple"))
}

func TestExtractMultiLabel(t *testing.T) {
	kp := New(false)
	kp.SetClean("Apple", NewCleanNames([]string{"Fruit", "Tech"}))
	got := cleanNames(kp.ExtractKeywords("I have an Apple"))
	assert.Equal(t, []string{"Fruit", "Tech"}, got)
}

func TestExtractNonASCIISeparator(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("中")
	got := cleanNames(kp.ExtractKeywords("中国"))
	assert.Equal(t, []string{"中"}, got)
}

func TestExtractMultiWordKeyword(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Test")
	kp.AddKeyword("Test Case")
	got := cleanNames(kp.ExtractKeywords("Test Case"))
	assert.Equal(t, []string{"Test Case"}, got)
}

func TestExtractKeywordSubstringOfAnotherKeyword(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Delhi")
	kp.AddKeyword("New Delhi")
	assert.Equal(t, []string{"New Delhi"}, cleanNames(kp.ExtractKeywords("I live in New Delhi")))
	assert.Equal(t, []string{"Delhi"}, cleanNames(kp.ExtractKeywords("I was born in Delhi")))
}

func TestExtractSpanInfo(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("apple")
	matches := kp.ExtractKeywords("I ate an apple today", WithSpans())
	assert.Equal(t, 1, len(matches))
	assert.Equal(t, 9, matches[0].Start)
	assert.Equal(t, 14, matches[0].End)
}

func TestExtractEmptyText(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("apple")
	assert.Empty(t, kp.ExtractKeywords(""))
}

func TestExtractNoPartialWordMatch(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("up")
	assert.Empty(t, kp.ExtractKeywords("update"))
	assert.Equal(t, []string{"up"}, cleanNames(kp.ExtractKeywords("up date")))
}
