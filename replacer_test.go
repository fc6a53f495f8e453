package flashkw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceMultiLabel(t *testing.T) {
	kp := New(false)
	kp.SetClean("Apple", NewCleanNames([]string{"Fruit", "Tech"}))
	assert.Equal(t, "Fruit", kp.ReplaceKeywords("Apple"))
	assert.Equal(t, "I have an Fruit", kp.ReplaceKeywords("I have an Apple"))
}

func TestReplacePreservesSurroundingText(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Java", "java_lang")
	got := kp.ReplaceKeywords("I like Java programming, Java is great.")
	assert.Equal(t, "I like java_lang programming, java_lang is great.", got)
}

func TestReplaceNoMatchIsUnchanged(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Java")
	assert.Equal(t, "no keywords here", kp.ReplaceKeywords("no keywords here"))
}

func TestReplaceRespectsBoundaryLaw(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("apple", "fruit")
	assert.Equal(t, "a pineapple a day", kp.ReplaceKeywords("a pineapple a day"))
	assert.Equal(t, "I ate a fruit.", kp.ReplaceKeywords("I ate a apple."))
}

func TestReplaceLongestMatch(t *testing.T) {
	kp := New(false)
	kp.AddKeyword("Test", "T1")
	kp.AddKeyword("Test Case", "T2")
	assert.Equal(t, "T2 passed", kp.ReplaceKeywords("Test Case passed"))
}
