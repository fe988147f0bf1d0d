package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSource(t *testing.T) {
	source := `ORG 100
LDA X

	CLE  / clear E
end`
	lines, err := tokenizeSource(strings.NewReader(source))
	assert.Nil(t, err)
	expected := [][]string{
		{"org", "100"},
		{"lda", "x"},
		{},
		{"cle", "/", "clear", "e"},
		{"end"},
	}
	assert.Equal(t, expected, lines)
}

func TestTokenizeSource_LowerCasesEverything(t *testing.T) {
	lines, err := tokenizeSource(strings.NewReader("LOOP, ISZ CTR I\n"))
	assert.Nil(t, err)
	assert.Equal(t, [][]string{{"loop,", "isz", "ctr", "i"}}, lines)
}

func TestTokenizeSource_Empty(t *testing.T) {
	lines, err := tokenizeSource(strings.NewReader(""))
	assert.Nil(t, err)
	assert.Empty(t, lines)
}

func TestStripComments(t *testing.T) {
	lines := [][]string{
		{"/", "whole", "line", "comment"},
		{"lda", "x", "/load", "x"},
		{"cla"},
		{},
		{"isz", "ctr", "/", "count", "up"},
	}
	stripComments(lines)
	expected := [][]string{
		{},
		{"lda", "x"},
		{"cla"},
		{},
		{"isz", "ctr"},
	}
	assert.Equal(t, expected, lines)
	// stripping again changes nothing
	stripComments(lines)
	assert.Equal(t, expected, lines)
}

func TestIsLabel(t *testing.T) {
	assert.True(t, isLabel("loop,"))
	assert.True(t, isLabel(","))
	assert.False(t, isLabel("loop"))
	assert.False(t, isLabel("org"))
}
