package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Go: Tips & Tricks!  ", "go-tips-tricks"},
		{"Already-a-slug", "already-a-slug"},
		{"Multiple   spaces---and___underscores", "multiple-spaces-and-underscores"},
		{"2026 Roadmap", "2026-roadmap"},
		{"!!!", ""},
		{"Привет мир", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := GenerateSlug(tt.title)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, IsValidSlug(got))
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"a", "hello-world", "post-2026", "---"}
	invalid := []string{"", "Hello", "hello world", "hello_world", "привет", "a/b", " a"}

	for _, slug := range valid {
		assert.True(t, IsValidSlug(slug), slug)
	}
	for _, slug := range invalid {
		assert.False(t, IsValidSlug(slug), slug)
	}
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"Одно слово", "word", 1},
		{"Ровно 200 слов", words(200), 1},
		{"201 слово", words(201), 2},
		{"Ровно 400 слов", words(400), 2},
		{"401 слово", words(401), 3},
		{"Пробелы и переносы", "one\n\ttwo   three", 1},
		{"Пустой текст", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, normalizeTags(nil))
	assert.Equal(t, []string{"go", "web dev"}, normalizeTags([]string{" go ", "", "  ", "web dev"}))
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, optionalText(""))
	assert.Nil(t, optionalText("   "))

	got := optionalText("  short summary ")
	if assert.NotNil(t, got) {
		assert.Equal(t, "short summary", *got)
	}
}
