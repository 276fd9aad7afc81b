package handler

import (
	"testing"

	"storebot/internal/dialog"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain token",
			input:    "menu_locations",
			expected: "menu_locations",
		},
		{
			name:     "tagged value",
			input:    "city:Metropolis",
			expected: "city:Metropolis",
		},
		{
			name:     "surrounding whitespace",
			input:    "  back  ",
			expected: "back",
		},
		{
			name:     "embedded control characters",
			input:    "store:Corner\x00 Shop\x1b",
			expected: "store:Corner Shop",
		},
		{
			name:     "newline and tab stripped",
			input:    "confirm\n\t",
			expected: "confirm",
		},
		{
			name:     "unicode labels survive",
			input:    "region:Północ",
			expected: "region:Północ",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestBuildMarkup(t *testing.T) {
	t.Run("no options means no markup", func(t *testing.T) {
		assert.Nil(t, buildMarkup(nil))
		assert.Nil(t, buildMarkup([]dialog.Option{}))
	})

	t.Run("one button per row", func(t *testing.T) {
		markup := buildMarkup([]dialog.Option{
			{Label: "North", Token: "region:North"},
			{Label: "⬅️ Back", Token: "back"},
		})
		assert.Len(t, markup.InlineKeyboard, 2)
		assert.Len(t, markup.InlineKeyboard[0], 1)
		assert.Equal(t, "North", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "region:North", markup.InlineKeyboard[0][0].Data)
		assert.Equal(t, "back", markup.InlineKeyboard[1][0].Data)
	})
}
