package captcha

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name        string
		operations  []string
		expectError bool
	}{
		{
			name:       "default operators",
			operations: []string{"+", "-"},
		},
		{
			name:       "multiplication",
			operations: []string{"*"},
		},
		{
			name:        "empty set",
			operations:  nil,
			expectError: true,
		},
		{
			name:        "unsupported operator",
			operations:  []string{"+", "/"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.operations)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, gen)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, gen)
			}
		})
	}
}

var questionRe = regexp.MustCompile(`^([1-9])([+\-*])([1-9])$`)

func TestGenerator_Generate(t *testing.T) {
	gen, err := NewGenerator([]string{"+", "-", "*"})
	assert.NoError(t, err)

	// Generate a batch to cover all operators with high probability
	for i := 0; i < 100; i++ {
		ch := gen.Generate()

		parts := questionRe.FindStringSubmatch(ch.Question)
		assert.NotNil(t, parts, "question %q should be two single-digit operands", ch.Question)

		a, _ := strconv.Atoi(parts[1])
		b, _ := strconv.Atoi(parts[3])

		var want int
		switch parts[2] {
		case "+":
			want = a + b
		case "-":
			want = a - b
		case "*":
			want = a * b
		}
		assert.Equal(t, strconv.Itoa(want), ch.Answer)
	}
}

func TestGenerator_RestrictedOperatorSet(t *testing.T) {
	gen, err := NewGenerator([]string{"+"})
	assert.NoError(t, err)

	for i := 0; i < 50; i++ {
		ch := gen.Generate()
		assert.Contains(t, ch.Question, "+", fmt.Sprintf("question %q must use the configured operator", ch.Question))
	}
}
