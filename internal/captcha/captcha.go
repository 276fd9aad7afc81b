// Package captcha generates the arithmetic challenges shown to
// unregistered users before the referral step.
package captcha

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Challenge is a generated arithmetic question with its expected answer.
// The answer is kept as a string because it is compared against raw
// user input.
type Challenge struct {
	Question string
	Answer   string
}

// Generator produces challenges using a configured operator set
type Generator struct {
	operations []string
}

// NewGenerator creates a generator restricted to the given operators.
// Supported operators are +, - and *.
func NewGenerator(operations []string) (*Generator, error) {
	if len(operations) == 0 {
		return nil, fmt.Errorf("at least one captcha operation is required")
	}
	for _, op := range operations {
		switch op {
		case "+", "-", "*":
		default:
			return nil, fmt.Errorf("unsupported captcha operation %q", op)
		}
	}
	return &Generator{operations: operations}, nil
}

// Generate produces a challenge with two single-digit operands
func (g *Generator) Generate() Challenge {
	a := rand.Intn(9) + 1
	b := rand.Intn(9) + 1
	op := g.operations[rand.Intn(len(g.operations))]

	var answer int
	switch op {
	case "+":
		answer = a + b
	case "-":
		answer = a - b
	case "*":
		answer = a * b
	}

	return Challenge{
		Question: fmt.Sprintf("%d%s%d", a, op, b),
		Answer:   strconv.Itoa(answer),
	}
}
