package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeToPascal(t *testing.T) {
	cases := map[string]string{
		"age":          "Age",
		"published_at": "PublishedAt",
		"name":         "Name",
		"Name":         "Name",
		"a_b_c":        "ABC",
		"":             "",
	}

	for in, want := range cases {
		assert.Equal(t, want, SnakeToPascal(in), "input %q", in)
	}
}

func TestPascalToSnake(t *testing.T) {
	cases := map[string]string{
		"Person":        "person",
		"PersonSummary": "person_summary",
		"NewPerson":     "new_person",
		"":              "",
	}

	for in, want := range cases {
		assert.Equal(t, want, PascalToSnake(in), "input %q", in)
	}
}

func TestRoundTripOnSnakeNames(t *testing.T) {
	for _, name := range []string{"age", "published_at", "customer_order_id"} {
		assert.Equal(t, name, PascalToSnake(SnakeToPascal(name)))
	}
}
