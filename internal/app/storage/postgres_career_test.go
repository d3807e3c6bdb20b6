package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikeTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"machine learning", "machine learning"},
		{"100%", `100\%`},
		{"c_plus", `c\_plus`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLikeTerm(tc.in), tc.in)
	}
}
