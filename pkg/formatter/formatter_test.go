package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLikes(t *testing.T) {
	cases := map[int]string{
		0:         "0",
		7:         "7",
		999:       "999",
		1000:      "1K",
		1234:      "1.2K",
		45678:     "45.7K",
		999999:    "1000K",
		1000000:   "1M",
		4500000:   "4.5M",
		-3:        "0",
		987654321: "987.7M",
	}
	for n, want := range cases {
		assert.Equal(t, want, FormatLikes(n), "n=%d", n)
	}
}
