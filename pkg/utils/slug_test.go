package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taruvae/pkg/utils"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Benefits of A2 Ghee":        "benefits-of-a2-ghee",
		"  Wild   Honey!  ":          "wild-honey",
		"100% Natural":               "100-natural",
		"Turmeric & Honey: A Pairing": "turmeric-honey-a-pairing",
		"":                           "",
		"!!!":                        "",
	}
	for title, want := range cases {
		assert.Equal(t, want, utils.Slugify(title), "title %q", title)
	}
}
