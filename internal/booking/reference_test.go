package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReference_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^GYM-[0-9A-F]{8}$`)

	for i := 0; i < 100; i++ {
		ref := NewReference()
		require.Regexp(t, pattern, ref)
	}
}

func TestNewReference_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		require.False(t, seen[ref], "reference %s generated twice", ref)
		seen[ref] = true
	}
}
