package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var prefixes = []string{
	"navigates to more detail for",
	"Address for this organisation is",
}

func TestFirstVisible(t *testing.T) {
	cases := []struct {
		segments []string
		expect   string
	}{
		{[]string{"navigates to more detail for The Clinic", "The Clinic"}, "The Clinic"},
		{[]string{"Address for this organisation is", "1 High Street"}, "1 High Street"},
		{[]string{"1 High Street"}, "1 High Street"},
		{[]string{"navigates to more detail for The Clinic"}, ""},
		{nil, ""},
	}
	for _, c := range cases {
		require.Equal(t, c.expect, FirstVisible(c.segments, prefixes))
	}
}

// cleaning already-clean text must be a no-op
func TestFirstVisibleIdempotent(t *testing.T) {
	cleaned := FirstVisible([]string{"navigates to more detail for The Clinic", "The Clinic"}, prefixes)
	require.Equal(t, cleaned, FirstVisible([]string{cleaned}, prefixes))
}
