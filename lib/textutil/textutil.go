package textutil

import "strings"

// FirstVisible returns the first text segment that does not start with any of
// the given screen-reader-only prefixes. Pages render several fields as
// "<hidden phrase> <visible value>"; the hidden phrase arrives as its own
// segment and is skipped. Re-applying this to an already clean value is a
// no-op since clean values carry none of the prefixes.
func FirstVisible(segments []string, hiddenPrefixes []string) string {
	for _, segment := range segments {
		if startsWithAny(segment, hiddenPrefixes) {
			continue
		}
		return segment
	}
	return ""
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
