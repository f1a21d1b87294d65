package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/arcanaland/idioms/internal/functools"
)

// DefaultClipWidth is used when no usable width is configured
const DefaultClipWidth = 80

// NFC returns s in Unicode normalization form C
var NFC = functools.Bind(norm.Form.String, norm.NFC)

// NFD returns s in Unicode normalization form D
var NFD = functools.Bind(norm.Form.String, norm.NFD)

// Hyphenate replaces every space in s with a hyphen
var Hyphenate = strings.NewReplacer(" ", "-").Replace

// Clip cuts s at the last space before maxLen runes, or failing that at the
// last space after it, and trims trailing whitespace. Text without any
// usable space is returned whole.
func Clip(s string, maxLen int) string {
	runes := []rune(s)
	end := -1

	if len(runes) > maxLen {
		if before := lastSpace(runes[:max(maxLen, 0)]); before >= 0 {
			end = before
		} else if after := lastSpace(runes[max(maxLen, 0):]); after >= 0 {
			end = max(maxLen, 0) + after
		}
	}
	if end < 0 {
		end = len(runes)
	}

	return strings.TrimRightFunc(string(runes[:end]), unicode.IsSpace)
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
