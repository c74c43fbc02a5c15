package xfrm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Name identifies a directed transform edge by its two coordinate
// frames, e.g. "ImageToProbe" parses to From="Image", To="Probe".
// Frame names are capitalized (first letter uppercased) on
// construction, matching the repository's internal key form.
type Name struct {
	From, To string
}

// NewName builds a Name directly from two frame names, capitalizing
// each.
func NewName(from, to string) Name {
	return Name{From: capitalize(from), To: capitalize(to)}
}

// ParseName splits a combined "<From>To<To>" string, per the single
// "To" phrase rule: exactly one occurrence of "To" followed by an
// uppercase letter must appear, with a nonempty frame name on each
// side. The To frame is cut at its first "Transform" (so
// "ImageToProbeTransform" also parses as Image -> Probe).
func ParseName(transformName string) (Name, error) {
	if transformName == "" {
		return Name{}, fmt.Errorf("xfrm: empty transform name")
	}

	posTo := -1
	matches := 0
	offset := 0
	rest := transformName
	for {
		i := strings.Index(rest, "To")
		if i < 0 || i+2 >= len(rest) {
			break
		}
		if isUpper(rest[i+2]) {
			matches++
			posTo = offset + i
		}
		offset += i + 2
		rest = rest[i+2:]
	}
	if matches != 1 {
		return Name{}, fmt.Errorf("xfrm: transform name %q has %d matching \"To\" phrases, want exactly 1", transformName, matches)
	}
	if posTo == 0 {
		return Name{}, fmt.Errorf("xfrm: transform name %q has no frame before \"To\"", transformName)
	}
	if posTo == len(transformName)-2 {
		return Name{}, fmt.Errorf("xfrm: transform name %q has no frame after \"To\"", transformName)
	}

	from := transformName[:posTo]
	to := transformName[posTo+2:]
	if i := strings.Index(to, "Transform"); i >= 0 {
		to = to[:i]
	}
	if to == "" {
		return Name{}, fmt.Errorf("xfrm: transform name %q has no frame after \"To\"", transformName)
	}
	return Name{From: capitalize(from), To: capitalize(to)}, nil
}

// String renders the combined "<From>To<To>" form.
func (n Name) String() string {
	return n.From + "To" + n.To
}

// IsValid reports whether both frame names are nonempty and neither
// contains a "To<uppercase>" phrase itself - a frame name with such a
// phrase would make n.String() re-split ambiguously in ParseName
// (more than one matching "To" phrase), the exact case the invariant
// exists to rule out.
func (n Name) IsValid() bool {
	if n.From == "" || n.To == "" {
		return false
	}
	return !containsToUppercasePhrase(n.From) && !containsToUppercasePhrase(n.To)
}

func containsToUppercasePhrase(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == 'T' && s[i+1] == 'o' && isUpper(s[i+2]) {
			return true
		}
	}
	return false
}

// Reversed swaps From and To.
func (n Name) Reversed() Name {
	return Name{From: n.To, To: n.From}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(s[:size]) + s[size:]
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
