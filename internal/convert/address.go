package convert

import (
	"regexp"
	"strings"

	"ldif2vcard/internal/common"
	"ldif2vcard/internal/vcard"
)

// Address contexts, used as the ADR TYPE value.
const (
	contextHome = "home"
	contextWork = "work"
)

var floorPattern = regexp.MustCompile(`^\w+\s+fl(oor|r|)$`)

// address accumulates the parts of one context's ADR property. A non-nil
// *address means the context was touched, even if every part is empty.
type address struct {
	box        string
	extended   string
	street     []string
	street2    []string
	city       string
	region     string
	postalCode string
	country    string
}

// resolve classifies the street fragments and returns the ADR value.
func (a *address) resolve() vcard.Address {
	out := vcard.Address{
		Box:        a.box,
		Extended:   a.extended,
		City:       a.city,
		Region:     a.region,
		PostalCode: a.postalCode,
		Country:    a.country,
	}

	parts := make([]string, 0, len(a.street)+len(a.street2))
	parts = append(parts, a.street...)
	parts = append(parts, a.street2...)

	var lines []string

	for _, part := range parts {
		for _, frag := range strings.Split(part, ";") {
			frag = strings.TrimSpace(frag)

			switch classifyFragment(frag) {
			case fragmentExtended:
				out.Extended = frag
			case fragmentBox:
				out.Box = frag
			default:
				lines = append(lines, frag)
			}
		}
	}

	if !common.IsEmpty(lines) {
		out.Street = lines
	}

	return out
}

type fragmentKind int

const (
	fragmentStreet fragmentKind = iota
	fragmentExtended
	fragmentBox
)

func classifyFragment(frag string) fragmentKind {
	lower := strings.ToLower(frag)

	switch {
	case strings.HasPrefix(lower, "suite"), strings.HasPrefix(lower, "apt."):
		return fragmentExtended
	case strings.HasPrefix(lower, "p.o. box"), strings.HasPrefix(lower, "pob "):
		return fragmentBox
	case floorPattern.MatchString(lower):
		return fragmentExtended
	default:
		return fragmentStreet
	}
}
