package vcard

import (
	"bufio"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// maxLineOctets is the folding limit of RFC 2425 section 5.8.1.
const maxLineOctets = 75

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", `\n`,
)

// Encoder writes cards to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes c as one BEGIN:VCARD ... END:VCARD block.
func (e *Encoder) Encode(c *Card) error {
	bw := bufio.NewWriter(e.w)

	lines := []string{"BEGIN:VCARD", "VERSION:" + Version}
	for _, p := range ordered(c) {
		lines = append(lines, formatLine(p))
	}

	lines = append(lines, "END:VCARD")

	for _, line := range lines {
		if _, err := bw.WriteString(fold(line)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ordered returns UID first, then the other properties sorted by name.
// The sort is stable so repeated properties keep insertion order.
func ordered(c *Card) []*Property {
	props := slices.Clone(c.Properties())
	slices.SortStableFunc(props, func(a, b *Property) int {
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return ra - rb
		}

		return strings.Compare(strings.ToUpper(a.Name), strings.ToUpper(b.Name))
	})

	return props
}

func rank(p *Property) int {
	if strings.EqualFold(p.Name, FieldUID) {
		return 0
	}

	return 1
}

func formatLine(p *Property) string {
	var sb strings.Builder

	sb.WriteString(strings.ToUpper(p.Name))

	if len(p.Types) > 0 {
		sb.WriteString(";TYPE=")
		sb.WriteString(strings.Join(p.Types, ","))
	}

	sb.WriteByte(':')
	sb.WriteString(formatValue(p))

	return sb.String()
}

func formatValue(p *Property) string {
	if p.Kind == KindRaw {
		return p.Text()
	}

	comps := make([]string, len(p.Components))
	for i, comp := range p.Components {
		items := make([]string, len(comp))
		for j, item := range comp {
			items[j] = textEscaper.Replace(item)
		}

		comps[i] = strings.Join(items, ",")
	}

	return strings.Join(comps, ";")
}

// fold splits line into CRLF-terminated chunks of at most maxLineOctets
// octets, continuation chunks starting with a single space. Multi-byte
// UTF-8 sequences are never split.
func fold(line string) string {
	var sb strings.Builder

	limit := maxLineOctets

	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}

		sb.WriteString(line[:cut])
		sb.WriteString("\r\n ")

		line = line[cut:]
		limit = maxLineOctets - 1
	}

	sb.WriteString(line)
	sb.WriteString("\r\n")

	return sb.String()
}
