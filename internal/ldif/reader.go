package ldif

import (
	"bufio"
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

// Reader reads records from an LDIF stream. It holds at most one record
// in memory at a time.
type Reader struct {
	br *bufio.Reader

	line    int
	peeked  bool
	peek    string
	peekNum int

	started bool
}

// NewReader creates a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Next() (*Record, error) {
	var rec *Record

	for {
		line, num, ok, err := r.logical()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		if line == "" {
			if rec != nil {
				break
			}

			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if !r.started {
			r.started = true

			if name, _, found := strings.Cut(line, ":"); found && strings.EqualFold(name, "version") {
				continue
			}
		}

		name, value, err := parseLine(line, num)
		if err != nil {
			return nil, err
		}

		if rec == nil {
			if !strings.EqualFold(name, "dn") {
				return nil, newParseError(num, "record must start with a dn: line", line)
			}

			rec = newRecord(EscapeDN(value), num)

			continue
		}

		rec.add(name, value)
	}

	if rec == nil {
		return nil, io.EOF
	}

	return rec, nil
}

// parseLine splits a logical "attr: value" line.
func parseLine(line string, num int) (string, string, error) {
	name, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", newParseError(num, "missing ':' after attribute name", line)
	}

	if name == "" || strings.ContainsAny(name, " \t") {
		return "", "", newParseError(num, "invalid attribute name", line)
	}

	switch {
	case strings.HasPrefix(rest, ":"):
		raw := strings.TrimSpace(rest[1:])

		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return "", "", wrapParseError(num, "invalid base64 value", line, err)
		}

		return name, string(decoded), nil
	case strings.HasPrefix(rest, "<"):
		return "", "", newParseError(num, "URL values are not supported", line)
	default:
		return name, strings.TrimLeft(rest, " "), nil
	}
}

// logical returns the next line with folded continuation lines joined.
func (r *Reader) logical() (string, int, bool, error) {
	first, num, ok, err := r.physical()
	if err != nil || !ok {
		return "", 0, ok, err
	}

	if first == "" {
		return first, num, true, nil
	}

	var sb strings.Builder

	sb.WriteString(first)

	for {
		next, n, ok, err := r.physical()
		if err != nil {
			return "", 0, false, err
		}

		if !ok {
			break
		}

		if !strings.HasPrefix(next, " ") {
			r.unread(next, n)
			break
		}

		sb.WriteString(next[1:])
	}

	return sb.String(), num, true, nil
}

func (r *Reader) physical() (string, int, bool, error) {
	if r.peeked {
		r.peeked = false
		return r.peek, r.peekNum, true, nil
	}

	s, err := r.br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, false, err
	}

	if errors.Is(err, io.EOF) && s == "" {
		return "", 0, false, nil
	}

	r.line++

	return strings.TrimRight(s, "\r\n"), r.line, true, nil
}

func (r *Reader) unread(line string, num int) {
	r.peeked = true
	r.peek = line
	r.peekNum = num
}
