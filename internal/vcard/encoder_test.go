package vcard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, c *Card) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, NewEncoder(&sb).Encode(c))

	return sb.String()
}

func TestEncode_OrderAndEscaping(t *testing.T) {
	c := New()
	c.AddText(FieldTelephone, "555-1234", TypeHome)
	c.AddText(FieldFormattedName, "Doe, Jane")
	c.AddText(FieldEmail, "jane@example.com", TypeInternet, TypePref)
	c.AddText(FieldTelephone, "555-9876", TypeCell)
	c.AddRaw(FieldActivityAlert, `type=call,snd="system:Alarm Clock"`)
	c.AddRaw(FieldUID, "urn:uuid:1234")
	c.SetName(Name{Family: "Doe", Given: "Jane"})
	c.AddAddress(Address{Extended: "Suite 400", Street: []string{"123 Main St.", "Bldg 2"}, City: "Springfield"}, "work")
	c.SetOrganization([]string{"Acme; Inc", "R&D"})
	c.AddText(FieldNote, "line one\nline two")

	want := "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"UID:urn:uuid:1234\r\n" +
		"ADR;TYPE=work:;Suite 400;123 Main St.,Bldg 2;Springfield;;;\r\n" +
		"EMAIL;TYPE=INTERNET,PREF:jane@example.com\r\n" +
		"FN:Doe\\, Jane\r\n" +
		"N:Doe;Jane;;;\r\n" +
		"NOTE:line one\\nline two\r\n" +
		"ORG:Acme\\; Inc;R&D\r\n" +
		"TEL;TYPE=HOME:555-1234\r\n" +
		"TEL;TYPE=CELL:555-9876\r\n" +
		"X-ACTIVITY-ALERT:type=call,snd=\"system:Alarm Clock\"\r\n" +
		"END:VCARD\r\n"

	assert.Equal(t, want, encode(t, c))
}

func TestEncode_EmptyCard(t *testing.T) {
	assert.Equal(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nEND:VCARD\r\n", encode(t, New()))
}

func TestFold(t *testing.T) {
	t.Run("short line untouched", func(t *testing.T) {
		assert.Equal(t, "FN:x\r\n", fold("FN:x"))
	})

	t.Run("long ascii line", func(t *testing.T) {
		line := "NOTE:" + strings.Repeat("a", 200)
		out := fold(line)

		chunks := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 75)
		assert.Len(t, chunks[1], 75)
		assert.True(t, strings.HasPrefix(chunks[1], " "))

		var joined strings.Builder
		joined.WriteString(chunks[0])

		for _, c := range chunks[1:] {
			joined.WriteString(strings.TrimPrefix(c, " "))
		}

		assert.Equal(t, line, joined.String())
	})

	t.Run("utf8 not split", func(t *testing.T) {
		line := "NOTE:" + strings.Repeat("ß", 60)
		out := fold(line)

		for _, chunk := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
			assert.LessOrEqual(t, len(chunk), 75)
			assert.True(t, strings.HasPrefix(strings.TrimPrefix(chunk, " "), "ß") || strings.HasPrefix(chunk, "NOTE:"))
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncode_WriteError(t *testing.T) {
	c := New()
	c.AddText(FieldNote, strings.Repeat("x", 5000))

	err := NewEncoder(failingWriter{}).Encode(c)
	assert.EqualError(t, err, "disk full")
}
