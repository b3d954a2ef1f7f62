package ldif

import "strings"

// EscapeDN escapes the ", " separators that mail clients leave unescaped
// inside a distinguished name ("cn=Doe, Jane,mail=..."), so they are not
// taken for RDN boundaries. Separators that are already escaped are left
// alone, which makes EscapeDN idempotent.
func EscapeDN(dn string) string {
	if !strings.Contains(dn, ", ") {
		return dn
	}

	var sb strings.Builder

	sb.Grow(len(dn) + 4)

	for i := 0; i < len(dn); i++ {
		if dn[i] == ',' && i+1 < len(dn) && dn[i+1] == ' ' && (i == 0 || dn[i-1] != '\\') {
			sb.WriteByte('\\')
		}

		sb.WriteByte(dn[i])
	}

	return sb.String()
}
