package ldif

// Attribute is one attribute of a record with its values in supply order.
type Attribute struct {
	Name   string
	Values []string
}

// Record is a single LDIF entry.
type Record struct {
	// DN is the distinguished name, with embedded ", " escaped by EscapeDN.
	DN string
	// Line is the line number of the dn: line.
	Line int
	// Attributes in order of first appearance. Repeated attribute lines
	// append to the same Attribute.
	Attributes []Attribute

	index map[string]int
}

func newRecord(dn string, line int) *Record {
	return &Record{
		DN:    dn,
		Line:  line,
		index: make(map[string]int),
	}
}

func (r *Record) add(name, value string) {
	if i, ok := r.index[name]; ok {
		r.Attributes[i].Values = append(r.Attributes[i].Values, value)
		return
	}

	r.index[name] = len(r.Attributes)
	r.Attributes = append(r.Attributes, Attribute{Name: name, Values: []string{value}})
}
