package vcard

import (
	"strings"

	"ldif2vcard/internal/common"
)

// Version is the vCard version written by the Encoder.
const Version = "3.0"

// Property names.
const (
	FieldFormattedName = "FN"
	FieldName          = "N"
	FieldNickname      = "NICKNAME"
	FieldTitle         = "TITLE"
	FieldTelephone     = "TEL"
	FieldEmail         = "EMAIL"
	FieldURL           = "URL"
	FieldNote          = "NOTE"
	FieldAddress       = "ADR"
	FieldBirthday      = "BDAY"
	FieldOrganization  = "ORG"
	FieldRevision      = "REV"
	FieldUID           = "UID"
	FieldActivityAlert = "X-ACTIVITY-ALERT"
)

// TYPE parameter values.
const (
	TypeHome     = "HOME"
	TypeWork     = "WORK"
	TypeCell     = "CELL"
	TypeFax      = "FAX"
	TypePager    = "PAGER"
	TypeInternet = "INTERNET"
	TypePref     = "PREF"
)

// ValueKind says how a property value is escaped on output.
type ValueKind int

const (
	KindText ValueKind = iota
	KindRaw
	KindStructured
)

// Property is a single content line.
type Property struct {
	Name  string
	Types []string
	Kind  ValueKind
	// Components holds the value. Text and raw values have exactly one
	// component with one element; structured values have one component per
	// ';'-separated field, each possibly a ','-separated list.
	Components [][]string
}

// Text returns the value of a text or raw property, or the components of
// a structured property joined by ';' without escaping.
func (p *Property) Text() string {
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = strings.Join(c, ",")
	}

	return strings.Join(parts, ";")
}

// HasType reports whether t is one of the property's TYPE values.
func (p *Property) HasType(t string) bool {
	for _, v := range p.Types {
		if strings.EqualFold(v, t) {
			return true
		}
	}

	return false
}

// Name is the structured N value.
type Name struct {
	Family     string
	Given      string
	Additional string
	Prefix     string
	Suffix     string
}

// Address is the structured ADR value.
type Address struct {
	Box        string
	Extended   string
	Street     []string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// Card is a vCard under construction. The zero value is an empty card.
type Card struct {
	props []*Property
}

// New creates an empty card.
func New() *Card {
	return &Card{}
}

// Add appends a property.
func (c *Card) Add(p *Property) {
	c.props = append(c.props, p)
}

// AddText appends a text property.
func (c *Card) AddText(name, value string, types ...string) {
	c.Add(&Property{Name: name, Types: types, Kind: KindText, Components: [][]string{{value}}})
}

// AddRaw appends a property whose value is written verbatim.
func (c *Card) AddRaw(name, value string, types ...string) {
	c.Add(&Property{Name: name, Types: types, Kind: KindRaw, Components: [][]string{{value}}})
}

// SetName replaces any N property with n.
func (c *Card) SetName(n Name) {
	c.Remove(FieldName)
	c.Add(&Property{
		Name: FieldName,
		Kind: KindStructured,
		Components: [][]string{
			{n.Family}, {n.Given}, {n.Additional}, {n.Prefix}, {n.Suffix},
		},
	})
}

// AddAddress appends an ADR property.
func (c *Card) AddAddress(a Address, types ...string) {
	street := a.Street
	if len(street) == 0 {
		street = []string{""}
	}

	c.Add(&Property{
		Name:  FieldAddress,
		Types: types,
		Kind:  KindStructured,
		Components: [][]string{
			{a.Box}, {a.Extended}, street, {a.City}, {a.Region}, {a.PostalCode}, {a.Country},
		},
	})
}

// SetOrganization replaces any ORG property with the given name and units.
func (c *Card) SetOrganization(units []string) {
	c.Remove(FieldOrganization)

	comps := make([][]string, len(units))
	for i, u := range units {
		comps[i] = []string{u}
	}

	c.Add(&Property{Name: FieldOrganization, Kind: KindStructured, Components: comps})
}

// Remove deletes every property with the given name.
func (c *Card) Remove(name string) {
	kept := c.props[:0]
	for _, p := range c.props {
		if !strings.EqualFold(p.Name, name) {
			kept = append(kept, p)
		}
	}

	c.props = kept
}

// All returns the properties with the given name in insertion order.
func (c *Card) All(name string) []*Property {
	var out []*Property

	for _, p := range c.props {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}

	return out
}

// Get returns the first property with the given name, or nil.
func (c *Card) Get(name string) *Property {
	for _, p := range c.props {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}

	return nil
}

// Has reports whether the card has a property with the given name.
func (c *Card) Has(name string) bool {
	return c.Get(name) != nil
}

// Value returns the text of the first property with the given name, or "".
func (c *Card) Value(name string) string {
	if p := c.Get(name); p != nil {
		return p.Text()
	}

	return ""
}

// Name returns the structured name, if one is set.
func (c *Card) Name() (Name, bool) {
	p := c.Get(FieldName)
	if p == nil || len(p.Components) != 5 {
		return Name{}, false
	}

	return Name{
		Family:     common.FirstOr(p.Components[0], ""),
		Given:      common.FirstOr(p.Components[1], ""),
		Additional: common.FirstOr(p.Components[2], ""),
		Prefix:     common.FirstOr(p.Components[3], ""),
		Suffix:     common.FirstOr(p.Components[4], ""),
	}, true
}

// Address returns the first ADR property carrying TYPE t.
func (c *Card) Address(t string) (Address, bool) {
	for _, p := range c.All(FieldAddress) {
		if !p.HasType(t) || len(p.Components) != 7 {
			continue
		}

		var street []string

		for _, s := range p.Components[2] {
			if s != "" {
				street = append(street, s)
			}
		}

		return Address{
			Box:        common.FirstOr(p.Components[0], ""),
			Extended:   common.FirstOr(p.Components[1], ""),
			Street:     street,
			City:       common.FirstOr(p.Components[3], ""),
			Region:     common.FirstOr(p.Components[4], ""),
			PostalCode: common.FirstOr(p.Components[5], ""),
			Country:    common.FirstOr(p.Components[6], ""),
		}, true
	}

	return Address{}, false
}

// Organization returns the ORG components, or nil.
func (c *Card) Organization() []string {
	p := c.Get(FieldOrganization)
	if p == nil {
		return nil
	}

	return common.Map(p.Components, func(comp []string) string {
		return common.FirstOr(comp, "")
	})
}

// Properties returns the card's properties in insertion order.
func (c *Card) Properties() []*Property {
	return c.props
}
