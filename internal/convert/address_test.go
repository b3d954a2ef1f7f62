package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldif2vcard/internal/vcard"
)

func TestClassifyFragment(t *testing.T) {
	tests := []struct {
		frag string
		want fragmentKind
	}{
		{"Suite 400", fragmentExtended},
		{"SUITE B", fragmentExtended},
		{"suites are nice", fragmentExtended},
		{"Apt. 3", fragmentExtended},
		{"Apt 3", fragmentStreet},
		{"P.O. Box 12", fragmentBox},
		{"pob 7", fragmentBox},
		{"POB7", fragmentStreet},
		{"3rd floor", fragmentExtended},
		{"Third Flr", fragmentExtended},
		{"12 fl", fragmentExtended},
		{"3rd  Floor", fragmentExtended},
		{"12 Foo St., 3rd floor", fragmentStreet},
		{"3rd floors", fragmentStreet},
		{"123 Main St.", fragmentStreet},
		{"", fragmentStreet},
	}

	for _, tt := range tests {
		t.Run(tt.frag, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyFragment(tt.frag))
		})
	}
}

func TestAddress_Resolve(t *testing.T) {
	tests := []struct {
		name string
		addr address
		want vcard.Address
	}{
		{
			name: "street then suite",
			addr: address{street: []string{"123 Main St."}, street2: []string{"Suite 400"}},
			want: vcard.Address{Street: []string{"123 Main St."}, Extended: "Suite 400"},
		},
		{
			name: "suite from first list",
			addr: address{street: []string{"Suite 400"}, street2: []string{"123 Main St."}},
			want: vcard.Address{Street: []string{"123 Main St."}, Extended: "Suite 400"},
		},
		{
			name: "semicolon separated fragments",
			addr: address{street: []string{"123 Main St.; Suite 400 ;P.O. Box 9"}},
			want: vcard.Address{Street: []string{"123 Main St."}, Extended: "Suite 400", Box: "P.O. Box 9"},
		},
		{
			name: "classified fragments overwrite explicit parts",
			addr: address{box: "Box 1", extended: "Rear", street: []string{"pob 2", "Apt. 5"}},
			want: vcard.Address{Box: "pob 2", Extended: "Apt. 5"},
		},
		{
			name: "last extended wins",
			addr: address{street: []string{"Suite 1", "2nd floor"}},
			want: vcard.Address{Extended: "2nd floor"},
		},
		{
			name: "street lines keep supply order",
			addr: address{street: []string{"Building 7", "1 Infinite Loop"}, street2: []string{"Wing C"}},
			want: vcard.Address{Street: []string{"Building 7", "1 Infinite Loop", "Wing C"}},
		},
		{
			name: "other parts pass through",
			addr: address{city: "Springfield", region: "IL", postalCode: "62701", country: "USA"},
			want: vcard.Address{City: "Springfield", Region: "IL", PostalCode: "62701", Country: "USA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.resolve())
		})
	}
}

func TestBuild_Addresses(t *testing.T) {
	card := buildCard(t, quietOptions(),
		field("mozillaHomeStreet", "123 Main St."),
		field("mozillaHomeStreet2", "Suite 400"),
		field("mozillaHomeLocalityName", "Springfield"),
		field("mozillaHomeState", "IL"),
		field("mozillaHomePostalCode", "62701"),
		field("mozillaHomeCountryName", "USA"),
		field("street", "1 Corporate Way", "Building 2"),
		field("mozillaWorkStreet2", "3rd floor"),
		field("l", "Chicago"),
		field("st", "IL"),
		field("postalCode", "60601"),
		field("c", "USA"),
	)

	adrs := card.All(vcard.FieldAddress)
	require.Len(t, adrs, 2)
	assert.Equal(t, []string{"home"}, adrs[0].Types)
	assert.Equal(t, []string{"work"}, adrs[1].Types)

	home, ok := card.Address("home")
	require.True(t, ok)
	assert.Equal(t, vcard.Address{
		Extended:   "Suite 400",
		Street:     []string{"123 Main St."},
		City:       "Springfield",
		Region:     "IL",
		PostalCode: "62701",
		Country:    "USA",
	}, home)

	work, ok := card.Address("work")
	require.True(t, ok)
	assert.Equal(t, vcard.Address{
		Extended:   "3rd floor",
		Street:     []string{"1 Corporate Way", "Building 2"},
		City:       "Chicago",
		Region:     "IL",
		PostalCode: "60601",
		Country:    "USA",
	}, work)
}

func TestBuild_AddressContextTouchedByEmptyValue(t *testing.T) {
	card := buildCard(t, quietOptions(), field("mozillaHomeCountryName", ""))

	adrs := card.All(vcard.FieldAddress)
	require.Len(t, adrs, 1)
	assert.True(t, adrs[0].HasType("home"))
	assert.Equal(t, ";;;;;;", adrs[0].Text())
}

func TestBuild_NoAddressWhenUntouched(t *testing.T) {
	card := buildCard(t, quietOptions(), field("cn", "Jane"))
	assert.False(t, card.Has(vcard.FieldAddress))
}

func TestBuild_WorkBoxAndExtended(t *testing.T) {
	card := buildCard(t, quietOptions(), field("mozillaWorkPoBox", "PO Box 5"), field("mozillaWorkExtended", "Dock 4"))

	work, ok := card.Address("work")
	require.True(t, ok)
	assert.Equal(t, vcard.Address{Box: "PO Box 5", Extended: "Dock 4"}, work)
}
