package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_Accessors(t *testing.T) {
	c := New()
	assert.Empty(t, c.Properties())
	assert.False(t, c.Has(FieldName))

	c.AddText(FieldFormattedName, "Jane Doe")
	c.AddText(FieldTelephone, "1", TypeHome)
	c.AddText(FieldTelephone, "2", TypeWork)

	assert.Equal(t, "Jane Doe", c.Value(FieldFormattedName))
	assert.Equal(t, "", c.Value(FieldNickname))
	assert.Len(t, c.All("tel"), 2)
	assert.True(t, c.All(FieldTelephone)[1].HasType("work"))
	assert.False(t, c.All(FieldTelephone)[1].HasType(TypeHome))

	c.Remove(FieldTelephone)
	assert.Nil(t, c.Get(FieldTelephone))
	assert.Len(t, c.Properties(), 1)
}

func TestCard_Name(t *testing.T) {
	c := New()

	_, ok := c.Name()
	assert.False(t, ok)

	c.SetName(Name{Family: "Doe"})
	c.SetName(Name{Family: "Roe", Given: "Richard"})

	require.Len(t, c.All(FieldName), 1)

	n, ok := c.Name()
	require.True(t, ok)
	assert.Equal(t, Name{Family: "Roe", Given: "Richard"}, n)
	assert.Equal(t, "Roe;Richard;;;", c.Value(FieldName))
}

func TestCard_Address(t *testing.T) {
	c := New()
	c.AddAddress(Address{City: "Paris"}, "home")
	c.AddAddress(Address{Box: "PO Box 7", Street: []string{"1 Rue", "Bat. B"}, Country: "FR"}, "work")

	home, ok := c.Address("home")
	require.True(t, ok)
	assert.Equal(t, Address{City: "Paris"}, home)

	work, ok := c.Address("WORK")
	require.True(t, ok)
	assert.Equal(t, Address{Box: "PO Box 7", Street: []string{"1 Rue", "Bat. B"}, Country: "FR"}, work)

	_, ok = c.Address("other")
	assert.False(t, ok)
}

func TestCard_Organization(t *testing.T) {
	c := New()
	assert.Nil(t, c.Organization())

	c.SetOrganization([]string{"Acme", "R&D", "Labs"})
	assert.Equal(t, []string{"Acme", "R&D", "Labs"}, c.Organization())
}
