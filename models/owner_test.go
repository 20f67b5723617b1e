package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRefsRoundTrip(t *testing.T) {
	owners := []Owner{
		ParentOwner("p"),
		RelativeOwner("r"),
		SupplierOwner("s"),
		ArtistOwner("a"),
		AdminOwner("x"),
	}
	for _, o := range owners {
		t.Run(string(o.Role), func(t *testing.T) {
			got, ok := NewOwnerRefs(o).Owner()
			require.True(t, ok)
			assert.Equal(t, o, got)
		})
	}
}

func TestOwnerRefsSetsOneColumn(t *testing.T) {
	refs := NewOwnerRefs(SupplierOwner("s"))
	assert.Nil(t, refs.ParentID)
	assert.Nil(t, refs.RelativeID)
	assert.Nil(t, refs.ArtistID)
	assert.Nil(t, refs.AdminID)
	require.NotNil(t, refs.SupplierID)
	assert.Equal(t, "supplier_id", SupplierOwner("s").Column())
}

func TestEmptyOwnerRefs(t *testing.T) {
	_, ok := OwnerRefs{}.Owner()
	assert.False(t, ok)
}

func TestParseOwnerRole(t *testing.T) {
	tests := map[string]OwnerRole{
		"":               RoleParent,
		"parent":         RoleParent,
		"relative":       RoleRelative,
		"CHILD_RELATION": RoleRelative,
		"supplier":       RoleSupplier,
		"ARTIST":         RoleArtist,
		"admin":          RoleAdmin,
	}
	for in, want := range tests {
		got, err := ParseOwnerRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOwnerRole("nanny")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
