package models

import "errors"

type OwnerRole string

const (
	RoleParent   OwnerRole = "PARENT"
	RoleRelative OwnerRole = "RELATIVE"
	RoleSupplier OwnerRole = "SUPPLIER"
	RoleArtist   OwnerRole = "ARTIST"
	RoleAdmin    OwnerRole = "ADMIN"
)

var ErrUnknownRole = errors.New("unknown owner role")

// ParseOwnerRole accepts the lower-case names used in query strings and tokens.
func ParseOwnerRole(s string) (OwnerRole, error) {
	switch s {
	case "parent", "PARENT", "":
		return RoleParent, nil
	case "relative", "RELATIVE", "CHILD_RELATION":
		return RoleRelative, nil
	case "supplier", "SUPPLIER":
		return RoleSupplier, nil
	case "artist", "ARTIST":
		return RoleArtist, nil
	case "admin", "ADMIN":
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

// Owner identifies the account a row belongs to.
type Owner struct {
	Role OwnerRole `json:"role"`
	ID   string    `json:"id"`
}

func ParentOwner(id string) Owner   { return Owner{Role: RoleParent, ID: id} }
func RelativeOwner(id string) Owner { return Owner{Role: RoleRelative, ID: id} }
func SupplierOwner(id string) Owner { return Owner{Role: RoleSupplier, ID: id} }
func ArtistOwner(id string) Owner   { return Owner{Role: RoleArtist, ID: id} }
func AdminOwner(id string) Owner    { return Owner{Role: RoleAdmin, ID: id} }

// IsShopper reports whether the owner may hold carts, orders and favorites.
func (o Owner) IsShopper() bool {
	return o.Role == RoleParent || o.Role == RoleRelative
}

// Column is the nullable foreign key column that stores this owner.
func (o Owner) Column() string {
	switch o.Role {
	case RoleRelative:
		return "relative_id"
	case RoleSupplier:
		return "supplier_id"
	case RoleArtist:
		return "artist_id"
	case RoleAdmin:
		return "admin_id"
	default:
		return "parent_id"
	}
}

// OwnerRefs is the storage form of Owner: five nullable columns, exactly one set.
type OwnerRefs struct {
	ParentID   *string `json:"parentId,omitempty" gorm:"type:uuid;index"`
	RelativeID *string `json:"relativeId,omitempty" gorm:"type:uuid;index"`
	SupplierID *string `json:"supplierId,omitempty" gorm:"type:uuid;index"`
	ArtistID   *string `json:"artistId,omitempty" gorm:"type:uuid;index"`
	AdminID    *string `json:"adminId,omitempty" gorm:"type:uuid;index"`
}

func NewOwnerRefs(o Owner) OwnerRefs {
	id := o.ID
	var refs OwnerRefs
	switch o.Role {
	case RoleParent:
		refs.ParentID = &id
	case RoleRelative:
		refs.RelativeID = &id
	case RoleSupplier:
		refs.SupplierID = &id
	case RoleArtist:
		refs.ArtistID = &id
	case RoleAdmin:
		refs.AdminID = &id
	}
	return refs
}

// Owner returns the single owner stored in the refs.
func (r OwnerRefs) Owner() (Owner, bool) {
	switch {
	case r.ParentID != nil:
		return ParentOwner(*r.ParentID), true
	case r.RelativeID != nil:
		return RelativeOwner(*r.RelativeID), true
	case r.SupplierID != nil:
		return SupplierOwner(*r.SupplierID), true
	case r.ArtistID != nil:
		return ArtistOwner(*r.ArtistID), true
	case r.AdminID != nil:
		return AdminOwner(*r.AdminID), true
	}
	return Owner{}, false
}
