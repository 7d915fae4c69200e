package models

// PhotoRole tells which of the two photos of a founder record is meant.
type PhotoRole string

const (
	RoleFounder PhotoRole = "founder"
	RoleSpouse  PhotoRole = "spouse"
)

// PhotoRoles lists every role in upload and download order.
var PhotoRoles = []PhotoRole{RoleFounder, RoleSpouse}

// PhotoKey addresses one cached photo.
type PhotoKey struct {
	Role PhotoRole
	ID   string
}

// String renders the logical key, e.g. "founder:77".
func (k PhotoKey) String() string {
	return string(k.Role) + ":" + k.ID
}

// FileName is the name of the cache file holding the photo, e.g. "founder77".
func (k PhotoKey) FileName() string {
	return string(k.Role) + k.ID
}

// Valid reports whether the key names a known role and a non-empty id.
func (k PhotoKey) Valid() bool {
	return (k.Role == RoleFounder || k.Role == RoleSpouse) && k.ID != ""
}
