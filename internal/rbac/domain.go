// Package rbac resolves and enforces the two access roles the back
// office knows: admin (full read/write) and viewer (read-only).
package rbac

// Role is a coarse access level assigned per user email.
type Role string

const (
	// RoleAdmin may read and mutate every department.
	RoleAdmin Role = "admin"
	// RoleViewer may only read. All mutating endpoints reject it.
	RoleViewer Role = "viewer"
)

// CanWrite reports whether the role may perform mutations.
func (r Role) CanWrite() bool {
	return r == RoleAdmin
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}
