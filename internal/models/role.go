package models

import "gorm.io/datatypes"

// Role names are stored lowercase and act as the primary key; an account's
// role field references one of these rows.
const (
	RoleAdmin    = "admin"
	RoleEducator = "educator"
	RoleStudent  = "student"
)

type Role struct {
	Name        string                      `json:"name" gorm:"primaryKey;size:50"`
	Permissions datatypes.JSONSlice[string] `json:"permissions"`
}

func (Role) TableName() string {
	return "role_permissions"
}

// HasPermission reports whether the role's permission set contains perm.
func (r *Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// DefaultRoles is the seed data written at startup when the role table is
// empty or missing entries.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleAdmin, Permissions: datatypes.NewJSONSlice([]string{
			PermRead, PermWrite, PermManageUsers, PermDelete, PermModerate,
		})},
		{Name: RoleEducator, Permissions: datatypes.NewJSONSlice([]string{
			PermRead, PermWrite, PermCreateWorkspace, PermModerate,
		})},
		{Name: RoleStudent, Permissions: datatypes.NewJSONSlice([]string{
			PermRead, PermSubmit,
		})},
	}
}

const (
	PermRead            = "read"
	PermWrite           = "write"
	PermManageUsers     = "manage_users"
	PermDelete          = "delete"
	PermCreateWorkspace = "create_workspace"
	PermSubmit          = "submit"
	PermModerate        = "moderate"
)
