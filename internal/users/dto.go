package users

type UpdateUserRequest struct {
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions"`
}

// CreateRoleRequest carries a new role name. Permissions are accepted from
// the dialog but roles store only their name.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}
