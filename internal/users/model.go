package users

// User is one dashboard account row. Permissions are display state; no
// authorization is enforced from them.
type User struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// Permissions are the assignable permission flags, in display order.
var Permissions = []string{"view", "add", "edit", "delete"}

func validPermission(p string) bool {
	for _, known := range Permissions {
		if p == known {
			return true
		}
	}
	return false
}
