package users

func seedUsers() []User {
	return []User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "Admin", Permissions: []string{"view", "add", "edit", "delete"}},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "User", Permissions: []string{"view", "add"}},
		{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "Stock Manager", Permissions: []string{"view", "edit"}},
	}
}

func seedRoles() []string {
	return []string{"Admin", "User", "Stock Manager"}
}
