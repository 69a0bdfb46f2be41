package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
)

func TestUpdateReplacesRoleAndPermissions(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	updated, err := svc.Update(ctx, 2, UpdateUserRequest{
		Role:        "Stock Manager",
		Permissions: []string{"view", "edit", "delete"},
	})
	require.NoError(t, err)
	require.Equal(t, "Stock Manager", updated.Role)
	require.Equal(t, []string{"view", "edit", "delete"}, updated.Permissions)

	// Name and email are untouched.
	require.Equal(t, "Jane Smith", updated.Name)
	require.Equal(t, "jane@example.com", updated.Email)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
}

func TestUpdateRejectsUnknownPermission(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, UpdateUserRequest{Role: "Admin", Permissions: []string{"sudo"}})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Update(ctx, 99, UpdateUserRequest{Role: "Admin"})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestCreateRoleAppendsName(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	err := svc.CreateRole(ctx, CreateRoleRequest{Name: "Auditor", Permissions: []string{"view"}})
	require.NoError(t, err)

	roles, err := svc.Roles(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Admin", "User", "Stock Manager", "Auditor"}, roles)
}

func TestCreateRoleRejectsBlankName(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	require.ErrorIs(t, svc.CreateRole(ctx, CreateRoleRequest{Name: ""}), httpx.ErrValidation)
	require.ErrorIs(t, svc.CreateRole(ctx, CreateRoleRequest{Name: "   "}), httpx.ErrValidation)
}

func TestCreateRoleConflictsOnDuplicate(t *testing.T) {
	svc := NewService(NewRepository())
	ctx := context.Background()

	err := svc.CreateRole(ctx, CreateRoleRequest{Name: "Admin"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)

	roles, _ := svc.Roles(ctx)
	require.Len(t, roles, 3)
}
