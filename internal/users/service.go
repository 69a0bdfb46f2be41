package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/storeline-pos/storeline/internal/platform/httpx"
	"github.com/storeline-pos/storeline/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces a user's role and permission set. Name and email are not
// editable from the dashboard.
func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (User, error) {
	if err := shared.Validate(req); err != nil {
		return User{}, err
	}
	for _, p := range req.Permissions {
		if !validPermission(p) {
			return User{}, fmt.Errorf("%w: unknown permission %q", httpx.ErrValidation, p)
		}
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, err
	}
	existing.Role = req.Role
	existing.Permissions = req.Permissions
	if existing.Permissions == nil {
		existing.Permissions = []string{}
	}
	return s.repo.Update(ctx, existing)
}

func (s *Service) Roles(ctx context.Context) ([]string, error) {
	return s.repo.Roles(ctx)
}

// CreateRole adds a role name. Blank names reject, duplicates conflict, and
// any permissions chosen in the dialog are discarded.
func (s *Service) CreateRole(ctx context.Context, req CreateRoleRequest) error {
	if err := shared.Validate(req); err != nil {
		return err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: role name is required", httpx.ErrValidation)
	}
	return s.repo.AddRole(ctx, name)
}
