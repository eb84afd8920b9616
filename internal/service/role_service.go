package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"los/internal/model"
	"los/internal/repository"
)

// RoleService manages the role catalogue users reference.
type RoleService interface {
	SeedRoles(ctx context.Context, names []string) (created int, err error)
	ListRoles(ctx context.Context) ([]model.Role, error)
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService creates a new role service.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

// SeedRoles creates each named role that does not exist yet.
func (s *roleService) SeedRoles(ctx context.Context, names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, err := s.repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("find role %s: %w", name, err)
		}
		if err := s.repo.Create(ctx, &model.Role{RoleName: name}); err != nil {
			return created, fmt.Errorf("create role %s: %w", name, err)
		}
		created++
	}
	return created, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.repo.List(ctx)
}
