package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/platform/internal/core/domain"
	"github.com/mathquest/platform/internal/core/ports"
)

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) ports.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&roleModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *roleRepository) Create(ctx context.Context, id uint, role domain.Role) error {
	return r.db.WithContext(ctx).Create(&roleModel{ID: id, Name: role.String()}).Error
}
