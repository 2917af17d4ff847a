package mapper

import (
	"time"

	"github.com/QTMarketing/lama-cms/internal/entity"
	"github.com/QTMarketing/lama-cms/internal/model"
)

type AdminUserMapper struct{}

func NewAdminUserMapper() *AdminUserMapper {
	return &AdminUserMapper{}
}

func (m *AdminUserMapper) ToEntity(u *model.AdminUser) *entity.AdminUser {
	if u == nil {
		return nil
	}
	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}
	return &entity.AdminUser{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *AdminUserMapper) ToModel(u *entity.AdminUser) *model.AdminUser {
	if u == nil {
		return nil
	}
	out := &model.AdminUser{
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
	}
	if u.UpdatedAt != nil {
		out.UpdatedAt = *u.UpdatedAt
	}
	return out
}
