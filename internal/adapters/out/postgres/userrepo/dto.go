// Package userrepo reads the identity provider's user and group tables.
// Everything here is read-only; users and memberships are managed upstream.
package userrepo

import (
	"littlelemon/internal/core/domain/model/identity"
)

// UserDTO mirrors the identity provider's user record.
type UserDTO struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:150;uniqueIndex"`
	FirstName string `gorm:"size:150"`
	Email     string `gorm:"size:254"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// UserGroupDTO is one group membership. Group names map to roles.
type UserGroupDTO struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"index"`
	Name   string `gorm:"size:150"`
}

// TableName overrides GORM's default naming to use "user_groups".
func (UserGroupDTO) TableName() string {
	return "user_groups"
}

func toDomain(dto UserDTO) *identity.User {
	return &identity.User{
		ID:        dto.ID,
		Username:  dto.Username,
		FirstName: dto.FirstName,
		Email:     dto.Email,
	}
}
