package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values for User.Role.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'STAFF'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
