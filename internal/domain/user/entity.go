// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// Role constants
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User represents a system user (store staff)
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Password    string         `gorm:"not null;size:255" json:"-"`
	FullName    string         `gorm:"size:255" json:"full_name"`
	Role        string         `gorm:"not null;default:'cashier';size:20" json:"role"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks for the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
