package domain

import (
	"errors"
	"time"
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Domain errors
var (
	ErrNotFound      = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already exists")
	ErrInvalidLogin  = errors.New("invalid credentials")
	ErrAccountLocked = errors.New("account is deactivated")
)

// User represents a registered shopper or back-office admin
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never expose password in JSON
	FullName  string    `json:"full_name"`
	Role      string    `json:"role" gorm:"not null;default:'user'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	Count() (int64, error)
}
