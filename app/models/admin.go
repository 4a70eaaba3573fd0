package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	ROLE_ADMIN  = "admin"
	ROLE_EDITOR = "editor"
)

// Admin is a content-management account. The password column only ever holds
// a bcrypt hash and is excluded from JSON serialization.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin;not null" json:"email" validate:"required,email,max=200"`
	Password  string    `gorm:"type:text;not null" json:"-" validate:"required,min=6"`
	Name      string    `gorm:"type:varchar(50)" json:"name" validate:"required,min=1,max=50"`
	Role      string    `gorm:"type:varchar(20);default:'admin'" json:"role" validate:"oneof=admin editor"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// CreateAdmin builds a validated account with a freshly hashed password.
func CreateAdmin(name, email, password, role string) (*Admin, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	a := &Admin{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
		IsActive: true,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	a.Password = hash

	return a, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies the provided password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return CheckPasswordHash(password, a.Password)
}

// SetPassword hashes and sets a new password for the account.
func (a *Admin) SetPassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	a.Password = hash
	return nil
}
