package data

import (
	"time"

	"github.com/emzola/bookmanager/internal/validator"
)

// Role is the permission level the remote API assigns to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6

// User defines a user as returned by the remote API.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the administrative role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func ValidateName(v *validator.Validator, name string) {
	v.Check(name != "", "name", "debe indicarse")
	v.Check(len(name) <= 500, "name", "no debe superar los 500 bytes")
}

func ValidateEmail(v *validator.Validator, email string) {
	v.Check(email != "", "email", "debe indicarse")
	v.Check(validator.Matches(email, validator.EmailRX), "email", "debe ser un email válido")
}

func ValidatePasswordPlaintext(v *validator.Validator, password string) {
	v.Check(password != "", "password", "debe indicarse")
}

// ValidateRegistration checks the register form before it is sent. The password
// rules mirror what the form promises the user; the remote API remains the authority.
func ValidateRegistration(v *validator.Validator, name, email, password, confirmation string) {
	ValidateName(v, name)
	ValidateEmail(v, email)
	ValidatePasswordPlaintext(v, password)
	v.Check(password == confirmation, "password", "Las contraseñas no coinciden")
	v.Check(len(password) >= MinPasswordLength, "password", "La contraseña debe tener al menos 6 caracteres")
}
