package users

import (
	"fmt"
	"strings"
	"unicode"
)

// User is a platform account as rendered in the admin dashboard.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Role         Role   `json:"role"`
	Active       string `json:"active"`
	CreationTime string `json:"creationTime"`
}

// RecordID implements the mutation record contract.
func (u User) RecordID() int64 { return u.ID }

// Registration is the payload for creating a new account. ConfirmPassword
// is checked client-side only and never sent over the wire.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	Gender          int    `json:"gender"`
}

// Validate checks the registration form before any network call is made.
func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if email := strings.TrimSpace(r.Email); email == "" {
		return fmt.Errorf("email is required")
	} else if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email format")
	}
	if strings.TrimSpace(r.MobileNumber) == "" {
		return fmt.Errorf("mobile number is required")
	}
	if err := ValidatePasswordStrength(r.Password); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
