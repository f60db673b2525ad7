package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mithun19978/AlpenLuce/users"
)

func validRegistration() users.Registration {
	return users.Registration{
		Username:        "maria",
		Email:           "maria@example.com",
		MobileNumber:    "07700900123",
		Password:        "Sommer2024",
		ConfirmPassword: "Sommer2024",
		Gender:          1,
	}
}

func TestRegistration_Validate(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		require.NoError(t, validRegistration().Validate())
	})

	t.Run("missing username", func(t *testing.T) {
		r := validRegistration()
		r.Username = "  "
		err := r.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "username is required")
	})

	t.Run("bad email", func(t *testing.T) {
		r := validRegistration()
		r.Email = "not-an-email"
		err := r.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid email format")
	})

	t.Run("missing mobile number", func(t *testing.T) {
		r := validRegistration()
		r.MobileNumber = ""
		require.Error(t, r.Validate())
	})

	t.Run("password mismatch", func(t *testing.T) {
		r := validRegistration()
		r.ConfirmPassword = "Sommer2025"
		err := r.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "passwords do not match")
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("valid password", func(t *testing.T) {
		require.NoError(t, users.ValidatePasswordStrength("Sommer2024"))
	})

	t.Run("too short", func(t *testing.T) {
		err := users.ValidatePasswordStrength("Ab1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("no uppercase", func(t *testing.T) {
		err := users.ValidatePasswordStrength("sommer2024")
		require.Error(t, err)
		require.Contains(t, err.Error(), "uppercase")
	})

	t.Run("no lowercase", func(t *testing.T) {
		err := users.ValidatePasswordStrength("SOMMER2024")
		require.Error(t, err)
		require.Contains(t, err.Error(), "lowercase")
	})

	t.Run("no number", func(t *testing.T) {
		err := users.ValidatePasswordStrength("SommerZeit")
		require.Error(t, err)
		require.Contains(t, err.Error(), "number")
	})
}
