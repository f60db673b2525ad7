package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mithun19978/AlpenLuce/users"
)

func TestRole_Has_AllCombinations(t *testing.T) {
	bits := []users.Role{users.RoleUser, users.RoleAdmin, users.RoleTechnical, users.RoleSupport}

	// Every mask from 0 to 15 against every capability bit.
	for mask := users.Role(0); mask < 16; mask++ {
		for _, bit := range bits {
			expected := mask&bit != 0
			require.Equal(t, expected, mask.Has(bit), "mask %d bit %d", mask, bit)
		}
	}
}

func TestRole_NoBitImpliesAnother(t *testing.T) {
	require.False(t, users.RoleAdmin.Has(users.RoleUser))
	require.False(t, users.RoleSupport.Has(users.RoleTechnical))
	require.True(t, (users.RoleAdmin | users.RoleTechnical).Has(users.RoleAdmin))
	require.True(t, (users.RoleAdmin | users.RoleTechnical).Has(users.RoleTechnical))
	require.False(t, (users.RoleAdmin | users.RoleTechnical).Has(users.RoleSupport))
}

func TestRole_String(t *testing.T) {
	t.Run("single bit", func(t *testing.T) {
		require.Equal(t, "ADMIN", users.RoleAdmin.String())
	})

	t.Run("combined bits", func(t *testing.T) {
		require.Equal(t, "ADMIN TECHNICAL", (users.RoleAdmin | users.RoleTechnical).String())
	})

	t.Run("no bits", func(t *testing.T) {
		require.Equal(t, "", users.RoleNone.String())
	})
}
