package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes", "Str0ng!pass", true},
		{"too short", "S0r!t", false},
		{"no uppercase", "str0ng!pass", false},
		{"no lowercase", "STR0NG!PASS", false},
		{"no digit", "Strong!pass", false},
		{"no symbol", "Str0ngpass", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("9876543210"))
	assert.False(t, IsPhone("987654321"))   // 9 digits
	assert.False(t, IsPhone("98765432100")) // 11 digits
	assert.False(t, IsPhone("987654321a"))
	assert.False(t, IsPhone(""))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("user@example.com"))
	assert.True(t, IsEmail("a.b+c@sub.domain.io"))
	assert.False(t, IsEmail("user@example"))
	assert.False(t, IsEmail("user example@x.com"))
	assert.False(t, IsEmail("@example.com"))
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2025-05-28"))
	assert.False(t, IsISODate("2025-5-28"))
	assert.False(t, IsISODate("28-05-2025"))
	assert.False(t, IsISODate("2025-02-30"))
	assert.False(t, IsISODate(""))
}

func TestValidationErrors_Error(t *testing.T) {
	verrs := ValidationErrors{
		{Field: "name", Message: "too short"},
		{Field: "email", Message: "invalid"},
	}
	assert.Equal(t, "name: too short; email: invalid", verrs.Error())
}
