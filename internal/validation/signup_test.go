package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Minimum length", "abcd", false},
		{"Too short", "abc", true},
		{"Maximum length", strings.Repeat("a", 50), false},
		{"Too long", strings.Repeat("a", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Minimum length", "eightchr", false},
		{"Too short", "short1", true},
		{"Maximum length", strings.Repeat("p", 128), false},
		{"Too long", strings.Repeat("p", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Plain address", "user@example.com", false},
		{"Subdomain and plus tag", "user+tag@mail.example.co.uk", false},
		{"No at sign", "userexample.com", true},
		{"No TLD", "user@example", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jo"))
	assert.Error(t, ValidateName("J"))
	assert.Error(t, ValidateName(strings.Repeat("n", 101)))
}

func TestValidateSignup(t *testing.T) {
	assert.NoError(t, ValidateSignup("Test User", "testuser", "test@example.com", "Password123!"))

	// The first failing field wins
	err := ValidateSignup("T", "abc", "bad", "short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
