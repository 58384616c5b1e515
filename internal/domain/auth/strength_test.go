package auth_test

import (
	"testing"

	"github.com/rpggio/shielddash/internal/domain/auth"
	"github.com/stretchr/testify/require"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    string
	}{
		{"", 0, "Very Weak"},
		{"abc", 1, "Very Weak"},
		{"abcDEF", 2, "Weak"},
		{"abcdefgh1", 3, "Fair"},
		{"Abcdefgh1", 4, "Good"},
		{"Abcdefg1!", 5, "Strong"},
		{"ééééé", 1, "Very Weak"},
		{"éééééééé", 2, "Weak"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := auth.PasswordStrength(tt.password)
			require.Equal(t, tt.score, got.Score)
			require.Equal(t, tt.label, got.Label)
		})
	}
}

func TestValidateLogin_MinimumLength(t *testing.T) {
	require.ErrorIs(t, auth.ValidateLogin("a@b.co", "12345"), auth.ErrInvalidCredentials)
	require.NoError(t, auth.ValidateLogin("a@b.co", "123456"))
}
