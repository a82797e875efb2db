package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := SignupRequest{
		Email:           "visitor@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Name:            "방문객",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid

		assert.NoError(t, req.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"

		assert.Error(t, req.Validate())
	})

	t.Run("password policy", func(t *testing.T) {
		tests := []struct {
			name     string
			password string
			wantErr  bool
		}{
			{"letters and digits", "password1", false},
			{"too short", "pass1", true},
			{"no digit", "passwords", true},
			{"no letter", "123456789", true},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				req := valid
				req.Password = tc.password
				req.ConfirmPassword = tc.password

				err := req.Validate()
				if tc.wantErr {
					assert.ErrorIs(t, err, errInvalidPassword)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "password2"

		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})
}
