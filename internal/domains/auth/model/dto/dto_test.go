package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoginResponse(t *testing.T) {
	lastLogin := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		user          userModel.User
		wantLastLogin bool
	}{
		{
			name: "first login",
			user: userModel.User{ID: 1, Email: "admin@hotel.test", Password: "$2a$10$hash", Name: "Front Desk", Role: constant.RoleAdmin, IsActive: true},
		},
		{
			name:          "returning staff",
			user:          userModel.User{ID: 2, Email: "staff@hotel.test", Password: "$2a$10$hash", Name: "Night Shift", Role: constant.RoleStaff, IsActive: true, LastLogin: &lastLogin},
			wantLastLogin: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenPair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}

			res := dto.NewLoginResponse(tokenPair, tt.user)

			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.Equal(t, int64(900), res.ExpiresIn)
			assert.Equal(t, tt.user.ID, res.User.ID)
			assert.Equal(t, tt.user.Role, res.User.Role)
			assert.Equal(t, tt.wantLastLogin, res.User.LastLogin != nil)

			raw, err := json.Marshal(res)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "$2a$10$hash")
			assert.NotContains(t, string(raw), "created_by")
		})
	}
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	var res dto.RefreshTokenResponse
	res.FromTokenPair(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "Bearer", ExpiresIn: 900})

	assert.Equal(t, dto.RefreshTokenResponse{AccessToken: "new-access", RefreshToken: "new-refresh", TokenType: "Bearer", ExpiresIn: 900}, res)
}
