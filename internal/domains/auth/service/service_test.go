package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	repoMocks "hotel/shared/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Auth, *repoMocks.MockStore[userModel.User], *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := repoMocks.NewMockStore[userModel.User](ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return service.New(mockRepo, &config.Config{}, mocks.NewOtel(), mockJWT), mockRepo, mockJWT
}

func adminUser(t *testing.T, active bool) userModel.User {
	t.Helper()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	return userModel.User{ID: 7, Email: "admin@hotel.test", Password: hash, Name: "Admin", Role: constant.RoleAdmin, IsActive: active}
}

func TestAuthService_Login(t *testing.T) {
	svc, mockRepo, mockJWT := newService(t)

	tokenPair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 900}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "admin@hotel.test", Password: "correct-horse"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
				mockJWT.EXPECT().GenerateTokenPair("7", "admin@hotel.test", constant.RoleAdmin).Return(tokenPair, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name: "last login failure does not block login",
			req:  dto.LoginRequest{Email: "admin@hotel.test", Password: "correct-horse"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("pq: timeout"))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@hotel.test", Password: "correct-horse"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "admin@hotel.test", Password: "battery-staple"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "admin@hotel.test", Password: "correct-horse"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, false), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "database failure",
			req:  dto.LoginRequest{Email: "admin@hotel.test", Password: "correct-horse"},
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("pq: timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "Bearer", res.TokenType)
			assert.Equal(t, int64(7), res.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, mockRepo, mockJWT := newService(t)

	claims := &jwt.Claims{UserID: "7", Email: "admin@hotel.test", Role: constant.RoleAdmin, Type: jwt.RefreshToken}

	t.Run("invalid token", func(t *testing.T) {
		mockJWT.EXPECT().ValidateToken("bad", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("account deactivated since issue", func(t *testing.T) {
		mockJWT.EXPECT().ValidateToken("good", jwt.RefreshToken).Return(claims, nil)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, false), nil)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("rotated", func(t *testing.T) {
		mockJWT.EXPECT().ValidateToken("good", jwt.RefreshToken).Return(claims, nil)
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
		mockJWT.EXPECT().GenerateTokenPair("7", "admin@hotel.test", constant.RoleAdmin).
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "7")

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "brand-new-pass"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "current_password", failure.GetViolations(err)[0].Field)
	})

	t.Run("changed", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, _ := fields[userModel.FieldPassword].(string)
				assert.NoError(t, password.Verify("brand-new-pass", hash))
				assert.Equal(t, "7", fields[constant.FieldUpdatedBy])

				return nil
			})

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "brand-new-pass"})

		assert.NoError(t, err)
	})

	t.Run("unchanged password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "correct-horse"})

		assert.Equal(t, "new_password", failure.GetViolations(err)[0].Field)
	})

	t.Run("missing identity", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "brand-new-pass"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
