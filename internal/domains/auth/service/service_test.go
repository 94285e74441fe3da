package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/jwt"
	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/auth/model/dto"
	staffMocks "hotelier/internal/domains/staff/mocks"
	staffModel "hotelier/internal/domains/staff/model"
	"hotelier/shared/failure"
	"hotelier/shared/password"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotelier-test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func newAuthServiceFixture(t *testing.T) (Auth, *staffMocks.MockStaff) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := staffMocks.NewMockStaff(ctrl)
	cfg := testConfig()

	return New(repo, jwt.New(cfg), cfg, otelMocks.NewOtel()), repo
}

func storedStaff(t *testing.T) staffModel.Staff {
	t.Helper()

	hashed, err := password.Hash("correct-password")
	assert.NoError(t, err)

	return staffModel.Staff{
		ID:        "staff-1",
		FirstName: "Dewi",
		LastName:  "Lestari",
		Password:  hashed,
		Position:  "Manager",
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedStaff(t), nil)

		response, err := service.Login(ctx, dto.LoginRequest{StaffID: "staff-1", Password: "correct-password"})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedStaff(t), nil)

		_, err := service.Login(ctx, dto.LoginRequest{StaffID: "staff-1", Password: "wrong-password"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("unknown staff is unauthorized", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		_, err := service.Login(ctx, dto.LoginRequest{StaffID: "missing", Password: "whatever"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("refresh token issues a new pair", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedStaff(t), nil)

		login, err := service.Login(ctx, dto.LoginRequest{StaffID: "staff-1", Password: "correct-password"})
		assert.NoError(t, err)

		refreshed, err := service.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})

		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		service, _ := newAuthServiceFixture(t)

		_, err := service.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "not-a-token"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a new hash after verifying the old password", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedStaff(t), nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				hashed, ok := fields[staffModel.FieldPassword].(string)
				assert.True(t, ok)
				assert.NoError(t, password.Verify("new-password-123", hashed))

				return nil
			})

		err := service.ChangePassword(ctx, dto.ChangePasswordRequest{
			OldPassword: "correct-password",
			NewPassword: "new-password-123",
		}, "staff-1")

		assert.NoError(t, err)
	})

	t.Run("wrong old password is unauthorized", func(t *testing.T) {
		service, repo := newAuthServiceFixture(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedStaff(t), nil)

		err := service.ChangePassword(ctx, dto.ChangePasswordRequest{
			OldPassword: "wrong",
			NewPassword: "new-password-123",
		}, "staff-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
