package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auth/model/dto"
	staffModel "hotelier/internal/domains/staff/model"
	staffRepo "hotelier/internal/domains/staff/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	"hotelier/shared/timezone"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, staffID string) error
}

type serviceImpl struct {
	repository staffRepo.Staff
	jwt        jwt.JWT
	config     *config.Config
	otel       otel.Otel
}

func New(repository staffRepo.Staff, jwtService jwt.JWT, config *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		repository: repository,
		jwt:        jwtService,
		config:     config,
		otel:       otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (response dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.repository.Get(ctx, shared.FilterByID(req.StaffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		return dto.LoginResponse{}, err
	}

	if staff.ID == "" {
		return dto.LoginResponse{}, failure.Unauthorized("invalid credentials")
	}

	if err := password.Verify(req.Password, staff.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return dto.LoginResponse{}, failure.Unauthorized("invalid credentials")
		}

		return dto.LoginResponse{}, err
	}

	pair, err := s.jwt.GenerateTokenPair(staff.ID, staff.Position)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	return dto.LoginResponse{}.FromTokenPair(*pair), nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (response dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "refreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return dto.LoginResponse{}, failure.Unauthorized("invalid refresh token")
	}

	return dto.LoginResponse{}.FromTokenPair(*pair), nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, staffID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "changePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName)

	staff, err := s.repository.Get(ctx, filter)
	if err != nil {
		return err
	}

	if staff.ID == "" {
		return failure.NotFound("staff")
	}

	if err := password.Verify(req.OldPassword, staff.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return failure.Unauthorized("invalid credentials")
		}

		return err
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		staffModel.FieldPassword: hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staffID,
	}

	return s.repository.Update(ctx, updatedFields, filter)
}
