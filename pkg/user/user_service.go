package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"cafeteria-backend/domain"
	"cafeteria-backend/entities"
	"cafeteria-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// reservedIdentifiers cannot be claimed through self-registration.
var reservedIdentifiers = []string{"admin", "manager", "kitchen"}

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	for _, reserved := range reservedIdentifiers {
		if strings.EqualFold(req.Identifier, reserved) {
			return nil, domain.ErrReservedIdentifier
		}
	}

	exists, err := s.userRepository.CheckIdentifierExists(ctx, req.Identifier)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := &entities.User{
		ID:           uuid.New(),
		Identifier:   req.Identifier,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Credit:       0,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if err := s.userRepository.CreateUser(ctx, newUser); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateTokenUser(newUser.ID.String(), newUser.Role)

	return &domain.AuthResponse{
		Token:      token,
		Identifier: newUser.Identifier,
		Role:       newUser.Role,
		Credit:     newUser.Credit,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	// one uniform failure, so the response does not reveal which field is wrong
	u, err := s.userRepository.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(u.ID.String(), u.Role)

	return &domain.AuthResponse{
		Token:      token,
		Identifier: u.Identifier,
		Role:       u.Role,
		Credit:     u.Credit,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.UserResponse{
		ID:         u.ID.String(),
		Identifier: u.Identifier,
		Role:       u.Role,
		Credit:     u.Credit,
	}, nil
}
