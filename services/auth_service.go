package services

import (
	"fmt"
	"time"

	"github.com/joaogpereira/UniDrive/auth"
	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
	"github.com/joaogpereira/UniDrive/repositories"
)

type IAuthService interface {
	Register(name, email, password string, role domain.Role) (Token, domain.Identity, error)
	Login(email, password string) (Token, domain.Identity, error)
}

type Token string

type AuthService struct {
	users         repositories.IUserRepository
	tokenDuration time.Duration
}

func NewAuthService(users repositories.IUserRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{users: users, tokenDuration: tokenDuration}
}

func (s *AuthService) Register(name, email, password string, role domain.Role) (Token, domain.Identity, error) {
	request := auth.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     string(role),
	}

	// Business rules are checked before any expensive cryptographic work.
	if err := auth.ValidateRegister(request); err != nil {
		return "", domain.Identity{}, fmt.Errorf("registration rejected: %w", err)
	}

	// Hashing stays in the service layer so the repository never sees a
	// plain password.
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", domain.Identity{}, fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.users.CreateUser(name, email, hashed, role)
	if err != nil {
		return "", domain.Identity{}, err
	}

	identity := domain.Identity{ID: userID, DisplayName: name, Role: role}
	token, err := auth.GenerateToken(identity, s.tokenDuration)
	if err != nil {
		return "", domain.Identity{}, err
	}
	return Token(token), identity, nil
}

func (s *AuthService) Login(email, password string) (Token, domain.Identity, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return "", domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		// Unknown email and wrong password answer the same way.
		return "", domain.Identity{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return "", domain.Identity{}, err
	}
	if !match {
		return "", domain.Identity{}, errors.ErrInvalidCredentials
	}

	identity := user.Identity()
	token, err := auth.GenerateToken(identity, s.tokenDuration)
	if err != nil {
		return "", domain.Identity{}, err
	}
	return Token(token), identity, nil
}
