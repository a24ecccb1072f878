package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hassan141998/Job-Portal/internal/domain/account"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	UserType string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	accounts account.Repository
	now      func() time.Time
}

func NewService(accounts account.Repository) *Service {
	return &Service{accounts: accounts, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return account.Account{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Password) == "" {
		return account.Account{}, ErrInvalidInput
	}

	userType := strings.TrimSpace(in.UserType)
	if userType == "" {
		userType = account.TypeJobSeeker
	}
	if !account.ValidType(userType) {
		return account.Account{}, ErrInvalidInput
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	if exists {
		return account.Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	a := account.Account{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		UserType:     userType,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			return account.Account{}, ErrEmailAlreadyRegistered
		}
		return account.Account{}, ErrInternal
	}

	return sanitize(a), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (account.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	return sanitize(a), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func sanitize(a account.Account) account.Account {
	a.PasswordHash = ""
	return a
}
