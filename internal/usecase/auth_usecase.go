package usecase

import (
	"context"
	"errors"

	"github.com/Hassan141998/Job-Portal/internal/domain/account"
	"github.com/Hassan141998/Job-Portal/internal/pkg/jwt"
	ucauth "github.com/Hassan141998/Job-Portal/internal/usecase/auth"
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts account.Repository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts account.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(accounts), accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, string, string, error) {
	a, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return account.Account{}, "", "", err
	}
	return u.issueTokens(a)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error) {
	a, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return account.Account{}, "", "", err
	}
	return u.issueTokens(a)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	a, err := u.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email, a.UserType)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

func (u *Auth) issueTokens(a account.Account) (account.Account, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(a.ID, a.Email, a.UserType)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	return a, access, refresh, nil
}
