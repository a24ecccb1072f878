package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/domain/account"
)

type mockAccountRepo struct {
	byEmail map[string]account.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: make(map[string]account.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, a account.Account) error {
	if _, ok := m.byEmail[a.Email]; ok {
		return account.ErrDuplicateEmail
	}
	m.byEmail[a.Email] = a
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func TestRegister_DefaultsToJobSeeker(t *testing.T) {
	svc := NewService(newMockAccountRepo())

	a, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Alex@Example.com",
		Password: "hunter22",
		Name:     "Alex",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.UserType != account.TypeJobSeeker {
		t.Fatalf("expected default user type %q, got %q", account.TypeJobSeeker, a.UserType)
	}
	if a.Email != "alex@example.com" {
		t.Fatalf("expected lowercased email, got %q", a.Email)
	}
	if a.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
}

func TestRegister_RejectsUnknownUserType(t *testing.T) {
	svc := NewService(newMockAccountRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Password: "hunter22",
		UserType: "admin",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newMockAccountRepo())

	in := RegisterInput{Email: "a@example.com", Password: "hunter22"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	svc := NewService(newMockAccountRepo())

	reg, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@example.com",
		Password: "hunter22",
		UserType: account.TypeEmployer,
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	a, err := svc.Login(context.Background(), LoginInput{Email: "A@Example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.ID != reg.ID {
		t.Fatalf("expected account %s, got %s", reg.ID, a.ID)
	}
	if a.UserType != account.TypeEmployer {
		t.Fatalf("expected employer, got %q", a.UserType)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewService(newMockAccountRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	cases := []struct {
		name string
		in   LoginInput
	}{
		{"wrong password", LoginInput{Email: "a@example.com", Password: "nope"}},
		{"unknown email", LoginInput{Email: "b@example.com", Password: "hunter22"}},
		{"empty password", LoginInput{Email: "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tc.in); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
