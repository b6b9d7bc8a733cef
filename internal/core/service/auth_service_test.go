package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookingin/booking-api/internal/core/domain"
	"github.com/bookingin/booking-api/internal/core/ports"
)

type stubUserRepo struct {
	users     map[string]*domain.User
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	if r.revoked == nil {
		r.revoked = make(map[string]time.Duration)
	}
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func newAuthSvc(repo *stubUserRepo, revoker *stubRevoker) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), revoker, zerolog.Nop())
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName: "test",
		LastName:  "test",
		Email:     email,
		Phone:     "0811111",
		Password:  "password",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})

	user, err := svc.Register(context.Background(), registerInput("Test@Email.com "))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected generated id")
	}
	if user.Email != "test@email.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "password" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Error("new accounts must not be admin")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})

	if _, err := svc.Register(context.Background(), registerInput("test@email.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("test@email.com")); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})

	registered, err := svc.Register(context.Background(), registerInput("test@email.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "test@email.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != registered.ID || claims.IsAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})
	_, _ = svc.Register(context.Background(), registerInput("test@email.com"))

	_, _, errPassword := svc.Login(context.Background(), "test@email.com", "salaahhhhh")
	_, _, errEmail := svc.Login(context.Background(), "salah@email.com", "password")

	if !errors.Is(errPassword, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errPassword)
	}
	if !errors.Is(errEmail, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errEmail)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	revoker := &stubRevoker{}
	svc := newAuthSvc(newStubUserRepo(), revoker)

	err := svc.Logout(context.Background(), domain.TokenClaims{
		Identity:  domain.Identity{UserID: "u1"},
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	ttl, ok := revoker.revoked["jti-1"]
	if !ok {
		t.Fatal("expected token to be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Errorf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := &stubRevoker{err: errors.New("must not be called")}
	svc := newAuthSvc(newStubUserRepo(), revoker)

	err := svc.Logout(context.Background(), domain.TokenClaims{
		TokenID:   "jti-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("expected no error for expired token, got %v", err)
	}
}

func TestAuthService_EnsureAdmin_CreatesAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})

	admin, err := svc.EnsureAdmin(context.Background(), " Root@Example.com ", "rootpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !admin.IsAdmin || admin.Email != "root@example.com" {
		t.Fatalf("unexpected admin: %+v", admin)
	}

	stored, _ := repo.FindByEmail(context.Background(), "root@example.com")
	if stored == nil || !stored.IsAdmin {
		t.Fatalf("admin flag not persisted: %+v", stored)
	}

	if _, _, err := svc.Login(context.Background(), "root@example.com", "rootpass"); err != nil {
		t.Fatalf("seeded admin cannot log in: %v", err)
	}
}

func TestAuthService_EnsureAdmin_PromotesExisting(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, &stubRevoker{})

	user, err := svc.Register(context.Background(), registerInput("ana@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	admin, err := svc.EnsureAdmin(context.Background(), "ana@example.com", "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != user.ID || !admin.IsAdmin {
		t.Fatalf("expected existing user promoted, got %+v", admin)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected no new account, got %d", len(repo.users))
	}
}
