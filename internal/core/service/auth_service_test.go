package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/auditsafe/audit-insights/internal/core/domain"
	"github.com/auditsafe/audit-insights/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	inserts int
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

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	r.inserts++
	return cloneUser(copy), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, email string, profile domain.Profile) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Profile = profile
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "alice@example.com",
		Password: "pass123",
		Profile:  domain.Profile{Profession: "Auditor"},
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Profile.Profession != "Auditor" {
		t.Fatalf("profile not stored: %+v", user.Profile)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@example.com", Password: "pass12"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "bob@example.com", Password: "other1"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.inserts)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "", Password: "pass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "carol@example.com", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "carol@example.com" {
		t.Fatalf("unexpected subject: %v", claims["sub"])
	}
}

// Unknown email and wrong password must produce the identical error so the
// response leaks nothing about which part failed.
func TestAuthService_Login_Indistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "dave@example.com", Password: "correct"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errWrongPass := svc.Login(context.Background(), "dave@example.com", "wrong")
	_, errNoUser := svc.Login(context.Background(), "nobody@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("errors differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, token, err := svc.Register(context.Background(), ports.RegisterInput{Email: "erin@example.com", Password: "pass12"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	email, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if email != "erin@example.com" {
		t.Fatalf("unexpected email: %q", email)
	}

	if _, err := svc.VerifyToken(token + "tampered"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}

	// Wrong signing secret.
	other := NewAuthService(repo, "other-secret", time.Hour)
	if _, err := other.VerifyToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "old@example.com",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestAuthService_GetProfile_IdentityFromToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, tokenA, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "a@example.com", Password: "pass12"})
	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "b@example.com", Password: "pass12"})

	user, err := svc.GetProfile(context.Background(), tokenA)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Fatalf("profile resolved to wrong identity: %s", user.Email)
	}
}

func TestAuthService_UpdateProfile_UpdatesExistingRecord(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, token, _ := svc.Register(context.Background(), ports.RegisterInput{Email: "f@example.com", Password: "pass12"})

	updated, err := svc.UpdateProfile(context.Background(), token, domain.Profile{City: "Lagos", Company: "Acme"})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Profile.City != "Lagos" || updated.Profile.Company != "Acme" {
		t.Fatalf("profile not updated: %+v", updated.Profile)
	}
	if repo.inserts != 1 {
		t.Fatalf("edit must not insert a new record; inserts=%d", repo.inserts)
	}
}
