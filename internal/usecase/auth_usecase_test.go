package usecase

import (
	"context"
	"errors"
	"testing"

	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	redisClient := setupTestRedis(t)
	u := NewAuthUsecase(
		db,
		testLogger(),
		repository.NewUserRepository(),
		repository.NewDoctorRepository(),
		testJWTService(),
		redisClient,
	)
	return u, db
}

func TestRegister_PatientStoresHashedPassword(t *testing.T) {
	u, db := newTestAuthUsecase(t)

	result, err := u.Register(context.Background(), &dto.RegisterRequest{
		Name:     "P",
		Email:    "p@x.com",
		Password: "pw2",
		Role:     "patient",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if result.AccessToken == "" {
		t.Error("Register() returned empty access token")
	}

	var user entity.User
	if err := db.Where("email = ?", "p@x.com").First(&user).Error; err != nil {
		t.Fatalf("Failed to load registered user: %v", err)
	}

	if user.Password == "pw2" {
		t.Error("stored password equals the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw2")); err != nil {
		t.Errorf("stored hash does not verify the original password: %v", err)
	}
	if user.Role != entity.RolePatient {
		t.Errorf("Role = %q, want %q", user.Role, entity.RolePatient)
	}
}

func TestRegister_DoctorCreatesProfile(t *testing.T) {
	u, db := newTestAuthUsecase(t)

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		Name:      "Dr. A",
		Email:     "a@x.com",
		Password:  "pw1",
		Role:      "doctor",
		Specialty: "Cardiology",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var user entity.User
	if err := db.Where("email = ?", "a@x.com").First(&user).Error; err != nil {
		t.Fatalf("Failed to load registered user: %v", err)
	}

	var doctor entity.Doctor
	if err := db.Where("user_id = ?", user.ID).First(&doctor).Error; err != nil {
		t.Fatalf("Doctor profile was not created: %v", err)
	}
	if doctor.Specialty != "Cardiology" {
		t.Errorf("Specialty = %q, want %q", doctor.Specialty, "Cardiology")
	}
}

func TestRegister_PatientHasNoProfile(t *testing.T) {
	u, db := newTestAuthUsecase(t)

	_, err := u.Register(context.Background(), &dto.RegisterRequest{
		Name:     "P",
		Email:    "p@x.com",
		Password: "pw2",
		Role:     "patient",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count doctors: %v", err)
	}
	if count != 0 {
		t.Errorf("doctor profiles = %d, want 0", count)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	u, _ := newTestAuthUsecase(t)

	first := &dto.RegisterRequest{
		Name:     "P",
		Email:    "p@x.com",
		Password: "pw2",
		Role:     "patient",
	}
	if _, err := u.Register(context.Background(), first); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Same email, everything else different.
	second := &dto.RegisterRequest{
		Name:      "Someone Else",
		Email:     "p@x.com",
		Password:  "other",
		Role:      "doctor",
		Specialty: "Dermatology",
	}
	if _, err := u.Register(context.Background(), second); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	u, db := newTestAuthUsecase(t)
	seedUser(t, db, "P", "p@x.com", "pw2", entity.RolePatient)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "correct credentials", email: "p@x.com", password: "pw2", wantErr: nil},
		{name: "wrong password", email: "p@x.com", password: "pw1", wantErr: ErrInvalidCredentials},
		{name: "empty password", email: "p@x.com", password: "", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@x.com", password: "pw2", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := u.Login(context.Background(), &dto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if tokens.AccessToken == "" || tokens.RefreshToken == "" {
					t.Error("Login() returned empty tokens")
				}
			}
		})
	}
}

func TestLogin_PersistsRefreshToken(t *testing.T) {
	u, db := newTestAuthUsecase(t)
	user := seedUser(t, db, "P", "p@x.com", "pw2", entity.RolePatient)

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{Email: "p@x.com", Password: "pw2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	var reloaded entity.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if reloaded.RefreshToken != tokens.RefreshToken {
		t.Error("refresh token was not persisted on the user row")
	}
}

func TestRefresh_RotatesTokens(t *testing.T) {
	u, db := newTestAuthUsecase(t)
	seedUser(t, db, "P", "p@x.com", "pw2", entity.RolePatient)

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{Email: "p@x.com", Password: "pw2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	rotated, err := u.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatal("Refresh() returned empty tokens")
	}

	// The old refresh token is spent.
	if _, err := u.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Refresh() with spent token error = %v, want ErrTokenRevoked", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	u, db := newTestAuthUsecase(t)
	seedUser(t, db, "P", "p@x.com", "pw2", entity.RolePatient)

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{Email: "p@x.com", Password: "pw2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := u.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Refresh() with access token error = %v, want ErrInvalidToken", err)
	}
}

func TestLogout_InvalidatesRefreshToken(t *testing.T) {
	u, db := newTestAuthUsecase(t)
	user := seedUser(t, db, "P", "p@x.com", "pw2", entity.RolePatient)

	tokens, err := u.Login(context.Background(), &dto.LoginRequest{Email: "p@x.com", Password: "pw2"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := u.Logout(context.Background(), user.ID, "some-token-id"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	var reloaded entity.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if reloaded.RefreshToken != "" {
		t.Error("refresh token still persisted after logout")
	}

	if _, err := u.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken}); err == nil {
		t.Error("Refresh() succeeded with a logged-out refresh token")
	}
}
