package usecase

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"doctor-scheduler/config"
	"doctor-scheduler/internal/delivery/http/middleware"
	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret        = "this-is-a-test-secret-with-32-bytes!"
	testAccessExpiry  = 15 * time.Minute
	testRefreshExpiry = 168 * time.Hour
)

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection serializes writes the way Postgres row locks
	// would, so the conditional-update semantics hold under sqlite too.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&entity.User{}, &entity.Doctor{}, &entity.Slot{}, &entity.Appointment{}); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	return db
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:         testSecret,
		AccessExpiry:   testAccessExpiry,
		RefreshExpiry:  testRefreshExpiry,
		RegisterExpiry: time.Hour,
	})
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

func seedUser(t *testing.T, db *gorm.DB, name, email, password, role string) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: hashPassword(t, password),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, user *entity.User, specialty string) *entity.Doctor {
	t.Helper()

	doctor := &entity.Doctor{
		Specialty: specialty,
		UserID:    user.ID,
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("Failed to seed doctor: %v", err)
	}
	return doctor
}

func seedSlot(t *testing.T, db *gorm.DB, doctor *entity.Doctor, date, at string) *entity.Slot {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", date, err)
	}
	slot := &entity.Slot{
		Date:     parsed,
		Time:     at,
		DoctorID: doctor.ID,
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("Failed to seed slot: %v", err)
	}
	return slot
}

func ctxWithUser(user *entity.User) context.Context {
	return context.WithValue(context.Background(), middleware.UserKey, user)
}
