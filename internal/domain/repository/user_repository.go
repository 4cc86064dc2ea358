package repository

import (
	"doctor-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	UpdateRefreshToken(db *gorm.DB, id uint, refreshToken string) error
}
