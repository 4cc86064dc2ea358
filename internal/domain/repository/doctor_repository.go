package repository

import (
	"doctor-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uint) (*entity.Doctor, error)
	FindAllWithUser(db *gorm.DB) ([]entity.Doctor, error)
}
