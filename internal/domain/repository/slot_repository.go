package repository

import (
	"doctor-scheduler/internal/domain/entity"

	"gorm.io/gorm"
)

type SlotRepository interface {
	Create(db *gorm.DB, slot *entity.Slot) error
	FindByID(db *gorm.DB, id uint) (*entity.Slot, error)
	FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Slot, error)
	// MarkBooked flips the booked flag only if the slot is still open and
	// reports the number of rows affected. Zero means the slot was taken.
	MarkBooked(db *gorm.DB, id uint) (int64, error)
}
