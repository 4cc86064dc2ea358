package repository

import (
	"errors"

	"doctor-scheduler/internal/domain/entity"
	domainRepo "doctor-scheduler/internal/domain/repository"

	"gorm.io/gorm"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	return db.Create(slot).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id uint) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByDoctorID(db *gorm.DB, doctorID uint) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("doctor_id = ?", doctorID).Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// MarkBooked atomically books a slot ONLY if it is still open.
// Returns affected rows: 1 = success, 0 = already booked (prevents the
// double-booking race under concurrent requests).
func (r *slotRepository) MarkBooked(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Slot{}).
		Where("id = ? AND booked = ?", id, false).
		Update("booked", true)
	return result.RowsAffected, result.Error
}
