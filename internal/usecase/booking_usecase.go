package usecase

import (
	"context"
	"errors"

	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/delivery/http/middleware"
	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSlotNotAvailable = errors.New("slot not available")

type BookingUsecase interface {
	BookSlot(ctx context.Context, req *dto.BookSlotRequest) error
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotRepo        repository.SlotRepository
	appointmentRepo repository.AppointmentRepository
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.SlotRepository,
	appointmentRepo repository.AppointmentRepository,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
	}
}

// BookSlot books an open slot for the calling patient.
//
// The appointment insert and the booked-flag flip run in one transaction,
// and the flip is a conditional update ("booked = true where booked =
// false"). Concurrent bookings of the same slot serialize on the slot
// row: exactly one caller sees a row affected, every other transaction
// rolls back with ErrSlotNotAvailable.
func (u *bookingUsecase) BookSlot(ctx context.Context, req *dto.BookSlotRequest) error {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByID(tx, req.SlotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %d: %+v", req.SlotID, err)
		return err
	}
	if slot == nil || slot.Booked {
		return ErrSlotNotAvailable
	}

	appointment := &entity.Appointment{
		PatientID: user.ID,
		SlotID:    slot.ID,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return err
	}

	rows, err := u.slotRepo.MarkBooked(tx, slot.ID)
	if err != nil {
		u.log.Warnf("Failed to mark slot %d booked: %+v", slot.ID, err)
		return err
	}
	if rows == 0 {
		// Lost the race, the deferred rollback discards the appointment.
		return ErrSlotNotAvailable
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking: %+v", err)
		return err
	}

	u.log.Infof("Appointment booked: slot=%d, patient=%d", slot.ID, user.ID)
	return nil
}
