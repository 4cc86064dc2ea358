package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-scheduler/internal/converter"
	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/delivery/http/middleware"
	"doctor-scheduler/internal/domain/entity"
	"doctor-scheduler/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat     = errors.New("invalid time format, use HH:MM")
)

type SlotUsecase interface {
	ListOwnSlots(ctx context.Context) ([]dto.SlotResponse, error)
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
}

type slotUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	slotRepo   repository.SlotRepository
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	slotRepo repository.SlotRepository,
) SlotUsecase {
	return &slotUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
		slotRepo:   slotRepo,
	}
}

// ListOwnSlots returns every slot owned by the calling doctor in storage
// order.
func (u *slotUsecase) ListOwnSlots(ctx context.Context) ([]dto.SlotResponse, error) {
	doctor, err := u.resolveCallerProfile(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindByDoctorID(u.db.WithContext(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find slots for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	return converter.SlotsToResponses(slots), nil
}

// CreateSlot publishes a new open slot owned by the calling doctor.
// Identical date/time pairs are allowed, overlap is not checked.
func (u *slotUsecase) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	doctor, err := u.resolveCallerProfile(ctx)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	slot := &entity.Slot{
		Date:     date,
		Time:     req.Time,
		Booked:   false,
		DoctorID: doctor.ID,
	}

	if err := u.slotRepo.Create(u.db.WithContext(ctx), slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}

	u.log.Infof("Slot created: id=%d, doctor=%d, date=%s %s", slot.ID, doctor.ID, req.Date, req.Time)
	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) resolveCallerProfile(ctx context.Context) (*entity.Doctor, error) {
	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for user %d: %+v", user.ID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}
	return doctor, nil
}
