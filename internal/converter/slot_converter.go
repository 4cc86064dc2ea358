package converter

import (
	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/domain/entity"
)

// SlotToResponse converts a Slot entity to its DTO.
func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:       slot.ID,
		Date:     slot.Date.Format("2006-01-02"),
		Time:     slot.Time,
		Booked:   slot.Booked,
		DoctorID: slot.DoctorID,
	}
}

// SlotsToResponses converts a slice of Slot entities.
func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *SlotToResponse(&slot)
	}
	return responses
}
