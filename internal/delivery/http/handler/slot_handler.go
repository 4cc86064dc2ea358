package handler

import (
	"encoding/json"
	"net/http"

	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/usecase"
	"doctor-scheduler/pkg/response"
	"doctor-scheduler/pkg/validator"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

// ListOwnSlots returns the calling doctor's slots.
func (h *SlotHandler) ListOwnSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.ListOwnSlots(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.Forbidden(w, "access denied")
		default:
			response.InternalServerError(w, "failed to list slots")
		}
		return
	}

	response.JSON(w, http.StatusOK, slots)
}

// CreateSlot publishes a new open slot for the calling doctor.
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.CreateSlot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.Forbidden(w, "access denied")
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "failed to create slot")
		}
		return
	}

	response.JSON(w, http.StatusOK, slot)
}
