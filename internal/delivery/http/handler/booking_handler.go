package handler

import (
	"encoding/json"
	"net/http"

	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/usecase"
	"doctor-scheduler/pkg/response"
	"doctor-scheduler/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// BookSlot books an open slot for the calling patient.
func (h *BookingHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.BookSlot(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrSlotNotAvailable:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "failed to book slot")
		}
		return
	}

	response.Message(w, http.StatusOK, "Appointment booked")
}
