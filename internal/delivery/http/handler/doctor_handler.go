package handler

import (
	"net/http"

	"doctor-scheduler/internal/usecase"
	"doctor-scheduler/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{doctorUsecase: doctorUsecase}
}

// ListDoctors is the public doctor directory.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "failed to list doctors")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}
