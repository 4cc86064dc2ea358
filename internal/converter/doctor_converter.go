package converter

import (
	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its public DTO. Only the
// owning user's name and email cross the wire.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Specialty: doctor.Specialty,
		UserID:    doctor.UserID,
		Name:      doctor.User.Name,
		Email:     doctor.User.Email,
	}
}

// DoctorsToResponses converts a slice of Doctor entities.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
