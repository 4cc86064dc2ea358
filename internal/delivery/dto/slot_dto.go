package dto

// Request DTOs

type CreateSlotRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type SlotResponse struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Booked   bool   `json:"booked"`
	DoctorID uint   `json:"doctorId"`
}
