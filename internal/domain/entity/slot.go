package entity

import "time"

// Slot is a single bookable appointment time owned by a doctor.
// Once booked it stays booked, nothing in the API releases a slot.
type Slot struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Time      string    `gorm:"type:varchar(8);not null" json:"time"`
	Booked    bool      `gorm:"not null;default:false" json:"booked"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor      Doctor       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:SlotID" json:"appointment,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}
