package entity

import "time"

// Role values a user can hold. The role is fixed at registration, no
// endpoint changes it afterwards.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// User is the identity record for both doctors and patients.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Password-reset fields exist in the schema but no endpoint drives
	// them yet; the email flow lives outside this service.
	ResetToken       string     `gorm:"type:varchar(255)" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// RefreshToken holds the currently valid refresh token so it can be
	// invalidated on logout.
	RefreshToken string `gorm:"type:text" json:"-"`

	// Relationships
	Doctor       *Doctor       `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}
