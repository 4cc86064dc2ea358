package entity

// Doctor is the practitioner profile extending a User with role doctor.
// At most one profile exists per user.
type Doctor struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Specialty string `gorm:"type:varchar(255);not null" json:"specialty"`
	UserID    uint   `gorm:"not null;uniqueIndex" json:"user_id"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Slots []Slot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
