package dto

// DoctorResponse exposes a practitioner profile joined with the public
// fields of the owning account. Password and token fields never leave
// the server.
type DoctorResponse struct {
	ID        uint   `json:"id"`
	Specialty string `json:"specialty"`
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
