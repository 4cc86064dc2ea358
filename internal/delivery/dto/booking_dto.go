package dto

type BookSlotRequest struct {
	SlotID uint `json:"slotId" validate:"required,min=1"`
}
