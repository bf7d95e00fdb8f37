package choose_slot

// ChooseSlotRequest HTTP request model
type ChooseSlotRequest struct {
	StaffID   int64  `json:"staffId"`
	StartTime string `json:"timeOfDay"` // "10:00"
}
