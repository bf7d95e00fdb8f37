package toggle_service

// ToggleServiceRequest HTTP request model
type ToggleServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}
