package get_eligible_days

// EligibleDaysResponse HTTP response model: даты, в которые хотя бы один
// сотрудник работает и запись возможна
type EligibleDaysResponse struct {
	Days []string `json:"days"` // "2026-09-15"
}
