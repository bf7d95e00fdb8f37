package handlers

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/internal/wizard"
)

// Общая HTTP модель состояния визарда. Каждый обработчик событий визарда
// возвращает полный снимок - клиент всегда видит согласованное состояние.

// WizardServiceModel услуга каталога в HTTP ответе
type WizardServiceModel struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"durationMinutes"`
	DurationLabel   string          `json:"durationLabel"`
	InCart          bool            `json:"inCart"`
}

// WizardCategoryModel категория каталога со своими услугами
type WizardCategoryModel struct {
	Category string               `json:"category"`
	Services []WizardServiceModel `json:"services"`
}

// WizardStaffAvailabilityModel слоты одного сотрудника
type WizardStaffAvailabilityModel struct {
	StaffName  string   `json:"staffName"`
	Profession string   `json:"profession"`
	Slots      []string `json:"slots"`
}

// WizardSlotModel выбранный слот
type WizardSlotModel struct {
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`
	StartTime string `json:"timeOfDay"`
}

// WizardStateResponse полное состояние визарда
type WizardStateResponse struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`

	Catalog        []WizardCategoryModel `json:"catalog"`
	CartServiceIDs []int64               `json:"cartServiceIds"`

	TotalPrice           decimal.Decimal `json:"totalPrice"`
	TotalDurationMinutes int             `json:"totalDurationMinutes"`
	TotalDurationLabel   string          `json:"totalDurationLabel"`
	StaleServiceIDs      []int64         `json:"staleServiceIds,omitempty"`

	SelectedDate string                                  `json:"selectedDate,omitempty"`
	Availability map[string]WizardStaffAvailabilityModel `json:"availability,omitempty"`
	SelectedSlot *WizardSlotModel                        `json:"selectedSlot,omitempty"`

	LastError string `json:"lastError,omitempty"`
}

// FromSnapshot конвертирует снимок сессии в HTTP модель
func FromSnapshot(snap *wizard.Snapshot) *WizardStateResponse {
	inCart := make(map[int64]struct{}, len(snap.CartServiceIDs))
	for _, id := range snap.CartServiceIDs {
		inCart[id] = struct{}{}
	}

	catalog := make([]WizardCategoryModel, 0, len(snap.Catalog))
	for _, group := range snap.Catalog {
		services := make([]WizardServiceModel, 0, len(group.Services))
		for _, svc := range group.Services {
			_, selected := inCart[svc.ID]
			services = append(services, WizardServiceModel{
				ID:              svc.ID,
				Name:            svc.Name,
				Price:           svc.Price,
				DurationMinutes: svc.DurationMinutes,
				DurationLabel:   domain.FormatDuration(svc.DurationMinutes),
				InCart:          selected,
			})
		}
		catalog = append(catalog, WizardCategoryModel{
			Category: group.Category,
			Services: services,
		})
	}

	resp := &WizardStateResponse{
		SessionID:            snap.SessionID,
		Step:                 string(snap.Step),
		Catalog:              catalog,
		CartServiceIDs:       snap.CartServiceIDs,
		TotalPrice:           snap.TotalPrice,
		TotalDurationMinutes: snap.TotalDurationMinutes,
		TotalDurationLabel:   snap.TotalDurationLabel,
		StaleServiceIDs:      snap.StaleServiceIDs,
		LastError:            snap.LastError,
	}

	if !snap.SelectedDate.IsZero() {
		resp.SelectedDate = snap.SelectedDate.Format(domain.DateFormat)
	}

	if snap.Availability != nil {
		availability := make(map[string]WizardStaffAvailabilityModel, len(snap.Availability))
		for staffID, entry := range snap.Availability {
			slots := make([]string, 0, len(entry.Slots))
			for _, slot := range entry.Slots {
				slots = append(slots, slot.String())
			}
			availability[strconv.FormatInt(staffID, 10)] = WizardStaffAvailabilityModel{
				StaffName:  entry.StaffName,
				Profession: entry.Profession,
				Slots:      slots,
			}
		}
		resp.Availability = availability
	}

	if snap.SelectedSlot != nil {
		resp.SelectedSlot = &WizardSlotModel{
			StaffID:   snap.SelectedSlot.StaffID,
			StaffName: snap.SelectedSlot.StaffName,
			StartTime: snap.SelectedSlot.StartTime.String(),
		}
	}

	return resp
}
