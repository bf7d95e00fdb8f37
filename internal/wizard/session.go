package wizard

import (
	"time"

	"github.com/google/uuid"

	"github.com/Isazzy/SBS-ReservationService/internal/domain"
	"github.com/Isazzy/SBS-ReservationService/pkg/types"
)

// Session is the state machine of one in-progress reservation wizard.
// Ровно один экземпляр на пользователя; все мутации выполняются под
// блокировкой менеджера, сама сессия не делает сетевых вызовов.
//
// Шаги: SelectingServices -> SelectingDate -> SelectingSlot -> Confirming
// -> Submitting -> Success. Ошибка отправки возвращает управление на
// Confirming (или на SelectingSlot при конфликте слота); наблюдаемым
// признаком неудачи служит LastError.
type Session struct {
	ID     string
	UserID int64

	Step Step

	// Снапшоты каталога и расписаний, загруженные при старте визарда
	Catalog *domain.CatalogSnapshot
	Staff   []domain.StaffSchedule

	Cart         domain.Cart
	SelectedDate time.Time // нулевое значение = дата не выбрана
	SelectedSlot *domain.SelectedSlot

	// Availability действительна только для AvailabilityKey;
	// любое изменение корзины или даты сбрасывает обе
	Availability    domain.Availability
	AvailabilityKey string

	// LastError сообщение последней неудачной отправки
	LastError string

	// fetchSeq монотонный номер запроса доступности: ответ применяется
	// только если его номер совпадает с текущим (discard устаревших)
	fetchSeq uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a wizard session at the service-selection step
// with an empty cart
func NewSession(userID int64, catalog *domain.CatalogSnapshot, staff []domain.StaffSchedule) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Step:      StepSelectingServices,
		Catalog:   catalog,
		Staff:     staff,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToggleService adds or removes a service from the cart. Ids unknown to the
// catalog snapshot are ignored. Allowed at every step except Submitting;
// изменение корзины на поздних шагах инвалидирует доступность и слот.
// Returns true if the cart was changed.
func (s *Session) ToggleService(serviceID int64) (bool, error) {
	if s.Step == StepSubmitting {
		return false, ErrSubmissionInProgress
	}
	if s.Step == StepSuccess {
		return false, ErrInvalidTransition
	}

	changed := s.Cart.Toggle(serviceID, s.Catalog)
	if !changed {
		return false, nil
	}

	s.invalidateAvailability()
	s.LastError = ""

	// Слот и подтверждение строились под старую корзину
	if s.Step == StepSelectingSlot || s.Step == StepConfirming {
		s.Step = StepSelectingSlot
	}

	// С пустой корзиной дальше первого шага делать нечего
	if s.Cart.IsEmpty() {
		s.Step = StepSelectingServices
	}

	return true, nil
}

// SelectDate handles the dateChanged event at the date-selection step.
// Guard: the date must be eligible. Clears availability and the selected slot.
func (s *Session) SelectDate(date time.Time, now time.Time) error {
	if s.Step != StepSelectingDate {
		return ErrInvalidTransition
	}

	if !domain.IsDateEligible(date, now, s.Staff) {
		return ErrDateNotEligible
	}

	s.SelectedDate = domain.DateOnly(date)
	s.invalidateAvailability()
	s.LastError = ""
	return nil
}

// Advance moves the wizard forward one step:
// SelectingServices -> SelectingDate (guard: cart non-empty),
// SelectingDate -> SelectingSlot (guard: selected date still eligible).
func (s *Session) Advance(now time.Time) error {
	switch s.Step {
	case StepSelectingServices:
		if s.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		s.Step = StepSelectingDate
		return nil

	case StepSelectingDate:
		if s.SelectedDate.IsZero() {
			return ErrNoDateSelected
		}
		if !domain.IsDateEligible(s.SelectedDate, now, s.Staff) {
			return ErrDateNotEligible
		}
		s.Step = StepSelectingSlot
		return nil

	default:
		return ErrInvalidTransition
	}
}

// Back moves the wizard one step backwards. Never mutates the cart.
func (s *Session) Back() error {
	switch s.Step {
	case StepSelectingDate:
		s.Step = StepSelectingServices
		return nil

	case StepSelectingSlot:
		// Слоты привязаны к дате - при возврате к выбору даты они устаревают
		s.invalidateAvailability()
		s.Step = StepSelectingDate
		return nil

	case StepConfirming:
		s.Step = StepSelectingSlot
		return nil

	default:
		return ErrInvalidTransition
	}
}

// ChooseSlot handles the slotChosen event. Guard: the slot must be present
// in the current availability entry of that staff member.
func (s *Session) ChooseSlot(staffID int64, startTime types.TimeString) error {
	if s.Step != StepSelectingSlot {
		return ErrInvalidTransition
	}

	if !s.Availability.HasSlot(staffID, startTime) {
		return ErrSlotNotOffered
	}

	entry := s.Availability[staffID]
	s.SelectedSlot = &domain.SelectedSlot{
		StaffID:   staffID,
		StaffName: entry.StaffName,
		StartTime: startTime,
	}
	s.Step = StepConfirming
	s.LastError = ""
	return nil
}

// BeginAvailabilityFetch registers a new availability request for the current
// (date, cart) pair and returns its sequence number and key. Предыдущий
// незавершенный запрос с этого момента считается устаревшим.
func (s *Session) BeginAvailabilityFetch(now time.Time) (uint64, string, error) {
	if s.Step != StepSelectingSlot {
		return 0, "", ErrInvalidTransition
	}
	if s.Cart.IsEmpty() {
		return 0, "", ErrEmptyCart
	}
	if s.SelectedDate.IsZero() {
		return 0, "", ErrNoDateSelected
	}
	if !domain.IsDateEligible(s.SelectedDate, now, s.Staff) {
		return 0, "", ErrDateNotEligible
	}

	s.fetchSeq++
	key := domain.AvailabilityKey(s.SelectedDate, s.Cart.IDs())
	return s.fetchSeq, key, nil
}

// ApplyAvailability stores a fetch result. The result is discarded when its
// sequence number was superseded or its key no longer matches the current
// (date, cart) pair. Returns true if the result was applied.
func (s *Session) ApplyAvailability(seq uint64, key string, availability domain.Availability) bool {
	if seq != s.fetchSeq {
		return false
	}
	if s.SelectedDate.IsZero() || key != domain.AvailabilityKey(s.SelectedDate, s.Cart.IDs()) {
		return false
	}

	s.Availability = availability
	s.AvailabilityKey = key
	return true
}

// BeginSubmission handles the confirm event: builds the reservation request
// payload and moves the wizard to Submitting.
func (s *Session) BeginSubmission(notes *string) (*domain.ReservationRequest, error) {
	if s.Step != StepConfirming {
		return nil, ErrInvalidTransition
	}
	if s.SelectedSlot == nil {
		return nil, ErrNoSlotSelected
	}

	s.Step = StepSubmitting

	return &domain.ReservationRequest{
		UserID:     s.UserID,
		StaffID:    s.SelectedSlot.StaffID,
		ServiceIDs: s.Cart.IDs(),
		Date:       s.SelectedDate,
		StartTime:  s.SelectedSlot.StartTime,
		Notes:      notes,
	}, nil
}

// CompleteSubmission finishes the wizard after a successful reservation:
// the session reaches Success and its selections are cleared.
func (s *Session) CompleteSubmission() {
	s.Step = StepSuccess
	s.Cart.Clear()
	s.SelectedDate = time.Time{}
	s.SelectedSlot = nil
	s.invalidateAvailability()
	s.LastError = ""
}

// FailSubmission returns control to the user after a failed submission,
// keeping cart and date so the flow does not restart.
//
// При конфликте слота (слот заняли раньше нас) выбранный слот и доступность
// сбрасываются и визард возвращается на выбор слота; при прочих ошибках
// слот сохраняется и пользователь может повторить подтверждение.
func (s *Session) FailSubmission(message string, slotConflict bool) {
	if s.Step != StepSubmitting {
		return
	}

	s.LastError = message

	if slotConflict {
		s.SelectedSlot = nil
		s.invalidateAvailability()
		s.Step = StepSelectingSlot
		return
	}

	s.Step = StepConfirming
}

// Totals returns the cart aggregates against the session's catalog snapshot
func (s *Session) Totals() domain.CartTotals {
	return s.Cart.Aggregate(s.Catalog)
}

// invalidateAvailability drops the fetched availability and the selected
// slot, and supersedes any in-flight availability request
func (s *Session) invalidateAvailability() {
	s.Availability = nil
	s.AvailabilityKey = ""
	s.SelectedSlot = nil
	s.fetchSeq++
}
