package forms

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/notify"
)

// EventValues are the editable fields of an event draft.
type EventValues struct {
	Title       string `validate:"required"`
	Place       string
	Date        string `validate:"required"`
	Time        string
	Description string
	Status      string
	Slots       []apiclient.EventSlot
}

// EventForm drives the create/edit event dialog.
type EventForm struct {
	client   *apiclient.Client
	reporter *notify.Reporter
	validate *validator.Validate
	refresh  func()

	open      bool
	editingID string

	// Values is the current draft, bound to the dialog's inputs.
	Values EventValues
}

// NewEventForm creates a closed event form. refresh runs after a successful
// submit, before the form closes.
func NewEventForm(client *apiclient.Client, reporter *notify.Reporter, refresh func()) *EventForm {
	return &EventForm{
		client:   client,
		reporter: reporter,
		validate: validator.New(),
		refresh:  refresh,
	}
}

// Open reports whether the dialog is showing.
func (f *EventForm) Open() bool { return f.open }

// EditingID returns the id of the event being edited, empty for a create.
func (f *EventForm) EditingID() string { return f.editingID }

// BeginCreate opens the form with a fresh draft: empty fields and the three
// zeroed staffing slots.
func (f *EventForm) BeginCreate() {
	f.editingID = ""
	f.Values = EventValues{Slots: cloneSlots(slotTemplate)}
	f.open = true
}

// BeginEdit opens the form with the entity's fields copied into the draft.
// Dates are normalized to YYYY-MM-DD and missing slots default to the
// three-category template.
func (f *EventForm) BeginEdit(event apiclient.Event) {
	f.editingID = event.ID
	slots := event.Slots
	if len(slots) == 0 {
		slots = slotTemplate
	}
	f.Values = EventValues{
		Title:       event.Title,
		Place:       event.Place,
		Date:        normalizeDate(event.Date),
		Time:        event.Time,
		Description: event.Description,
		Status:      event.Status,
		Slots:       cloneSlots(slots),
	}
	f.open = true
}

// Submit validates the draft and creates or updates the event. On success the
// refresh callback runs and the form closes; on failure the error surfaces
// through the reporter and the form stays open so the draft survives.
func (f *EventForm) Submit(ctx context.Context) error {
	if err := f.validate.Struct(f.Values); err != nil {
		f.reporter.Show(validationMessage(err), notify.KindError)
		return err
	}

	payload := apiclient.Event{
		Title:       f.Values.Title,
		Place:       f.Values.Place,
		Date:        f.Values.Date,
		Time:        f.Values.Time,
		Description: f.Values.Description,
		Status:      f.Values.Status,
		Slots:       cloneSlots(f.Values.Slots),
	}

	if err := submitEntity(ctx, f.client, apiclient.Events, f.editingID, payload); err != nil {
		f.reporter.Show(failureMessage(err), notify.KindError)
		return err
	}

	if f.editingID == "" {
		f.reporter.Show("Event created", notify.KindSuccess)
	} else {
		f.reporter.Show("Event updated", notify.KindSuccess)
	}
	if f.refresh != nil {
		f.refresh()
	}
	f.Cancel()
	return nil
}

// Cancel discards the draft and closes the form.
func (f *EventForm) Cancel() {
	f.open = false
	f.editingID = ""
	f.Values = EventValues{}
}

func cloneSlots(slots []apiclient.EventSlot) []apiclient.EventSlot {
	return append([]apiclient.EventSlot(nil), slots...)
}
