// Package forms implements the create/edit draft controllers backing the
// dashboard's entity dialogs. A form holds a draft, validates required fields,
// and on submit either creates or updates through the API client depending on
// whether an editing-target id is set. Failures surface through the
// notification reporter and leave the form open so the draft is not lost.
package forms

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/caterops/staffdesk/pkg/apiclient"
)

// slotTemplate is the fixed three-category staffing template new events start
// from and sparse edits default to.
var slotTemplate = []apiclient.EventSlot{
	{Name: "A"},
	{Name: "B"},
	{Name: "C"},
}

// ParseSlotCount coerces free-text numeric input to a slot count. Anything
// that does not parse as a non-negative integer becomes zero.
func ParseSlotCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// normalizeDate trims a timestamp down to the editable YYYY-MM-DD form.
func normalizeDate(date string) string {
	if t := strings.IndexAny(date, "T "); t > 0 {
		date = date[:t]
	}
	return date
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return strings.ToLower(verrs[0].Field()) + " is required"
	}
	return err.Error()
}

func failureMessage(err error) string {
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	return err.Error()
}

// submitEntity is the shared create-or-update plumbing for both forms.
func submitEntity[T any](
	ctx context.Context,
	client *apiclient.Client,
	resource apiclient.Resource[T],
	editingID string,
	payload T,
) error {
	if editingID == "" {
		_, err := apiclient.Create(ctx, client, resource, payload)
		return err
	}
	_, err := apiclient.Update(ctx, client, resource, editingID, payload)
	return err
}
