package forms

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/caterops/staffdesk/pkg/apiclient"
	"github.com/caterops/staffdesk/pkg/notify"
)

// UserValues are the editable fields of a user draft. Password is required
// only when creating; updates leave it blank to keep the current one.
type UserValues struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string
	Place    string
	UserType string `validate:"required"`
	Password string
}

// UserForm drives the create/edit user dialog.
type UserForm struct {
	client   *apiclient.Client
	reporter *notify.Reporter
	validate *validator.Validate
	refresh  func()

	open      bool
	editingID string

	Values UserValues
}

// NewUserForm creates a closed user form.
func NewUserForm(client *apiclient.Client, reporter *notify.Reporter, refresh func()) *UserForm {
	return &UserForm{
		client:   client,
		reporter: reporter,
		validate: validator.New(),
		refresh:  refresh,
	}
}

// Open reports whether the dialog is showing.
func (f *UserForm) Open() bool { return f.open }

// EditingID returns the id of the user being edited, empty for a create.
func (f *UserForm) EditingID() string { return f.editingID }

// BeginCreate opens the form with an empty draft.
func (f *UserForm) BeginCreate() {
	f.editingID = ""
	f.Values = UserValues{UserType: "user"}
	f.open = true
}

// BeginEdit opens the form with the user's fields copied into the draft.
func (f *UserForm) BeginEdit(user apiclient.User) {
	f.editingID = user.ID
	f.Values = UserValues{
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Place:    user.Place,
		UserType: user.UserType,
	}
	f.open = true
}

// Submit validates the draft and creates or updates the user. Password is
// additionally required on create.
func (f *UserForm) Submit(ctx context.Context) error {
	if err := f.validate.Struct(f.Values); err != nil {
		f.reporter.Show(validationMessage(err), notify.KindError)
		return err
	}
	if f.editingID == "" && f.Values.Password == "" {
		err := f.validate.Var(f.Values.Password, "required")
		f.reporter.Show("password is required", notify.KindError)
		return err
	}

	payload := apiclient.User{
		Name:     f.Values.Name,
		Email:    f.Values.Email,
		Phone:    f.Values.Phone,
		Place:    f.Values.Place,
		UserType: f.Values.UserType,
		Password: f.Values.Password,
	}

	if err := submitEntity(ctx, f.client, apiclient.Users, f.editingID, payload); err != nil {
		f.reporter.Show(failureMessage(err), notify.KindError)
		return err
	}

	if f.editingID == "" {
		f.reporter.Show("User created", notify.KindSuccess)
	} else {
		f.reporter.Show("User updated", notify.KindSuccess)
	}
	if f.refresh != nil {
		f.refresh()
	}
	f.Cancel()
	return nil
}

// Cancel discards the draft and closes the form.
func (f *UserForm) Cancel() {
	f.open = false
	f.editingID = ""
	f.Values = UserValues{}
}
