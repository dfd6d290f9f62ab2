// Package signin implements the sign-in form: field state, reactive
// validation and the submission workflow.
//
// A Form goes Idle -> Submitting -> Idle. While Submitting the trigger is
// disabled and shows a progress indicator instead of its label; leaving
// Submitting happens on every exit path. Success and failure differ only in
// what is persisted and which notification is shown.
package signin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/signin/internal/client/client"
	"github.com/dmitrijs2005/signin/internal/client/models"
	"github.com/dmitrijs2005/signin/internal/client/notify"
	"github.com/dmitrijs2005/signin/internal/client/services"
	"github.com/dmitrijs2005/signin/internal/client/validation"
	"github.com/dmitrijs2005/signin/internal/logging"
)

// Fixed user-facing texts.
const (
	MsgSuccess       = "Login successful!"
	MsgFallbackError = "Invalid credentials"

	LabelIdle       = "Sign In"
	LabelSubmitting = "Signing in..."
)

// Outcome reports what a Submit call did. Every failure has already been
// shown to the user; callers need not act on it.
type Outcome int

const (
	// Invalid means validation failed and nothing was sent.
	Invalid Outcome = iota + 1
	// Busy means a submission was already in flight.
	Busy
	Succeeded
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Busy:
		return "busy"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Trigger is the render state of the submit control.
type Trigger struct {
	Enabled  bool
	Progress bool
	Label    string
}

// Form is one sign-in form instance. It is safe for concurrent use.
type Form struct {
	auth   services.AuthService
	notify notify.Notifier
	rules  *validation.Rules
	log    logging.Logger

	inflight *semaphore.Weighted

	mu         sync.Mutex
	values     models.Credentials
	touched    validation.Touched
	result     validation.Result
	submitting bool
	onChange   func(Trigger)
}

// NewForm builds an empty form. A nil log discards output.
func NewForm(auth services.AuthService, n notify.Notifier, rules *validation.Rules, log logging.Logger) *Form {
	if log == nil {
		log = logging.NewNop()
	}
	f := &Form{
		auth:     auth,
		notify:   n,
		rules:    rules,
		log:      log.With("component", "signin_form"),
		inflight: semaphore.NewWeighted(1),
		touched:  validation.Touched{},
	}
	f.result = rules.Validate(f.values)
	return f
}

// OnTriggerChange registers fn to be called whenever the trigger state
// changes. fn must not call back into the form's Submit.
func (f *Form) OnTriggerChange(fn func(Trigger)) {
	f.mu.Lock()
	f.onChange = fn
	f.mu.Unlock()
}

// SetEmail updates the email value and revalidates.
func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Email = v
	f.result = f.rules.Validate(f.values)
}

// SetPassword updates the password value and revalidates.
func (f *Form) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values.Password = v
	f.result = f.rules.Validate(f.values)
}

// Touch marks a field as interacted with, making its errors visible.
func (f *Form) Touch(field validation.Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched[field] = true
}

// Values returns the current field values.
func (f *Form) Values() models.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns the validation errors of touched fields.
func (f *Form) Errors() map[validation.Field]validation.FieldError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result.Visible(f.touched)
}

// Trigger returns the current render state of the submit control.
func (f *Form) Trigger() Trigger {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.triggerLocked()
}

func (f *Form) triggerLocked() Trigger {
	if f.submitting {
		return Trigger{Enabled: false, Progress: true, Label: LabelSubmitting}
	}
	return Trigger{Enabled: true, Progress: false, Label: LabelIdle}
}

// Submit runs the submission workflow with the current values.
func (f *Form) Submit(ctx context.Context) Outcome {
	creds, ok := f.prepare()
	if !ok {
		f.log.Debug(ctx, "submit blocked by validation")
		return Invalid
	}

	release, ok := f.begin()
	if !ok {
		f.log.Debug(ctx, "submit ignored, request in flight")
		return Busy
	}
	defer release()

	f.log.Info(ctx, "login attempt", "email", creds.Email)

	if _, err := f.login(ctx, creds); err != nil {
		f.log.Warn(ctx, "login failed", "email", creds.Email, "error", err)
		f.notify.Error(failureMessage(err))
		return Failed
	}

	f.log.Info(ctx, "login succeeded", "email", creds.Email)
	f.notify.Success(MsgSuccess)
	return Succeeded
}

// prepare marks every field touched, as a submit attempt counts as an
// interaction, and returns the values when they pass validation.
func (f *Form) prepare() (models.Credentials, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range validation.Fields {
		f.touched[field] = true
	}
	f.result = f.rules.Validate(f.values)
	return f.values, f.result.Valid()
}

// begin enters Submitting if no other submission holds the slot. The
// returned release leaves Submitting and must be called exactly once.
func (f *Form) begin() (release func(), ok bool) {
	if !f.inflight.TryAcquire(1) {
		return nil, false
	}
	f.setSubmitting(true)

	return func() {
		f.setSubmitting(false)
		f.inflight.Release(1)
	}, true
}

func (f *Form) setSubmitting(v bool) {
	f.mu.Lock()
	f.submitting = v
	t := f.triggerLocked()
	fn := f.onChange
	f.mu.Unlock()

	if fn != nil {
		fn(t)
	}
}

// login calls the auth service, turning a panic into an error.
func (f *Form) login(ctx context.Context, creds models.Credentials) (u models.AuthenticatedUser, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("login panicked: %v", p)
		}
	}()
	return f.auth.Login(ctx, creds)
}

// failureMessage is the server's "error" text when it sent one.
func failureMessage(err error) string {
	var rej *client.RejectionError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	return MsgFallbackError
}
