package services

import (
	"errors"

	"github.com/sbilibin2017/bizlink/internal/repositories"
)

// Error kinds. Every error a service returns either wraps one of these or is a store failure.
var (
	ErrNotFound           = errors.New("does not exist")
	ErrConflict           = errors.New("already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidOldPassword = errors.New("old password is incorrect")
	ErrOrphanedUser       = errors.New("user stored without profile")
)

// EntityError is a NotFound or Conflict outcome for one entity kind.
type EntityError struct {
	Entity string
	Kind   error
}

func (e *EntityError) Error() string {
	return e.Entity + " " + e.Kind.Error()
}

func (e *EntityError) Unwrap() error {
	return e.Kind
}

var (
	ErrUserNotFound              = &EntityError{Entity: "User", Kind: ErrNotFound}
	ErrUserAlreadyExists         = &EntityError{Entity: "User", Kind: ErrConflict}
	ErrProfileNotFound           = &EntityError{Entity: "Profile", Kind: ErrNotFound}
	ErrProfileAlreadyExists      = &EntityError{Entity: "Profile", Kind: ErrConflict}
	ErrBusinessNotFound          = &EntityError{Entity: "Business", Kind: ErrNotFound}
	ErrBusinessAlreadyExists     = &EntityError{Entity: "Business", Kind: ErrConflict}
	ErrPaymentNotFound           = &EntityError{Entity: "Payment", Kind: ErrNotFound}
	ErrPaymentAlreadyExists      = &EntityError{Entity: "Payment", Kind: ErrConflict}
	ErrTrainingNotFound          = &EntityError{Entity: "Training", Kind: ErrNotFound}
	ErrTrainingAlreadyExists     = &EntityError{Entity: "Training", Kind: ErrConflict}
	ErrMessageNotFound           = &EntityError{Entity: "Message", Kind: ErrNotFound}
	ErrMessageAlreadyExists      = &EntityError{Entity: "Message", Kind: ErrConflict}
	ErrNotificationNotFound      = &EntityError{Entity: "Notification", Kind: ErrNotFound}
	ErrNotificationAlreadyExists = &EntityError{Entity: "Notification", Kind: ErrConflict}
	ErrReviewNotFound            = &EntityError{Entity: "Review", Kind: ErrNotFound}
	ErrReviewAlreadyExists       = &EntityError{Entity: "Review", Kind: ErrConflict}
)

// translate maps store outcomes onto entity errors. Other errors pass through.
func translate(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, repositories.ErrDuplicateKey), errors.Is(err, repositories.ErrLockNotAcquired):
		if conflict != nil {
			return conflict
		}
	}
	return err
}

// absent turns the result of a natural-key lookup into the create-if-absent decision:
// nil when the key is free, conflict when it is taken, the store failure otherwise.
func absent(lookupErr, conflict error) error {
	if lookupErr == nil {
		return conflict
	}
	if errors.Is(lookupErr, repositories.ErrNotFound) {
		return nil
	}
	return lookupErr
}
