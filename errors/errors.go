package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrValidation         = fmt.Errorf("missing required field")
	ErrStorage            = fmt.Errorf("storage failure")
	ErrNotFound           = fmt.Errorf("not found")
	ErrAlreadyExists      = fmt.Errorf("already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet the requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUnauthenticated    = fmt.Errorf("unauthenticated")
	ErrForbidden          = fmt.Errorf("restricted access")
	ErrLicenceExhausted   = fmt.Errorf("no licence seat available")
)

// Colours used by the portal pages to flag the outcome of an action.
const (
	ColourSuccess = "green"
	ColourFailure = "red"
)

// Status converts the outcome of an action into the message and colour
// shown on the re-rendered page. A nil error is a success.
func Status(err error, success string) (message, colour string) {
	switch {
	case err == nil:
		return success, ColourSuccess
	case stderrors.Is(err, ErrValidation):
		return "Please fill in every required field", ColourFailure
	case stderrors.Is(err, ErrAlreadyExists):
		return "This entry already exists", ColourFailure
	case stderrors.Is(err, ErrNotFound):
		return "This entry no longer exists", ColourFailure
	case stderrors.Is(err, ErrInvalidCredentials):
		return "Unknown warehouse, address or password", ColourFailure
	case stderrors.Is(err, ErrInvalidPassword):
		return "Password is too weak", ColourFailure
	case stderrors.Is(err, ErrLicenceExhausted):
		return "Every licence seat is already in use", ColourFailure
	case stderrors.Is(err, ErrForbidden):
		return "Restricted access", ColourFailure
	default:
		return "Something went wrong, please try again", ColourFailure
	}
}
