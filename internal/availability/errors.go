package availability

import (
	"fmt"
	"net/http"

	"github.com/abuelosolos/Fara/internal/pkg/apperror"
)

var (
	ErrMalformedTime      = apperror.New(http.StatusBadRequest, "malformed time")
	ErrInvalidWindowInput = apperror.New(http.StatusBadRequest, "invalid window input")
	ErrUnknownService     = apperror.New(http.StatusNotFound, "unknown service")
)

func malformedTime(s string) error {
	return fmt.Errorf("%w: cannot parse %q as a 12-hour clock time", ErrMalformedTime, s)
}

func invalidWindow(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidWindowInput}, args...)...)
}
