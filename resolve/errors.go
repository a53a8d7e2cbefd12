package resolve

import (
	"errors"

	"github.com/fwojciec/monoread"
)

// fetchError reports a failed fetch. Errors without a code are network
// errors.
func fetchError(err error, prefix string) error {
	code := monoread.ENETWORK
	var e *monoread.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return monoread.Errorf(code, "%s: %s", prefix, monoread.ErrorMessage(err))
}
