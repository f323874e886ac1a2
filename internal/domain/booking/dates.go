package booking

import (
	"time"

	"github.com/OptiVisionCare/optic-booking/internal/httperr"
)

// DisplayDateFormat is the store's Date column format.
const DisplayDateFormat = "02/01/2006"

// FormatDate normalizes caller input (yyyy-mm-dd or RFC 3339) to the store's
// dd/MM/yyyy display form. Timestamps are shifted into the business zone
// first, so a near-midnight instant lands on the intended calendar day.
func FormatDate(raw string, loc *time.Location) (string, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc).Format(DisplayDateFormat), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
		return t.Format(DisplayDateFormat), nil
	}

	// Already in display form: accept verbatim.
	if t, err := time.ParseInLocation(DisplayDateFormat, raw, loc); err == nil {
		return t.Format(DisplayDateFormat), nil
	}

	return "", httperr.ErrBusiness("invalid_date")
}
