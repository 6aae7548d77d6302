package registration

import (
	"strconv"
	"strings"
	"time"
)

const numberPrefix = "EVE"

// NumberSeries hands out registration numbers for one submission. All numbers
// share the submission's timestamp token and differ by participant ordinal.
type NumberSeries struct {
	token string
}

func NewNumberSeries(at time.Time) NumberSeries {
	return NumberSeries{token: strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))}
}

// Number returns the registration number for the 1-based ordinal.
func (s NumberSeries) Number(ordinal int) string {
	return numberPrefix + "-" + s.token + "-" + strconv.Itoa(ordinal)
}
