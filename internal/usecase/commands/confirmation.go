package commands

import (
	"net/url"
	"strconv"
)

const (
	confirmationDateLayout = "2006-01-02"
	confirmationTimeLayout = "15:04"
)

// ConfirmationURL builds the thank-you page link. Per-participant values are
// repeated keys in participant order.
func ConfirmationURL(path string, c Confirmation) string {
	q := url.Values{}
	q.Set("event", c.Event.Name)
	q.Set("date", c.Event.StartsAt.Format(confirmationDateLayout))
	q.Set("time", c.Event.StartsAt.Format(confirmationTimeLayout))
	q.Set("location", c.Event.Location)
	for _, p := range c.Participants {
		q.Add("name", p.Name)
		q.Add("category", p.Category)
		q.Add("value", p.Value.String())
		q.Add("registration", p.RegistrationNumber)
	}
	q.Set("participants", strconv.Itoa(len(c.Participants)))
	q.Set("subtotal", c.Subtotal.String())
	q.Set("fee", c.Fee.String())
	q.Set("total", c.Total.String())

	return path + "?" + q.Encode()
}
