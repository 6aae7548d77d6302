package catalog

import "errors"

var ErrSoldOut = errors.New("ticket sold out")

// Quantity is the stock of a ticket offer. Offers configured without a
// capacity (absent, zero or null) are unlimited, never "zero available".
type Quantity struct {
	limited   bool
	remaining int
}

func Unlimited() Quantity {
	return Quantity{}
}

func Limited(remaining int) Quantity {
	return Quantity{limited: true, remaining: remaining}
}

// NewQuantity builds the stock from the persisted capacity and counter.
func NewQuantity(capacity *int32, remaining int32) Quantity {
	if capacity == nil || *capacity <= 0 {
		return Unlimited()
	}
	return Limited(int(remaining))
}

func (q Quantity) IsUnlimited() bool { return !q.limited }
func (q Quantity) Remaining() int    { return q.remaining }

func (q Quantity) Available() bool {
	return !q.limited || q.remaining > 0
}

// Take consumes one unit.
func (q Quantity) Take() (Quantity, error) {
	if !q.limited {
		return q, nil
	}
	if q.remaining <= 0 {
		return q, ErrSoldOut
	}
	return Quantity{limited: true, remaining: q.remaining - 1}, nil
}
