package pricing

// Line is the pricing view of one selected ticket.
type Line struct {
	UnitCents int64
	Free      bool
}

type Totals struct {
	Subtotal           Money
	Discount           Money
	DiscountedSubtotal Money
	Fee                Money
	Total              Money
	IsFree             bool
	ParticipantCount   int
}

type Calculator struct {
	feePerParticipant Money
}

func NewCalculator(feeCents int64) *Calculator {
	return &Calculator{feePerParticipant: NewMoney(feeCents)}
}

func (c *Calculator) FeePerParticipant() Money {
	return c.feePerParticipant
}

// Compute has no side effects: the same lines and rule always yield the same totals.
func (c *Calculator) Compute(lines []Line, rule *GroupDiscountRule) Totals {
	n := len(lines)

	subtotal := NewMoney(0)
	for _, l := range lines {
		if l.Free {
			continue
		}
		subtotal = subtotal.Add(NewMoney(l.UnitCents))
	}

	discount := NewMoney(0)
	if rule != nil {
		discount = discount.Add(subtotal.Percent(rule.BasePercent))
		if rule.ProgressivePercent != nil && rule.ProgressiveThreshold != nil && n >= *rule.ProgressiveThreshold {
			discount = discount.Add(subtotal.Percent(*rule.ProgressivePercent))
		}
	}

	discounted := subtotal.Sub(discount).ClampZero()

	fee := NewMoney(0)
	if discounted.IsPositive() {
		fee = c.feePerParticipant.Mul(n)
	}

	return Totals{
		Subtotal:           subtotal,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		Fee:                fee,
		Total:              discounted.Add(fee),
		IsFree:             AllFree(lines),
		ParticipantCount:   n,
	}
}

// UnitAmount is one ticket's value after the group discount.
func (c *Calculator) UnitAmount(line Line, rule *GroupDiscountRule, participantCount int) Money {
	if line.Free {
		return NewMoney(0)
	}
	unit := NewMoney(line.UnitCents)
	pct := rule.EffectivePercent(participantCount)
	return unit.Sub(unit.Percent(pct)).ClampZero()
}

// PaymentAmount is what one priced participant owes: the unit value after the
// group discount, plus the per-participant fee when the order is charged one
// (Totals.Fee is positive).
func (c *Calculator) PaymentAmount(line Line, rule *GroupDiscountRule, participantCount int, feeApplies bool) Money {
	if line.Free {
		return NewMoney(0)
	}
	amount := c.UnitAmount(line, rule, participantCount)
	if feeApplies {
		amount = amount.Add(c.feePerParticipant)
	}
	return amount
}

// AllFree is true iff every line is flagged free. An empty order is not free.
func AllFree(lines []Line) bool {
	if len(lines) == 0 {
		return false
	}
	for _, l := range lines {
		if !l.Free {
			return false
		}
	}
	return true
}
