//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"event-checkout/internal/domain/pricing"
	"event-checkout/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixedFeeCents = 500

func paid(cents int64) pricing.Line { return pricing.Line{UnitCents: cents} }
func free() pricing.Line            { return pricing.Line{Free: true} }

func clubRule(base float64, progressive *float64, threshold *int) *pricing.GroupDiscountRule {
	return &pricing.GroupDiscountRule{
		ID:                   uuid.New(),
		Code:                 "CLUB",
		BasePercent:          base,
		ProgressivePercent:   progressive,
		ProgressiveThreshold: threshold,
		AllocationGranted:    100,
	}
}

type totalsView struct {
	Subtotal, Discount, DiscountedSubtotal, Fee, Total int64
	IsFree                                             bool
}

func view(t pricing.Totals) totalsView {
	return totalsView{
		Subtotal:           t.Subtotal.Cents(),
		Discount:           t.Discount.Cents(),
		DiscountedSubtotal: t.DiscountedSubtotal.Cents(),
		Fee:                t.Fee.Cents(),
		Total:              t.Total.Cents(),
		IsFree:             t.IsFree,
	}
}

func TestCalculatorCompute(t *testing.T) {
	calc := pricing.NewCalculator(fixedFeeCents)

	tests := []struct {
		name  string
		lines []pricing.Line
		rule  *pricing.GroupDiscountRule
		want  totalsView
	}{
		{
			name:  "paid and free ticket without discount",
			lines: []pricing.Line{paid(5000), free()},
			want:  totalsView{Subtotal: 5000, Discount: 0, DiscountedSubtotal: 5000, Fee: 1000, Total: 6000, IsFree: false},
		},
		{
			name:  "base and progressive tiers add up on the original subtotal",
			lines: []pricing.Line{paid(10000), paid(10000), paid(10000)},
			rule:  clubRule(10, ptr.Of(5.0), ptr.Of(3)),
			want:  totalsView{Subtotal: 30000, Discount: 4500, DiscountedSubtotal: 25500, Fee: 1500, Total: 27000, IsFree: false},
		},
		{
			name:  "progressive tier stays locked below threshold",
			lines: []pricing.Line{paid(10000), paid(10000)},
			rule:  clubRule(10, ptr.Of(5.0), ptr.Of(3)),
			want:  totalsView{Subtotal: 20000, Discount: 2000, DiscountedSubtotal: 18000, Fee: 1000, Total: 19000, IsFree: false},
		},
		{
			name:  "all free order pays no fee",
			lines: []pricing.Line{free(), free(), free()},
			want:  totalsView{IsFree: true},
		},
		{
			name:  "full discount drops the fee but the order is not free",
			lines: []pricing.Line{paid(8000), paid(8000)},
			rule:  clubRule(100, nil, nil),
			want:  totalsView{Subtotal: 16000, Discount: 16000, DiscountedSubtotal: 0, Fee: 0, Total: 0, IsFree: false},
		},
		{
			name:  "combined tiers above 100 percent clamp at zero",
			lines: []pricing.Line{paid(1000)},
			rule:  clubRule(80, ptr.Of(50.0), ptr.Of(1)),
			want:  totalsView{Subtotal: 1000, Discount: 1300, DiscountedSubtotal: 0, Fee: 0, Total: 0, IsFree: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view(calc.Compute(tt.lines, tt.rule))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculatorInvariants(t *testing.T) {
	calc := pricing.NewCalculator(fixedFeeCents)
	units := []int64{0, 1, 99, 5000, 12345, 100000}
	percents := []float64{0, 0.5, 10, 33.3, 50, 99.9, 100}

	for _, u := range units {
		for _, base := range percents {
			for _, prog := range percents {
				for _, freeSecond := range []bool{false, true} {
					lines := []pricing.Line{paid(u), {UnitCents: u, Free: freeSecond}, paid(u)}
					rule := clubRule(base, ptr.Of(prog), ptr.Of(2))

					first := calc.Compute(lines, rule)
					second := calc.Compute(lines, rule)

					require.GreaterOrEqual(t, first.Total.Cents(), int64(0))
					require.LessOrEqual(t, first.DiscountedSubtotal.Cents(), first.Subtotal.Cents())
					require.False(t, first.IsFree, "isFree must not depend on the discount")
					require.Equal(t, first, second, "same inputs must yield the same totals")
				}
			}
		}
	}
}

func TestAllFree(t *testing.T) {
	assert.True(t, pricing.AllFree([]pricing.Line{free()}))
	assert.True(t, pricing.AllFree([]pricing.Line{free(), free()}))
	assert.False(t, pricing.AllFree([]pricing.Line{free(), paid(0)}), "zero-priced but unflagged ticket is not free")
	assert.False(t, pricing.AllFree(nil))

	calc := pricing.NewCalculator(fixedFeeCents)
	totals := calc.Compute([]pricing.Line{free(), free()}, clubRule(50, ptr.Of(50.0), ptr.Of(1)))
	assert.True(t, totals.IsFree)
	assert.Equal(t, int64(0), totals.Fee.Cents())
	assert.Equal(t, int64(0), totals.Total.Cents())
}

func TestCalculatorPaymentAmount(t *testing.T) {
	calc := pricing.NewCalculator(fixedFeeCents)

	t.Run("no rule adds only the fee", func(t *testing.T) {
		assert.Equal(t, int64(5500), calc.PaymentAmount(paid(5000), nil, 2, true).Cents())
	})
	t.Run("both tiers applied per ticket", func(t *testing.T) {
		rule := clubRule(10, ptr.Of(5.0), ptr.Of(3))
		assert.Equal(t, int64(8500+500), calc.PaymentAmount(paid(10000), rule, 3, true).Cents())
	})
	t.Run("free ticket owes nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), calc.PaymentAmount(free(), nil, 1, true).Cents())
	})
	t.Run("no fee when the order is fully discounted", func(t *testing.T) {
		rule := clubRule(100, nil, nil)
		totals := calc.Compute([]pricing.Line{paid(8000), paid(8000)}, rule)
		require.False(t, totals.Fee.IsPositive())
		assert.Equal(t, int64(0), calc.PaymentAmount(paid(8000), rule, 2, totals.Fee.IsPositive()).Cents())
	})
	t.Run("unit amount excludes the fee", func(t *testing.T) {
		rule := clubRule(10, ptr.Of(5.0), ptr.Of(3))
		assert.Equal(t, int64(8500), calc.UnitAmount(paid(10000), rule, 3).Cents())
		assert.Equal(t, int64(9000), calc.UnitAmount(paid(10000), rule, 2).Cents())
	})
}

func TestGroupDiscountRule(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, clubRule(10, ptr.Of(5.0), ptr.Of(3)).Validate())
		assert.ErrorIs(t, clubRule(101, nil, nil).Validate(), pricing.ErrInvalidPercentage)
		assert.ErrorIs(t, clubRule(10, ptr.Of(-1.0), ptr.Of(3)).Validate(), pricing.ErrInvalidPercentage)
		assert.ErrorIs(t, clubRule(10, ptr.Of(5.0), nil).Validate(), pricing.ErrInvalidThreshold)
	})

	t.Run("usable", func(t *testing.T) {
		rule := clubRule(10, nil, nil)
		rule.AllocationGranted = 3
		rule.AllocationUsed = 1
		assert.NoError(t, rule.CheckUsable(now, 2))
		assert.ErrorIs(t, rule.CheckUsable(now, 3), pricing.ErrAllocationExhausted)

		rule.Deadline = ptr.Of(now.Add(-time.Minute))
		assert.ErrorIs(t, rule.CheckUsable(now, 1), pricing.ErrRuleExpired)
	})
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "60.00", pricing.NewMoney(6000).String())
	assert.Equal(t, "0.05", pricing.NewMoney(5).String())
	assert.Equal(t, "-1.50", pricing.NewMoney(-150).String())
}
