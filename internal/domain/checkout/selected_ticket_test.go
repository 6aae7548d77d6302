//go:build unit

package checkout_test

import (
	"net/url"
	"testing"

	"event-checkout/internal/domain/catalog"
	"event-checkout/internal/domain/checkout"
	"event-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	raw := `{"10K":2,"5K":1}`

	t.Run("raw json", func(t *testing.T) {
		sel, err := checkout.ParseSelection(raw)
		require.NoError(t, err)
		assert.Equal(t, checkout.Selection{"10K": 2, "5K": 1}, sel)
		assert.Equal(t, 3, sel.Total())
	})

	t.Run("url encoded json", func(t *testing.T) {
		sel, err := checkout.ParseSelection(url.QueryEscape(raw))
		require.NoError(t, err)
		assert.Equal(t, 3, sel.Total())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := checkout.ParseSelection("10K=2")
		assert.ErrorIs(t, err, checkout.ErrInvalidSelection)
	})
}

func TestSelectionExpand(t *testing.T) {
	tenK := builder.NewTicketBuilder().WithCategory("10K").WithPrice(12000).BuildDomain()
	fiveK := builder.NewTicketBuilder().WithCategory("5K").WithStock(1).BuildDomain()
	batch := catalog.NewBatch(uuid.New(), uuid.New(), []*catalog.Ticket{tenK, fiveK})

	t.Run("one ticket per unit in category order", func(t *testing.T) {
		tickets, err := checkout.Selection{"5K": 1, "10K": 2}.Expand(batch)
		require.NoError(t, err)
		require.Len(t, tickets, 3)
		assert.Equal(t, "10K", tickets[0].Category)
		assert.Equal(t, "10K", tickets[1].Category)
		assert.Equal(t, "5K", tickets[2].Category)
		assert.Equal(t, int64(12000), tickets[0].UnitCents)
	})

	tests := []struct {
		name    string
		sel     checkout.Selection
		wantErr error
	}{
		{name: "empty", sel: checkout.Selection{}, wantErr: checkout.ErrEmptySelection},
		{name: "zero quantity", sel: checkout.Selection{"10K": 0}, wantErr: checkout.ErrInvalidQuantity},
		{name: "unknown category", sel: checkout.Selection{"42K": 1}, wantErr: catalog.ErrTicketNotFound},
		{name: "more than finite stock", sel: checkout.Selection{"5K": 2}, wantErr: checkout.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sel.Expand(batch)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelectedTicket_AllowsShirtSize(t *testing.T) {
	kit := builder.NewTicketBuilder().WithShirtKit("P", "M").BuildSelected()
	assert.True(t, kit.Apparel)
	assert.True(t, kit.AllowsShirtSize("m"))
	assert.False(t, kit.AllowsShirtSize("GG"))

	plain := builder.NewTicketBuilder().BuildSelected()
	assert.False(t, plain.Apparel)
	assert.True(t, plain.AllowsShirtSize("anything"))
}
