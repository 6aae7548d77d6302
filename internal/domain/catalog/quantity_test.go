//go:build unit

package catalog_test

import (
	"testing"

	"event-checkout/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	zero := int32(0)
	negative := int32(-1)
	ten := int32(10)

	tests := []struct {
		name          string
		capacity      *int32
		remaining     int32
		wantUnlimited bool
		wantAvailable bool
	}{
		{name: "null capacity is unlimited", capacity: nil, remaining: 0, wantUnlimited: true, wantAvailable: true},
		{name: "zero capacity is unlimited", capacity: &zero, remaining: 0, wantUnlimited: true, wantAvailable: true},
		{name: "negative capacity is unlimited", capacity: &negative, remaining: 0, wantUnlimited: true, wantAvailable: true},
		{name: "finite with stock", capacity: &ten, remaining: 3, wantUnlimited: false, wantAvailable: true},
		{name: "finite sold out", capacity: &ten, remaining: 0, wantUnlimited: false, wantAvailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := catalog.NewQuantity(tt.capacity, tt.remaining)
			assert.Equal(t, tt.wantUnlimited, q.IsUnlimited())
			assert.Equal(t, tt.wantAvailable, q.Available())
		})
	}
}

func TestQuantityTake(t *testing.T) {
	t.Run("finite stock of q allows exactly q takes", func(t *testing.T) {
		for _, q := range []int{0, 1, 2, 7} {
			stock := catalog.Limited(q)
			var err error
			for i := 0; i < q; i++ {
				stock, err = stock.Take()
				require.NoError(t, err, "take %d of %d", i+1, q)
			}
			_, err = stock.Take()
			assert.ErrorIs(t, err, catalog.ErrSoldOut, "take %d of %d", q+1, q)
			assert.Equal(t, 0, stock.Remaining())
		}
	})

	t.Run("unlimited stock never runs out", func(t *testing.T) {
		stock := catalog.Unlimited()
		var err error
		for i := 0; i < 1000; i++ {
			stock, err = stock.Take()
			require.NoError(t, err)
		}
		assert.True(t, stock.Available())
	})
}
