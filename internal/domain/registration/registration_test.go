//go:build unit

package registration_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"event-checkout/internal/domain/registration"
	"event-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSeries(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	series := registration.NewNumberSeries(at)

	first := series.Number(1)
	second := series.Number(2)

	assert.Regexp(t, regexp.MustCompile(`^EVE-[0-9A-Z]+-1$`), first)
	assert.NotEqual(t, first, second)

	token := strings.Split(first, "-")[1]
	millis, err := strconv.ParseInt(strings.ToLower(token), 36, 64)
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), millis)
}

func TestNewRegistration(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	identityID := uuid.New()

	t.Run("free ticket is confirmed", func(t *testing.T) {
		p := builder.NewParticipantBuilder().Build()
		reg, err := registration.New("EVE-X-1", uuid.New(), uuid.New(), &identityID, true, nil, p, now)
		require.NoError(t, err)
		assert.Equal(t, registration.StatusConfirmed, reg.Status)
		require.NotNil(t, reg.Waiver)
		assert.Equal(t, "203.0.113.7", reg.Waiver.IP)
	})

	t.Run("priced ticket is pending", func(t *testing.T) {
		p := builder.NewParticipantBuilder().Build()
		reg, err := registration.New("EVE-X-1", uuid.New(), uuid.New(), nil, false, nil, p, now)
		require.NoError(t, err)
		assert.Equal(t, registration.StatusPending, reg.Status)
		assert.Nil(t, reg.IdentityID)
	})

	t.Run("waiver metadata only when accepted", func(t *testing.T) {
		p := builder.NewParticipantBuilder().Build()
		p.Waiver.Accepted = false
		reg, err := registration.New("EVE-X-1", uuid.New(), uuid.New(), nil, false, nil, p, now)
		require.NoError(t, err)
		assert.Nil(t, reg.Waiver)
	})

	t.Run("ticket required", func(t *testing.T) {
		p := builder.NewParticipantBuilder().Build()
		_, err := registration.New("EVE-X-1", uuid.New(), uuid.Nil, nil, false, nil, p, now)
		assert.ErrorIs(t, err, registration.ErrMissingTicket)
	})
}

func TestNewAthlete(t *testing.T) {
	p := builder.NewParticipantBuilder().Build()
	regID := uuid.New()

	a, err := registration.NewAthlete(regID, p, time.Now())
	require.NoError(t, err)

	assert.Equal(t, regID, a.RegistrationID)
	assert.Equal(t, p.Name, a.Name)
	assert.Equal(t, p.NationalID, a.NationalID)
	assert.Equal(t, p.Address, a.Address)
	assert.Equal(t, p.Emergency, a.Emergency)
	assert.Equal(t, p.ShirtSize, a.ShirtSize)
	assert.NotEqual(t, uuid.Nil, a.ID)
}
