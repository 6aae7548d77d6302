//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-checkout/internal/usecase/commands"
	commandsmock "event-checkout/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	t.Run("every channel gets the confirmation even after a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mail := commandsmock.NewMockConfirmationChannel(ctrl)
		stream := commandsmock.NewMockConfirmationChannel(ctrl)
		conf := commands.Confirmation{CheckoutID: uuid.New()}

		mail.EXPECT().Send(gomock.Any(), conf).Return(errors.New("smtp down"))
		mail.EXPECT().Name().Return("email").AnyTimes()
		stream.EXPECT().Send(gomock.Any(), conf).Return(nil)
		stream.EXPECT().Name().Return("kafka").AnyTimes()

		d := commands.NewNotificationDispatcher([]commands.ConfirmationChannel{mail, stream}, time.Second, discardLogger())
		d.Dispatch(context.Background(), conf)

		require.NoError(t, d.Wait(context.Background()))
	})

	t.Run("request cancellation does not reach channels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ch := commandsmock.NewMockConfirmationChannel(ctrl)
		ch.EXPECT().Name().Return("email").AnyTimes()
		ch.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ commands.Confirmation) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := commands.NewNotificationDispatcher([]commands.ConfirmationChannel{ch}, time.Second, discardLogger())
		d.Dispatch(ctx, commands.Confirmation{})

		require.NoError(t, d.Wait(context.Background()))
	})

	t.Run("no channels is a no-op", func(t *testing.T) {
		d := commands.NewNotificationDispatcher(nil, time.Second, discardLogger())
		d.Dispatch(context.Background(), commands.Confirmation{})
		assert.NoError(t, d.Wait(context.Background()))
	})
}
