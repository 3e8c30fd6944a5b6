package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nyumba/config"
	"nyumba/infras/otel/mocks"
	"nyumba/internal/notification"
	notificationMocks "nyumba/internal/notification/mocks"
)

func TestRetryPolicy_Do(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		policy := notification.NewRetryPolicy(3, time.Millisecond)

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		policy := notification.NewRetryPolicy(3, time.Millisecond)

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("smtp unavailable")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		policy := notification.NewRetryPolicy(3, time.Millisecond)

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return errors.New("smtp unavailable")
		})

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		policy := notification.NewRetryPolicy(5, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := policy.Do(ctx, func() error {
			calls++
			return errors.New("smtp unavailable")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestConsumer_Deliver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := notificationMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Notification.MaxAttempts = 2
	cfg.Notification.BackoffSeconds = 0
	cfg.SMTP.AdminEmail = "frontdesk@nyumba.test"

	consumer := notification.NewConsumer(nil, mockMailer, cfg, mockOtel)

	t.Run("requested events go to the hotel inbox", func(t *testing.T) {
		event := notification.Event{
			Type:     notification.EventBookingRequested,
			FullName: "Asha Odhiambo",
			Email:    "asha@example.com",
		}

		mockMailer.EXPECT().
			Send(gomock.Any(), "frontdesk@nyumba.test", gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, consumer.Deliver(context.Background(), event))
	})

	t.Run("confirmed events go to the guest and retry", func(t *testing.T) {
		event := notification.Event{
			Type:     notification.EventBookingConfirmed,
			FullName: "Asha Odhiambo",
			Email:    "asha@example.com",
		}

		mockMailer.EXPECT().
			Send(gomock.Any(), "asha@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("smtp unavailable"))
		mockMailer.EXPECT().
			Send(gomock.Any(), "asha@example.com", gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, consumer.Deliver(context.Background(), event))
	})
}

func TestMailBodies(t *testing.T) {
	event := notification.Event{
		Type:       notification.EventBookingConfirmed,
		BookingID:  "b-1",
		FullName:   "Asha Odhiambo",
		RoomType:   "Deluxe",
		RoomNumber: "D1",
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-04",
		Guests:     2,
		Nights:     3,
		TotalPrice: "900.00",
	}

	body := notification.Body(event)

	assert.Contains(t, body, "Asha Odhiambo")
	assert.Contains(t, body, "Room: D1")
	assert.Contains(t, body, "Total price: 900.00")
	assert.Contains(t, body, "Booking reference: b-1")
	assert.Equal(t, "Your booking is confirmed", notification.Subject(event))
}
