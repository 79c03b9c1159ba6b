package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockMessageService is a mock implementation of MessageService
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) HandleMessage(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestDispatcher_HandleMessage(t *testing.T) {
	ctx := context.Background()

	newDispatcher := func() (*Dispatcher, *MockMessageService, *MockMessageService, *MockMessageService) {
		employers := new(MockMessageService)
		jobs := new(MockMessageService)
		interests := new(MockMessageService)
		return NewDispatcher(employers, jobs, interests, zap.NewNop()), employers, jobs, interests
	}

	t.Run("routes employer events to the employer service", func(t *testing.T) {
		d, employers, jobs, _ := newDispatcher()
		msg := Message{
			MessageID:  "m1",
			Body:       `{"eventType":"jobs-board-employer-created"}`,
			Attributes: map[string]string{AttrEventType: "jobs-board-employer-created"},
		}
		employers.On("HandleMessage", ctx, msg).Return(nil)

		require.NoError(t, d.HandleMessage(ctx, msg))
		employers.AssertExpectations(t)
		jobs.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything)
	})

	t.Run("routes update events to the same service as creations", func(t *testing.T) {
		d, employers, _, _ := newDispatcher()
		msg := Message{MessageID: "m2", Attributes: map[string]string{AttrEventType: "jobs-board-employer-updated"}}
		employers.On("HandleMessage", ctx, msg).Return(nil)

		require.NoError(t, d.HandleMessage(ctx, msg))
	})

	t.Run("routes job events to the job service", func(t *testing.T) {
		d, _, jobs, _ := newDispatcher()
		msg := Message{MessageID: "m3", Attributes: map[string]string{AttrEventType: "jobs-board-job-created"}}
		jobs.On("HandleMessage", ctx, msg).Return(nil)

		require.NoError(t, d.HandleMessage(ctx, msg))
	})

	t.Run("routes expression-of-interest events to the interest service", func(t *testing.T) {
		d, _, _, interests := newDispatcher()
		msg := Message{
			MessageID: "m4",
			Attributes: map[string]string{
				AttrEventType:    "jobs-board-expression-of-interest-created",
				AttrJobID:        "9001",
				AttrPrisonNumber: "A1234BC",
			},
		}
		interests.On("HandleMessage", ctx, msg).Return(nil)

		require.NoError(t, d.HandleMessage(ctx, msg))
	})

	t.Run("rejects a message with no event type", func(t *testing.T) {
		d, employers, _, _ := newDispatcher()
		err := d.HandleMessage(ctx, Message{MessageID: "m5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missing event type; messageId=m5")
		assert.ErrorIs(t, err, ErrMissingEventType)
		employers.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown event type", func(t *testing.T) {
		d, _, _, _ := newDispatcher()
		err := d.HandleMessage(ctx, Message{
			MessageID:  "m6",
			Attributes: map[string]string{AttrEventType: "jobs-board-employer-deleted"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MessageService not found for Event type=jobs-board-employer-deleted")
		assert.ErrorIs(t, err, ErrUnknownEventType)
	})

	t.Run("wraps service failures with the message ID", func(t *testing.T) {
		d, employers, _, _ := newDispatcher()
		boom := errors.New("downstream unavailable")
		msg := Message{MessageID: "m7", Attributes: map[string]string{AttrEventType: "jobs-board-employer-created"}}
		employers.On("HandleMessage", ctx, msg).Return(boom)

		err := d.HandleMessage(ctx, msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Fail to handle message; messageId=m7")
	})
}
