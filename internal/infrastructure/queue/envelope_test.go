package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	t.Run("decodes a queued message", func(t *testing.T) {
		raw := []byte(`{
			"messageId": "msg-1",
			"body": "{\"employerId\": \"e1\"}",
			"attributes": {"eventType": "jobs-board-employer-created"},
			"receiveCount": 1
		}`)

		env, err := DecodeEnvelope(raw)
		require.NoError(t, err)
		assert.Equal(t, "msg-1", env.MessageID)
		assert.Equal(t, `{"employerId": "e1"}`, env.Body)
		assert.Equal(t, "jobs-board-employer-created", env.Attributes["eventType"])
		assert.Equal(t, 1, env.ReceiveCount)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`not-json`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed envelope")
	})

	t.Run("rejects a missing message ID", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"body": "{}"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing messageId")
	})
}

func TestEnvelope_Encode(t *testing.T) {
	env := &Envelope{
		MessageID:    "msg-1",
		Body:         "{}",
		Attributes:   map[string]string{"eventType": "jobs-board-job-created"},
		ReceiveCount: 2,
	}

	encoded, err := env.Encode()
	require.NoError(t, err)

	decoded, err := DecodeEnvelope(encoded)
	require.NoError(t, err)
	assert.Equal(t, env, decoded)
}

func TestEnvelope_ToMessage(t *testing.T) {
	env := &Envelope{
		MessageID:  "msg-1",
		Body:       `{"jobId": "j1"}`,
		Attributes: map[string]string{"eventType": "jobs-board-job-created"},
	}

	msg := env.ToMessage()
	assert.Equal(t, "msg-1", msg.MessageID)
	assert.Equal(t, `{"jobId": "j1"}`, msg.Body)
	assert.Equal(t, "jobs-board-job-created", msg.Attributes["eventType"])
}
