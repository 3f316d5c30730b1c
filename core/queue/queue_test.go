package queue

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	MeetingID string `json:"meetingId"`
	Status    string `json:"status"`
}

func TestNewTaskAndDecode(t *testing.T) {
	task, err := NewTask("meeting:status_changed", samplePayload{MeetingID: "m-1", Status: "ACCEPTED"})
	require.NoError(t, err)

	assert.Equal(t, "meeting:status_changed", task.Type())
	assert.JSONEq(t, `{"meetingId":"m-1","status":"ACCEPTED"}`, string(task.Payload()))

	var got samplePayload
	require.NoError(t, Decode(task, &got))
	assert.Equal(t, "m-1", got.MeetingID)
}

func TestNewTask_UnencodablePayload(t *testing.T) {
	_, err := NewTask("bad", make(chan int))
	assert.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	err := Decode(asynq.NewTask("meeting:created", []byte("{")), &samplePayload{})
	assert.ErrorContains(t, err, "meeting:created")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "meeting:created", nil))
}
