package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	ctx := context.Background()

	require.NoError(t, rec.Publish(ctx, New(WorkCycleCreated, "c1", nil)))
	require.NoError(t, rec.Publish(ctx, New(NotificationCreated, "n1", nil), New(NotificationCreated, "n2", nil)))

	assert.Equal(t, []string{WorkCycleCreated, NotificationCreated, NotificationCreated}, rec.Types())
	assert.Len(t, rec.Events(), 3)
}

func TestEventEnvelope(t *testing.T) {
	e := New(WorkItemSubmitted, "item-1", map[string]string{"owner": "jdoe"})

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, WorkItemSubmitted, decoded["type"])
	assert.Equal(t, "item-1", decoded["key"])
	assert.Contains(t, decoded, "occurred_at")
	assert.Equal(t, "jdoe", decoded["payload"].(map[string]interface{})["owner"])
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), New(WorkCycleClosed, "c", nil)))
	assert.NoError(t, p.Close())
}
