package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkItemNormalize(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("done without submitted_at gets stamped", func(t *testing.T) {
		item := NewWorkItem(uuid.New(), uuid.New())
		item.Status = WorkItemStatusDone
		item.Normalize(now)
		require.NotNil(t, item.SubmittedAt)
		assert.Equal(t, now, *item.SubmittedAt)
	})

	t.Run("done keeps an existing submitted_at", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		item := NewWorkItem(uuid.New(), uuid.New())
		item.Status = WorkItemStatusDone
		item.SubmittedAt = &earlier
		item.Normalize(now)
		assert.Equal(t, earlier, *item.SubmittedAt)
	})

	t.Run("not done clears submitted_at", func(t *testing.T) {
		item := NewWorkItem(uuid.New(), uuid.New())
		item.SubmittedAt = &now
		item.Status = WorkItemStatusWorkingOnIt
		item.Normalize(now)
		assert.Nil(t, item.SubmittedAt)
	})

	t.Run("inactive gets inactive_at", func(t *testing.T) {
		item := NewWorkItem(uuid.New(), uuid.New())
		item.Deactivate(InactiveReasonReassigned, "moved")
		item.Normalize(now)
		require.NotNil(t, item.InactiveAt)
		assert.Equal(t, InactiveReasonReassigned, item.InactiveReason)
		assert.Equal(t, WorkItemStatusNotStarted, item.Status)
	})

	t.Run("active clears inactive fields", func(t *testing.T) {
		item := NewWorkItem(uuid.New(), uuid.New())
		item.Deactivate(InactiveReasonReassigned, "moved")
		item.Normalize(now)
		item.Reactivate()
		item.Normalize(now)
		assert.Nil(t, item.InactiveAt)
		assert.Equal(t, InactiveReasonNone, item.InactiveReason)
		assert.Empty(t, item.InactiveNote)
	})

	t.Run("invariants hold for every combination", func(t *testing.T) {
		for _, status := range []WorkItemStatus{WorkItemStatusNotStarted, WorkItemStatusWorkingOnIt, WorkItemStatusDone} {
			for _, active := range []bool{true, false} {
				item := &WorkItem{Status: status, IsActive: active, SubmittedAt: &now, InactiveAt: nil}
				item.Normalize(now)
				assert.Equal(t, status == WorkItemStatusDone, item.SubmittedAt != nil)
				assert.Equal(t, !active, item.InactiveAt != nil)
			}
		}
	})
}

func TestWorkItemTimeliness(t *testing.T) {
	due := time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)
	before := due.Add(-24 * time.Hour)
	after := due.Add(24 * time.Hour)

	item := &WorkItem{Status: WorkItemStatusNotStarted}
	assert.Equal(t, TimelinessPending, item.Timeliness(due, before))
	assert.Equal(t, TimelinessOverdue, item.Timeliness(due, after))

	item.Status = WorkItemStatusWorkingOnIt
	assert.Equal(t, TimelinessInProgress, item.Timeliness(due, before))

	item.Status = WorkItemStatusDone
	item.SubmittedAt = &before
	assert.Equal(t, TimelinessComplete, item.Timeliness(due, after))
	item.SubmittedAt = &after
	assert.Equal(t, TimelinessLate, item.Timeliness(due, after))
}

func TestComputeCycleStats(t *testing.T) {
	due := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	now := due.Add(48 * time.Hour)
	onTime := due.Add(-time.Hour)
	late := due.Add(time.Hour)

	items := []WorkItem{
		{BaseModel: BaseModel{ID: uuid.New()}, Status: WorkItemStatusDone, SubmittedAt: &onTime, ReviewDecision: ReviewDecisionApproved},
		{BaseModel: BaseModel{ID: uuid.New()}, Status: WorkItemStatusDone, SubmittedAt: &late, ReviewDecision: ReviewDecisionPending},
		{BaseModel: BaseModel{ID: uuid.New()}, Status: WorkItemStatusWorkingOnIt},
		{BaseModel: BaseModel{ID: uuid.New()}, Status: WorkItemStatusNotStarted},
	}
	files := map[uuid.UUID]int{items[0].ID: 3, items[1].ID: 1}

	stats := ComputeCycleStats(items, due, files, now)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.CompleteCount)
	assert.Equal(t, 1, stats.LateCount)
	assert.Equal(t, 2, stats.OverdueCount)
	assert.Equal(t, 1, stats.ApprovedCount)
	assert.Equal(t, 1, stats.PendingReviewCount)
	assert.Equal(t, 50.0, stats.CompletionRate)
	assert.Equal(t, 75.0, stats.LateRate)
	assert.Equal(t, 4, stats.TotalFiles)
	assert.Equal(t, 2.0, stats.AvgFilesPerSubmission)
}

func TestComputeCycleStatsEmpty(t *testing.T) {
	stats := ComputeCycleStats(nil, time.Now(), nil, time.Now())
	assert.Equal(t, CycleStats{}, stats)
}
