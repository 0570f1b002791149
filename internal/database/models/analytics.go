package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CycleStats are the derived counts shared by every analytics projection
type CycleStats struct {
	TotalItems            int     `json:"total_items"`
	PendingCount          int     `json:"pending_count"`
	InProgressCount       int     `json:"in_progress_count"`
	CompleteCount         int     `json:"complete_count"`
	LateCount             int     `json:"late_count"`
	OverdueCount          int     `json:"overdue_count"`
	PendingReviewCount    int     `json:"pending_review_count"`
	ApprovedCount         int     `json:"approved_count"`
	RevisionCount         int     `json:"revision_count"`
	CompletionRate        float64 `json:"completion_rate"`
	LateRate              float64 `json:"late_rate"`
	TotalFiles            int     `json:"total_files"`
	AvgFilesPerSubmission float64 `json:"avg_files_per_submission"`
}

// ComputeCycleStats aggregates items against dueAt. fileCounts maps work item id to attachment count.
func ComputeCycleStats(items []WorkItem, dueAt time.Time, fileCounts map[uuid.UUID]int, now time.Time) CycleStats {
	return computeStats(items, func(*WorkItem) time.Time { return dueAt }, fileCounts, now)
}

// ComputeItemStats aggregates items that may span cycles; each item needs its WorkCycle loaded.
func ComputeItemStats(items []WorkItem, fileCounts map[uuid.UUID]int, now time.Time) CycleStats {
	return computeStats(items, func(item *WorkItem) time.Time {
		if item.WorkCycle == nil {
			return now
		}
		return item.WorkCycle.DueAt
	}, fileCounts, now)
}

func computeStats(items []WorkItem, dueFor func(*WorkItem) time.Time, fileCounts map[uuid.UUID]int, now time.Time) CycleStats {
	var stats CycleStats
	submittedFiles := 0
	for i := range items {
		item := &items[i]
		stats.TotalItems++
		stats.TotalFiles += fileCounts[item.ID]

		switch item.Timeliness(dueFor(item), now) {
		case TimelinessPending:
			stats.PendingCount++
		case TimelinessInProgress:
			stats.InProgressCount++
		case TimelinessComplete:
			stats.CompleteCount++
		case TimelinessLate:
			stats.LateCount++
		case TimelinessOverdue:
			stats.OverdueCount++
		}

		if item.IsDone() {
			submittedFiles += fileCounts[item.ID]
			switch item.ReviewDecision {
			case ReviewDecisionApproved:
				stats.ApprovedCount++
			case ReviewDecisionRevision:
				stats.RevisionCount++
			default:
				stats.PendingReviewCount++
			}
		}
	}

	submitted := stats.CompleteCount + stats.LateCount
	stats.CompletionRate = percentage(submitted, stats.TotalItems)
	stats.LateRate = percentage(stats.LateCount+stats.OverdueCount, stats.TotalItems)
	if submitted > 0 {
		stats.AvgFilesPerSubmission = round2(float64(submittedFiles) / float64(submitted))
	}
	return stats
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WorkCycleAnalytics is the per-cycle projection
type WorkCycleAnalytics struct {
	BaseModel
	WorkCycleID     uuid.UUID  `json:"workcycle_id" gorm:"type:uuid;not null;uniqueIndex"`
	CycleStats      `gorm:"embedded"`
	LastRefreshedAt time.Time  `json:"last_refreshed_at"`
	WorkCycle       *WorkCycle `json:"-" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkCycleAnalytics
func (WorkCycleAnalytics) TableName() string {
	return "work_cycle_analytics"
}

// TeamWorkCycleAnalytics is the per-team breakdown of a cycle
type TeamWorkCycleAnalytics struct {
	BaseModel
	WorkCycleID     uuid.UUID  `json:"workcycle_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_cycle_analytics,priority:1"`
	TeamID          uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_cycle_analytics,priority:2"`
	CycleStats      `gorm:"embedded"`
	LastRefreshedAt time.Time  `json:"last_refreshed_at"`
	WorkCycle       *WorkCycle `json:"-" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
	Team            *Team      `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamWorkCycleAnalytics
func (TeamWorkCycleAnalytics) TableName() string {
	return "team_work_cycle_analytics"
}

// WorkCycleAnalyticsSnapshot is an append-only history row
type WorkCycleAnalyticsSnapshot struct {
	BaseModel
	WorkCycleID uuid.UUID  `json:"workcycle_id" gorm:"type:uuid;not null;index"`
	CycleStats  `gorm:"embedded"`
	TakenAt     time.Time  `json:"taken_at" gorm:"not null"`
	WorkCycle   *WorkCycle `json:"-" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkCycleAnalyticsSnapshot
func (WorkCycleAnalyticsSnapshot) TableName() string {
	return "work_cycle_analytics_snapshots"
}

// UserSubmissionAnalytics is the per-user projection across all cycles
type UserSubmissionAnalytics struct {
	BaseModel
	UserID          uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	CycleStats      `gorm:"embedded"`
	LastSubmittedAt *time.Time `json:"last_submitted_at,omitempty"`
	LastRefreshedAt time.Time  `json:"last_refreshed_at"`
	User            *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserSubmissionAnalytics
func (UserSubmissionAnalytics) TableName() string {
	return "user_submission_analytics"
}
