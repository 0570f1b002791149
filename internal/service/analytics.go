package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService recomputes and reads the derived reporting tables.
// Refreshes are explicit post-commit calls from the writing services and the sweeps.
type AnalyticsService struct {
	analytics   repository.AnalyticsRepositoryInterface
	workCycles  repository.WorkCycleRepositoryInterface
	workItems   repository.WorkItemRepositoryInterface
	attachments repository.AttachmentRepositoryInterface
	memberships repository.TeamMembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	now         func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analytics repository.AnalyticsRepositoryInterface, workCycles repository.WorkCycleRepositoryInterface, workItems repository.WorkItemRepositoryInterface, attachments repository.AttachmentRepositoryInterface, memberships repository.TeamMembershipRepositoryInterface, users repository.UserRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		analytics:   analytics,
		workCycles:  workCycles,
		workItems:   workItems,
		attachments: attachments,
		memberships: memberships,
		users:       users,
		now:         time.Now,
	}
}

// TeamAnalyticsResponse is one row of a cycle's per-team breakdown
type TeamAnalyticsResponse struct {
	TeamID   uuid.UUID       `json:"team_id"`
	TeamName string          `json:"team_name"`
	TeamType models.TeamType `json:"team_type"`
	models.CycleStats
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// CycleSummary is the completed-work overview of one active cycle
type CycleSummary struct {
	WorkCycleID   uuid.UUID `json:"workcycle_id"`
	Title         string    `json:"title"`
	DueAt         time.Time `json:"due_at"`
	Total         int       `json:"total"`
	Done          int       `json:"done"`
	PendingReview int       `json:"pending_review"`
	Revision      int       `json:"revision"`
	Approved      int       `json:"approved"`
	ApprovalPct   float64   `json:"approval_pct"`
}

// RefreshWorkCycle recomputes the cycle and per-team projections over active items.
// snapshot also appends a history row.
func (s *AnalyticsService) RefreshWorkCycle(workCycleID uuid.UUID, snapshot bool) (*models.WorkCycleAnalytics, error) {
	cycle, err := s.workCycles.GetByID(workCycleID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}

	items, err := s.workItems.List(repository.WorkItemFilter{WorkCycleID: &workCycleID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	fileCounts, err := s.attachments.CountByWorkItems(itemIDs(items))
	if err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}

	now := s.now()
	stats := models.ComputeCycleStats(items, cycle.DueAt, fileCounts, now)
	row := &models.WorkCycleAnalytics{WorkCycleID: workCycleID, CycleStats: stats, LastRefreshedAt: now}
	if err := s.analytics.UpsertWorkCycle(row); err != nil {
		return nil, fmt.Errorf("failed to save work cycle analytics: %w", err)
	}

	if err := s.refreshTeams(cycle, items, fileCounts, now); err != nil {
		return nil, err
	}

	if snapshot {
		if err := s.analytics.CreateSnapshot(&models.WorkCycleAnalyticsSnapshot{
			WorkCycleID: workCycleID,
			CycleStats:  stats,
			TakenAt:     now,
		}); err != nil {
			return nil, fmt.Errorf("failed to save analytics snapshot: %w", err)
		}
	}
	return row, nil
}

// refreshTeams groups items by the team of each owner's oldest membership
func (s *AnalyticsService) refreshTeams(cycle *models.WorkCycle, items []models.WorkItem, fileCounts map[uuid.UUID]int, now time.Time) error {
	owners := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		owners = append(owners, item.OwnerID)
	}
	memberships, err := s.memberships.ListByUsers(owners)
	if err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}

	teamOf := make(map[uuid.UUID]uuid.UUID, len(memberships))
	for _, m := range memberships {
		if _, seen := teamOf[m.UserID]; !seen {
			teamOf[m.UserID] = m.TeamID
		}
	}

	byTeam := make(map[uuid.UUID][]models.WorkItem)
	var order []uuid.UUID
	for _, item := range items {
		teamID, ok := teamOf[item.OwnerID]
		if !ok {
			continue
		}
		if _, exists := byTeam[teamID]; !exists {
			order = append(order, teamID)
		}
		byTeam[teamID] = append(byTeam[teamID], item)
	}

	for _, teamID := range order {
		row := &models.TeamWorkCycleAnalytics{
			WorkCycleID:     cycle.ID,
			TeamID:          teamID,
			CycleStats:      models.ComputeCycleStats(byTeam[teamID], cycle.DueAt, fileCounts, now),
			LastRefreshedAt: now,
		}
		if err := s.analytics.UpsertTeamWorkCycle(row); err != nil {
			return fmt.Errorf("failed to save team analytics: %w", err)
		}
	}
	return nil
}

// RefreshUser recomputes a user's totals across every cycle
func (s *AnalyticsService) RefreshUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}

	items, err := s.workItems.List(repository.WorkItemFilter{OwnerID: &userID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list work items: %w", err)
	}
	fileCounts, err := s.attachments.CountByWorkItems(itemIDs(items))
	if err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}

	now := s.now()
	row := &models.UserSubmissionAnalytics{
		UserID:          userID,
		CycleStats:      models.ComputeItemStats(items, fileCounts, now),
		LastRefreshedAt: now,
	}
	for _, item := range items {
		if item.SubmittedAt != nil && (row.LastSubmittedAt == nil || item.SubmittedAt.After(*row.LastSubmittedAt)) {
			t := *item.SubmittedAt
			row.LastSubmittedAt = &t
		}
	}

	if err := s.analytics.UpsertUser(row); err != nil {
		return nil, fmt.Errorf("failed to save user analytics: %w", err)
	}
	return row, nil
}

// GetWorkCycle returns the cycle projection, computing it on first access
func (s *AnalyticsService) GetWorkCycle(workCycleID uuid.UUID) (*models.WorkCycleAnalytics, error) {
	row, err := s.analytics.GetWorkCycle(workCycleID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get work cycle analytics: %w", err)
	}
	return s.RefreshWorkCycle(workCycleID, false)
}

// GetUser returns the user projection, computing it on first access
func (s *AnalyticsService) GetUser(userID uuid.UUID) (*models.UserSubmissionAnalytics, error) {
	row, err := s.analytics.GetUser(userID)
	if err == nil {
		return row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user analytics: %w", err)
	}
	return s.RefreshUser(userID)
}

// ListSnapshots returns the history of a cycle, oldest first
func (s *AnalyticsService) ListSnapshots(workCycleID uuid.UUID) ([]models.WorkCycleAnalyticsSnapshot, error) {
	if _, err := s.workCycles.GetByID(workCycleID); err != nil {
		return nil, lookupError(err, apperrors.ErrWorkCycleNotFound, "get work cycle")
	}
	snapshots, err := s.analytics.ListSnapshots(workCycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// TeamBreakdown returns the per-team projections of a cycle
func (s *AnalyticsService) TeamBreakdown(workCycleID uuid.UUID) ([]TeamAnalyticsResponse, error) {
	if _, err := s.GetWorkCycle(workCycleID); err != nil {
		return nil, err
	}
	rows, err := s.analytics.ListTeamWorkCycle(workCycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team analytics: %w", err)
	}

	responses := make([]TeamAnalyticsResponse, len(rows))
	for i, row := range rows {
		responses[i] = TeamAnalyticsResponse{
			TeamID:          row.TeamID,
			CycleStats:      row.CycleStats,
			LastRefreshedAt: row.LastRefreshedAt,
		}
		if row.Team != nil {
			responses[i].TeamName = row.Team.Name
			responses[i].TeamType = row.Team.TeamType
		}
	}
	return responses, nil
}

// CompletedWorkSummary reports review progress for every active cycle.
// approval_pct is approved over all active items of the cycle.
func (s *AnalyticsService) CompletedWorkSummary() ([]CycleSummary, error) {
	active := true
	cycles, err := s.workCycles.List(&active)
	if err != nil {
		return nil, fmt.Errorf("failed to list work cycles: %w", err)
	}

	summaries := make([]CycleSummary, 0, len(cycles))
	for _, cycle := range cycles {
		cycleID := cycle.ID
		items, err := s.workItems.List(repository.WorkItemFilter{WorkCycleID: &cycleID, ActiveOnly: true})
		if err != nil {
			return nil, fmt.Errorf("failed to list work items: %w", err)
		}

		summary := CycleSummary{WorkCycleID: cycle.ID, Title: cycle.Title, DueAt: cycle.DueAt, Total: len(items)}
		for _, item := range items {
			if !item.IsDone() {
				continue
			}
			summary.Done++
			switch item.ReviewDecision {
			case models.ReviewDecisionApproved:
				summary.Approved++
			case models.ReviewDecisionRevision:
				summary.Revision++
			default:
				summary.PendingReview++
			}
		}
		if summary.Total > 0 {
			summary.ApprovalPct = math.Round(float64(summary.Approved)/float64(summary.Total)*10000) / 100
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func itemIDs(items []models.WorkItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
