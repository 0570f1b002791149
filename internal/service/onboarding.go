package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/repository"
	"workflow-portal-backend/internal/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const onboardingKeyPrefix = "onboard:"

// OnboardingState is the wizard progress kept in the session store
type OnboardingState struct {
	DivisionID *uuid.UUID `json:"division_id,omitempty"`
	SectionID  *uuid.UUID `json:"section_id,omitempty"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty"`
}

// SelectTeamRequest carries one wizard choice; optional steps accept a nil team
type SelectTeamRequest struct {
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

// OnboardingService walks a user through division, section, service and unit placement
type OnboardingService struct {
	users    repository.UserRepositoryInterface
	teams    repository.TeamRepositoryInterface
	tx       repository.TransactionManagerInterface
	sessions session.Store
	ttl      time.Duration
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(users repository.UserRepositoryInterface, teams repository.TeamRepositoryInterface, tx repository.TransactionManagerInterface, sessions session.Store, ttl time.Duration) *OnboardingService {
	return &OnboardingService{
		users:    users,
		teams:    teams,
		tx:       tx,
		sessions: sessions,
		ttl:      ttl,
	}
}

func onboardingKey(userID uuid.UUID) string {
	return onboardingKeyPrefix + userID.String()
}

// State returns the current selections for a user
func (s *OnboardingService) State(ctx context.Context, userID uuid.UUID) (*OnboardingState, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	return s.load(ctx, userID)
}

// Restart clears the wizard
func (s *OnboardingService) Restart(ctx context.Context, userID uuid.UUID) error {
	if err := s.ensureUser(userID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, onboardingKey(userID)); err != nil {
		return fmt.Errorf("failed to clear onboarding state: %w", err)
	}
	return nil
}

// SelectDivision records the division and resets every later step
func (s *OnboardingService) SelectDivision(ctx context.Context, userID, divisionID uuid.UUID) (*OnboardingState, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	if _, err := s.loadTeam(divisionID, models.TeamTypeDivision, nil); err != nil {
		return nil, err
	}

	state := &OnboardingState{DivisionID: &divisionID}
	if err := s.save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectSection records a section of the chosen division
func (s *OnboardingService) SelectSection(ctx context.Context, userID, sectionID uuid.UUID) (*OnboardingState, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.DivisionID == nil {
		return nil, apperrors.NewValidationError("division_id", "Select a division first.")
	}
	if _, err := s.loadTeam(sectionID, models.TeamTypeSection, []uuid.UUID{*state.DivisionID}); err != nil {
		return nil, err
	}

	state.SectionID = &sectionID
	state.ServiceID = nil
	state.UnitID = nil
	if err := s.save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectService records an optional service of the chosen section
func (s *OnboardingService) SelectService(ctx context.Context, userID uuid.UUID, serviceID *uuid.UUID) (*OnboardingState, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.SectionID == nil {
		return nil, apperrors.NewValidationError("section_id", "Select a section first.")
	}
	if serviceID != nil {
		if _, err := s.loadTeam(*serviceID, models.TeamTypeService, []uuid.UUID{*state.SectionID}); err != nil {
			return nil, err
		}
	}

	state.ServiceID = serviceID
	state.UnitID = nil
	if err := s.save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectUnit records an optional unit under the chosen section or service
func (s *OnboardingService) SelectUnit(ctx context.Context, userID uuid.UUID, unitID *uuid.UUID) (*OnboardingState, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.SectionID == nil {
		return nil, apperrors.NewValidationError("section_id", "Select a section first.")
	}
	if unitID != nil {
		parents := []uuid.UUID{*state.SectionID}
		if state.ServiceID != nil {
			parents = append(parents, *state.ServiceID)
		}
		if _, err := s.loadTeam(*unitID, models.TeamTypeUnit, parents); err != nil {
			return nil, err
		}
	}

	state.UnitID = unitID
	if err := s.save(ctx, userID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Complete stores the placement, joins the lowest chosen team and clears the wizard
func (s *OnboardingService) Complete(ctx context.Context, userID uuid.UUID) (*models.OrgAssignment, error) {
	state, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.DivisionID == nil || state.SectionID == nil {
		return nil, apperrors.NewValidationError("", "Division and section are required to complete onboarding.")
	}

	assignment := &models.OrgAssignment{
		UserID:     userID,
		DivisionID: *state.DivisionID,
		SectionID:  *state.SectionID,
		ServiceID:  state.ServiceID,
		UnitID:     state.UnitID,
	}

	lowest := *state.SectionID
	if state.UnitID != nil {
		lowest = *state.UnitID
	} else if state.ServiceID != nil {
		lowest = *state.ServiceID
	}

	err = s.tx.WithinTransaction(func(stores *repository.Stores) error {
		if err := stores.OrgAssignments.Upsert(assignment); err != nil {
			return fmt.Errorf("failed to save org assignment: %w", err)
		}

		_, err := stores.Memberships.Get(lowest, userID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		membership := &models.TeamMembership{TeamID: lowest, UserID: userID, Role: models.MembershipRoleMember}
		if err := stores.Memberships.Create(membership); err != nil && !repository.IsUniqueViolation(err) {
			return fmt.Errorf("failed to add membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, onboardingKey(userID)); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("user_id", userID).Warn("Failed to clear onboarding state")
	}
	return assignment, nil
}

func (s *OnboardingService) ensureUser(userID uuid.UUID) error {
	if _, err := s.users.GetByID(userID); err != nil {
		return lookupError(err, apperrors.ErrUserNotFound, "get user")
	}
	return nil
}

// loadTeam fetches a team of the wanted type whose parent is one of parents (nil means top level)
func (s *OnboardingService) loadTeam(id uuid.UUID, want models.TeamType, parents []uuid.UUID) (*models.Team, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}
	if team.TeamType != want {
		return nil, apperrors.NewValidationError("team_id", fmt.Sprintf("Selected team is not a %s.", want.Label()))
	}
	if parents == nil {
		return team, nil
	}
	if team.ParentID != nil {
		for _, p := range parents {
			if *team.ParentID == p {
				return team, nil
			}
		}
	}
	return nil, apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
		fmt.Sprintf("Selected %s does not belong to the previous selection.", want.Label()))
}

func (s *OnboardingService) load(ctx context.Context, userID uuid.UUID) (*OnboardingState, error) {
	var state OnboardingState
	if err := s.sessions.Get(ctx, onboardingKey(userID), &state); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return &OnboardingState{}, nil
		}
		return nil, fmt.Errorf("failed to load onboarding state: %w", err)
	}
	return &state, nil
}

func (s *OnboardingService) save(ctx context.Context, userID uuid.UUID, state *OnboardingState) error {
	if err := s.sessions.Set(ctx, onboardingKey(userID), state, s.ttl); err != nil {
		return fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return nil
}
