package service

import (
	"errors"
	"fmt"
	"time"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for the org tree and memberships
type TeamService struct {
	teams       repository.TeamRepositoryInterface
	memberships repository.TeamMembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	tx          repository.TransactionManagerInterface
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, memberships repository.TeamMembershipRepositoryInterface, users repository.UserRepositoryInterface, tx repository.TransactionManagerInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		teams:       teams,
		memberships: memberships,
		users:       users,
		tx:          tx,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string          `json:"name" validate:"required,max=150"`
	Description string          `json:"description"`
	TeamType    models.TeamType `json:"team_type" validate:"required,oneof=division section service unit"`
	ParentID    *uuid.UUID      `json:"parent_id,omitempty"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Description string `json:"description"`
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID uuid.UUID             `json:"user_id" validate:"required"`
	Role   models.MembershipRole `json:"role" validate:"omitempty,oneof=lead member"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TeamType    models.TeamType `json:"team_type"`
	TypeLabel   string          `json:"type_label"`
	ParentID    *uuid.UUID      `json:"parent_id,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// TeamNode is a team with its nested children
type TeamNode struct {
	TeamResponse
	Children []TeamNode `json:"children"`
}

// MemberResponse represents a team member
type MemberResponse struct {
	UserID   uuid.UUID             `json:"user_id"`
	Username string                `json:"username"`
	FullName string                `json:"full_name"`
	Role     models.MembershipRole `json:"role"`
	JoinedAt string                `json:"joined_at"`
}

// Create creates a team under its parent after checking the org chain rules
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var parentChain []models.Team
	if req.ParentID != nil {
		chain, err := s.teams.GetChain(*req.ParentID)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrTeamNotFound, "load parent team")
		}
		parentChain = chain
	}

	if err := models.ValidateTeamPlacement(uuid.Nil, req.TeamType, parentChain); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueSiblingName(req.ParentID, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		TeamType:    req.TeamType,
		ParentID:    req.ParentID,
	}
	if err := s.teams.Create(team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}
	return toTeamResponse(team), nil
}

// List retrieves teams filtered by type and parent
func (s *TeamService) List(teamType models.TeamType, parentID *uuid.UUID) ([]TeamResponse, error) {
	if teamType != "" && !teamType.IsValid() {
		return nil, apperrors.NewValidationError("team_type", fmt.Sprintf("unknown team type %q", teamType))
	}
	teams, err := s.teams.List(teamType, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// Tree returns every division with its nested descendants
func (s *TeamService) Tree() ([]TeamNode, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	children := make(map[uuid.UUID][]models.Team)
	var roots []models.Team
	for _, t := range teams {
		if t.ParentID == nil {
			roots = append(roots, t)
			continue
		}
		children[*t.ParentID] = append(children[*t.ParentID], t)
	}

	var build func(t models.Team) TeamNode
	build = func(t models.Team) TeamNode {
		node := TeamNode{TeamResponse: *toTeamResponse(&t), Children: []TeamNode{}}
		for _, c := range children[t.ID] {
			node.Children = append(node.Children, build(c))
		}
		return node
	}

	tree := make([]TeamNode, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, build(r))
	}
	return tree, nil
}

// Chain returns the team and its ancestors from the division down
func (s *TeamService) Chain(id uuid.UUID) ([]TeamResponse, error) {
	chain, err := s.teams.GetChain(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "load team chain")
	}
	responses := make([]TeamResponse, len(chain))
	for i := range chain {
		responses[i] = *toTeamResponse(&chain[i])
	}
	return responses, nil
}

// Update renames a team or changes its description
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teams.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}

	if req.Name != team.Name {
		if err := s.ensureUniqueSiblingName(team.ParentID, req.Name, team.ID); err != nil {
			return nil, err
		}
	}

	team.Name = req.Name
	team.Description = req.Description
	if err := s.teams.Update(team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Delete removes a childless team with its memberships and team assignments
func (s *TeamService) Delete(id uuid.UUID) error {
	return s.tx.WithinTransaction(func(stores *repository.Stores) error {
		if _, err := stores.Teams.GetByID(id); err != nil {
			return lookupError(err, apperrors.ErrTeamNotFound, "get team")
		}

		children, err := stores.Teams.CountChildren(id)
		if err != nil {
			return fmt.Errorf("failed to count child teams: %w", err)
		}
		if children > 0 {
			return apperrors.NewRuleError(apperrors.ErrTeamHasChildren, "Remove child teams before deleting this team.")
		}

		if err := stores.Memberships.DeleteByTeam(id); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		if err := stores.Assignments.DeleteByAssignee(models.TeamAssignee(id)); err != nil {
			return fmt.Errorf("failed to delete team assignments: %w", err)
		}
		if err := stores.Teams.Delete(id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// AddMember adds a user to a team
func (s *TeamService) AddMember(teamID uuid.UUID, req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.teams.GetByID(teamID); err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}
	user, err := s.users.GetByID(req.UserID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "get user")
	}

	if _, err := s.memberships.Get(teamID, req.UserID); err == nil {
		return nil, apperrors.ErrMembershipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.MembershipRoleMember
	}
	membership := &models.TeamMembership{TeamID: teamID, UserID: req.UserID, Role: role}
	if err := s.memberships.Create(membership); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrMembershipExists
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	membership.User = user
	return toMemberResponse(membership), nil
}

// RemoveMember removes a user from a team
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) error {
	if err := s.memberships.Delete(teamID, userID); err != nil {
		return lookupError(err, apperrors.ErrMembershipNotFound, "remove member")
	}
	return nil
}

// ListMembers lists the members of a team
func (s *TeamService) ListMembers(teamID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.teams.GetByID(teamID); err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "get team")
	}
	memberships, err := s.memberships.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	responses := make([]MemberResponse, len(memberships))
	for i := range memberships {
		responses[i] = *toMemberResponse(&memberships[i])
	}
	return responses, nil
}

func (s *TeamService) ensureUniqueSiblingName(parentID *uuid.UUID, name string, self uuid.UUID) error {
	existing, err := s.teams.GetBySiblingName(parentID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrTeamExists
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		TeamType:    team.TeamType,
		TypeLabel:   team.TeamType.Label(),
		ParentID:    team.ParentID,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}

func toMemberResponse(m *models.TeamMembership) *MemberResponse {
	resp := &MemberResponse{
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.User != nil {
		resp.Username = m.User.Username
		resp.FullName = m.User.FullName()
	}
	return resp
}
