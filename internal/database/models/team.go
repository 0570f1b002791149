package models

import (
	"fmt"
	"strings"

	apperrors "workflow-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// Team is a node of the org chain (division, section, service, unit)
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:150;not null;uniqueIndex:idx_teams_parent_name,priority:2"`
	Description string     `json:"description" gorm:"type:text"`
	TeamType    TeamType   `json:"team_type" gorm:"type:varchar(20);not null;index"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_teams_parent_name,priority:1"`

	Parent *Team `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMembership links a user to a team
type TeamMembership struct {
	BaseModel
	TeamID uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_user,priority:1"`
	UserID uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_memberships_team_user,priority:2;index"`
	Role   MembershipRole `json:"role" gorm:"type:varchar(10);not null;default:'member'"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}

var allowedTeamParents = map[TeamType][]TeamType{
	TeamTypeDivision: nil,
	TeamTypeSection:  {TeamTypeDivision},
	TeamTypeService:  {TeamTypeSection},
	TeamTypeUnit:     {TeamTypeSection, TeamTypeService},
}

// ValidateTeamPlacement checks a team against its prospective parent.
// parentChain is the parent's ancestry ordered from the division down to the parent itself.
func ValidateTeamPlacement(teamID uuid.UUID, teamType TeamType, parentChain []Team) error {
	if !teamType.IsValid() {
		return apperrors.NewValidationError("team_type", fmt.Sprintf("unknown team type %q", teamType))
	}

	allowed := allowedTeamParents[teamType]
	if len(parentChain) == 0 {
		if len(allowed) == 0 {
			return nil
		}
		return apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
			fmt.Sprintf("%s must have a parent team.", teamType.Label()))
	}

	parent := parentChain[len(parentChain)-1]
	if len(allowed) == 0 {
		return apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
			fmt.Sprintf("%s cannot have a parent team.", teamType.Label()))
	}

	if teamID != uuid.Nil {
		for _, ancestor := range parentChain {
			if ancestor.ID == teamID {
				return apperrors.NewRuleError(apperrors.ErrCycleDetected, "A team cannot be placed under itself.")
			}
		}
	}

	for _, t := range allowed {
		if parent.TeamType == t {
			return nil
		}
	}

	labels := make([]string, len(allowed))
	for i, t := range allowed {
		labels[i] = t.Label()
	}
	return apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
		fmt.Sprintf("%s must belong under: %s", teamType.Label(), strings.Join(labels, ", ")))
}
