package models

import (
	"errors"
	"testing"

	apperrors "workflow-portal-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func team(t TeamType, parent *Team) Team {
	tm := Team{BaseModel: BaseModel{ID: uuid.New()}, Name: string(t), TeamType: t}
	if parent != nil {
		id := parent.ID
		tm.ParentID = &id
	}
	return tm
}

func TestValidateTeamPlacement(t *testing.T) {
	division := team(TeamTypeDivision, nil)
	section := team(TeamTypeSection, &division)
	service := team(TeamTypeService, &section)

	tests := []struct {
		name     string
		teamType TeamType
		chain    []Team
		wantRule error
	}{
		{"division without parent", TeamTypeDivision, nil, nil},
		{"division with parent", TeamTypeDivision, []Team{division}, apperrors.ErrHierarchyViolation},
		{"section under division", TeamTypeSection, []Team{division}, nil},
		{"section without parent", TeamTypeSection, nil, apperrors.ErrHierarchyViolation},
		{"service under section", TeamTypeService, []Team{division, section}, nil},
		{"service under division", TeamTypeService, []Team{division}, apperrors.ErrHierarchyViolation},
		{"unit under section", TeamTypeUnit, []Team{division, section}, nil},
		{"unit under service", TeamTypeUnit, []Team{division, section, service}, nil},
		{"unit under division", TeamTypeUnit, []Team{division}, apperrors.ErrHierarchyViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeamPlacement(uuid.Nil, tt.teamType, tt.chain)
			if tt.wantRule == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantRule), "got %v", err)
		})
	}
}

func TestValidateTeamPlacementMessages(t *testing.T) {
	division := team(TeamTypeDivision, nil)
	err := ValidateTeamPlacement(uuid.Nil, TeamTypeUnit, []Team{division})
	assert.Equal(t, "Unit must belong under: Section, Service", apperrors.Message(err))

	err = ValidateTeamPlacement(uuid.Nil, TeamTypeSection, nil)
	assert.Equal(t, "Section must have a parent team.", apperrors.Message(err))
}

func TestValidateTeamPlacementRejectsSelfAncestry(t *testing.T) {
	division := team(TeamTypeDivision, nil)
	section := team(TeamTypeSection, &division)

	err := ValidateTeamPlacement(section.ID, TeamTypeSection, []Team{division, section})
	assert.True(t, errors.Is(err, apperrors.ErrCycleDetected))
}

func TestValidateTeamPlacementUnknownType(t *testing.T) {
	err := ValidateTeamPlacement(uuid.Nil, TeamType("branch"), nil)
	assert.True(t, apperrors.IsValidation(err))
}
