package models

import (
	"fmt"
	"strings"

	apperrors "workflow-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// RootFolderName is the name of the single root of the document tree
const RootFolderName = "ROOT"

// AttachmentsFolderName is the leaf folder created by the placement resolver
const AttachmentsFolderName = "Attachments"

// DocumentFolder is a node of the virtual document tree
type DocumentFolder struct {
	BaseModel
	Name              string     `json:"name" gorm:"size:255;not null;uniqueIndex:idx_document_folders_parent_name,priority:2"`
	FolderType        FolderType `json:"folder_type" gorm:"type:varchar(20);not null;index"`
	ParentID          *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_document_folders_parent_name,priority:1"`
	WorkCycleID       *uuid.UUID `json:"workcycle_id,omitempty" gorm:"type:uuid;index"`
	CreatedByID       *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
	IsSystemGenerated bool       `json:"is_system_generated" gorm:"not null"`

	Parent    *DocumentFolder `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	WorkCycle *WorkCycle      `json:"-" gorm:"foreignKey:WorkCycleID;constraint:OnDelete:RESTRICT"`
	CreatedBy *User           `json:"-" gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for DocumentFolder
func (DocumentFolder) TableName() string {
	return "document_folders"
}

var allowedFolderParents = map[FolderType][]FolderType{
	FolderTypeRoot:       nil,
	FolderTypeYear:       {FolderTypeRoot},
	FolderTypeCategory:   {FolderTypeYear},
	FolderTypeWorkCycle:  {FolderTypeCategory},
	FolderTypeDivision:   {FolderTypeWorkCycle},
	FolderTypeSection:    {FolderTypeDivision},
	FolderTypeService:    {FolderTypeSection},
	FolderTypeUnit:       {FolderTypeSection, FolderTypeService},
	FolderTypeAttachment: {FolderTypeWorkCycle, FolderTypeDivision, FolderTypeSection, FolderTypeService, FolderTypeUnit},
}

// AcceptsFiles reports whether attachments may be placed directly in folders of this type
func (t FolderType) AcceptsFiles() bool {
	switch t {
	case FolderTypeRoot, FolderTypeYear, FolderTypeCategory:
		return false
	}
	return true
}

// FolderArena indexes folders by id so ancestor walks never follow live pointers
type FolderArena struct {
	nodes map[uuid.UUID]DocumentFolder
}

// NewFolderArena builds an arena from a set of folders
func NewFolderArena(folders []DocumentFolder) *FolderArena {
	nodes := make(map[uuid.UUID]DocumentFolder, len(folders))
	for _, f := range folders {
		nodes[f.ID] = f
	}
	return &FolderArena{nodes: nodes}
}

// Get returns the folder with the given id
func (a *FolderArena) Get(id uuid.UUID) (DocumentFolder, bool) {
	f, ok := a.nodes[id]
	return f, ok
}

// Path walks parent links from id and returns the chain ordered root first.
// A repeated id means the stored tree is corrupt and yields ErrCycleDetected.
func (a *FolderArena) Path(id uuid.UUID) ([]DocumentFolder, error) {
	var reversed []DocumentFolder
	seen := make(map[uuid.UUID]bool)
	current := &id
	for current != nil {
		if seen[*current] {
			return nil, apperrors.NewRuleError(apperrors.ErrCycleDetected, "Folder tree contains a cycle.")
		}
		seen[*current] = true
		node, ok := a.nodes[*current]
		if !ok {
			return nil, apperrors.ErrFolderNotFound
		}
		reversed = append(reversed, node)
		current = node.ParentID
	}

	path := make([]DocumentFolder, len(reversed))
	for i, f := range reversed {
		path[len(reversed)-1-i] = f
	}
	return path, nil
}

// ValidateFolder runs the structural rules for a folder about to be written.
// parentPath is the prospective parent's chain ordered root first, empty for a root folder.
// Sibling name uniqueness needs the store and is checked by the caller.
func ValidateFolder(folder *DocumentFolder, parentPath []DocumentFolder) error {
	if !folder.FolderType.IsValid() {
		return apperrors.NewValidationError("folder_type", fmt.Sprintf("unknown folder type %q", folder.FolderType))
	}
	if strings.TrimSpace(folder.Name) == "" {
		return apperrors.NewValidationError("name", "Folder name is required.")
	}

	if folder.FolderType == FolderTypeRoot {
		if folder.ParentID != nil || len(parentPath) > 0 {
			return apperrors.NewRuleError(apperrors.ErrHierarchyViolation, "Root folder cannot have a parent.")
		}
		return validateWorkCycleBinding(folder)
	}

	if folder.ParentID == nil || len(parentPath) == 0 {
		return apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
			fmt.Sprintf("%s folder must have a parent.", folder.FolderType.Label()))
	}
	parent := parentPath[len(parentPath)-1]
	if parent.ID != *folder.ParentID {
		return apperrors.NewValidationError("parent_id", "Parent folder does not match the supplied path.")
	}

	if folder.ID != uuid.Nil {
		for _, ancestor := range parentPath {
			if ancestor.ID == folder.ID {
				return apperrors.NewRuleError(apperrors.ErrCycleDetected, "Cannot move a folder inside itself.")
			}
		}
	}

	if folder.IsSystemGenerated {
		if !containsFolderType(allowedFolderParents[folder.FolderType], parent.FolderType) {
			return apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
				fmt.Sprintf("%s folder must belong under: %s",
					folder.FolderType.Label(), folderTypeLabels(allowedFolderParents[folder.FolderType])))
		}
	} else if parent.FolderType == FolderTypeRoot {
		return apperrors.NewRuleError(apperrors.ErrHierarchyViolation, "Manual folders cannot be created directly under ROOT.")
	}

	return validateWorkCycleBinding(folder)
}

func validateWorkCycleBinding(folder *DocumentFolder) error {
	if folder.FolderType == FolderTypeWorkCycle && folder.WorkCycleID == nil {
		return apperrors.NewValidationError("workcycle_id", "Workcycle folder must reference a WorkCycle.")
	}
	if folder.FolderType != FolderTypeWorkCycle && folder.WorkCycleID != nil {
		return apperrors.NewValidationError("workcycle_id", "Only WORKCYCLE folders may reference a WorkCycle.")
	}
	return nil
}

// ValidateAttachmentPlacement checks that a file of the given work cycle may live in the
// last folder of folderPath (ordered root first).
func ValidateAttachmentPlacement(workCycleID uuid.UUID, folderPath []DocumentFolder) error {
	if len(folderPath) == 0 {
		return apperrors.ErrFolderNotFound
	}
	target := folderPath[len(folderPath)-1]
	if !target.FolderType.AcceptsFiles() {
		return apperrors.NewRuleError(apperrors.ErrInvalidPlacement,
			fmt.Sprintf("Files cannot be placed in %s folders.", target.FolderType.Label()))
	}

	for i := len(folderPath) - 1; i >= 0; i-- {
		f := folderPath[i]
		if f.FolderType == FolderTypeWorkCycle && f.WorkCycleID != nil {
			if *f.WorkCycleID != workCycleID {
				return apperrors.NewRuleError(apperrors.ErrInvalidPlacement, "File does not belong to this work cycle.")
			}
			break
		}
	}
	return nil
}

func containsFolderType(types []FolderType, t FolderType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func folderTypeLabels(types []FolderType) string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.Label()
	}
	return strings.Join(labels, ", ")
}
