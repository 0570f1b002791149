package service

import (
	"errors"
	"fmt"
	"strconv"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// folderResolver walks or creates the system folder chain
// ROOT / year / category / cycle / org chain / Attachments.
// Each step is a get-or-create on (parent, name); a unique violation means another
// request won the insert, so the row is re-read instead of failing.
type folderResolver struct {
	folders     repository.FolderRepositoryInterface
	memberships repository.TeamMembershipRepositoryInterface
	teams       repository.TeamRepositoryInterface
}

func newFolderResolver(folders repository.FolderRepositoryInterface, memberships repository.TeamMembershipRepositoryInterface, teams repository.TeamRepositoryInterface) *folderResolver {
	return &folderResolver{folders: folders, memberships: memberships, teams: teams}
}

// root returns the single root folder, creating it on first use
func (r *folderResolver) root() (*models.DocumentFolder, error) {
	root, err := r.folders.GetRoot()
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get root folder: %w", err)
	}

	root = &models.DocumentFolder{
		Name:              models.RootFolderName,
		FolderType:        models.FolderTypeRoot,
		IsSystemGenerated: true,
	}
	if err := models.ValidateFolder(root, nil); err != nil {
		return nil, err
	}
	if err := r.folders.Create(root); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create root folder: %w", err)
		}
		root, err = r.folders.GetRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to get root folder: %w", err)
		}
	}
	return root, nil
}

// child returns the system folder name under the last folder of path, creating it when missing
func (r *folderResolver) child(path []models.DocumentFolder, name string, folderType models.FolderType, workCycleID, createdBy *uuid.UUID) (*models.DocumentFolder, error) {
	parent := path[len(path)-1]

	existing, err := r.folders.GetByParentAndName(&parent.ID, name)
	if err == nil {
		return checkExisting(existing, folderType)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up folder %q: %w", name, err)
	}

	folder := &models.DocumentFolder{
		Name:              name,
		FolderType:        folderType,
		ParentID:          &parent.ID,
		WorkCycleID:       workCycleID,
		CreatedByID:       createdBy,
		IsSystemGenerated: true,
	}
	if err := models.ValidateFolder(folder, path); err != nil {
		return nil, err
	}
	if err := r.folders.Create(folder); err != nil {
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create folder %q: %w", name, err)
		}
		existing, err := r.folders.GetByParentAndName(&parent.ID, name)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read folder %q: %w", name, err)
		}
		return checkExisting(existing, folderType)
	}
	return folder, nil
}

func checkExisting(folder *models.DocumentFolder, want models.FolderType) (*models.DocumentFolder, error) {
	if folder.FolderType != want {
		return nil, apperrors.NewRuleError(apperrors.ErrHierarchyViolation,
			fmt.Sprintf("Folder %q already exists as a %s folder.", folder.Name, folder.FolderType.Label()))
	}
	return folder, nil
}

// resolve returns the root-first path ending at the Attachments folder for a file of attachmentType on item.
// item must have its WorkCycle loaded. The org chain comes from actorID's oldest membership;
// an actor without a team files directly under the cycle folder.
func (r *folderResolver) resolve(item *models.WorkItem, attachmentType models.AttachmentType, actorID uuid.UUID) ([]models.DocumentFolder, error) {
	cycle := item.WorkCycle
	if cycle == nil {
		return nil, fmt.Errorf("work item %s has no work cycle loaded", item.ID)
	}

	root, err := r.root()
	if err != nil {
		return nil, err
	}
	path := []models.DocumentFolder{*root}

	step := func(name string, folderType models.FolderType, workCycleID *uuid.UUID) (*models.DocumentFolder, error) {
		folder, err := r.child(path, name, folderType, workCycleID, &actorID)
		if err != nil {
			return nil, err
		}
		path = append(path, *folder)
		return folder, nil
	}

	if _, err := step(strconv.Itoa(cycle.DueAt.Year()), models.FolderTypeYear, nil); err != nil {
		return nil, err
	}
	if _, err := step(attachmentType.CategoryFolderName(), models.FolderTypeCategory, nil); err != nil {
		return nil, err
	}

	cycleFolder, err := r.child(path, cycle.Title, models.FolderTypeWorkCycle, &cycle.ID, &actorID)
	if err != nil {
		return nil, err
	}
	if !boundTo(cycleFolder, cycle.ID) {
		// Another cycle already owns the title in this category.
		cycleFolder, err = r.child(path, fmt.Sprintf("%s (%s)", cycle.Title, cycle.ID.String()[:8]), models.FolderTypeWorkCycle, &cycle.ID, &actorID)
		if err != nil {
			return nil, err
		}
		if !boundTo(cycleFolder, cycle.ID) {
			return nil, apperrors.NewRuleError(apperrors.ErrInvalidPlacement, "File does not belong to this work cycle.")
		}
	}
	path = append(path, *cycleFolder)

	chain, err := r.orgChain(actorID)
	if err != nil {
		return nil, err
	}
	for _, team := range chain {
		if _, err := step(team.Name, models.FolderTypeForTeam(team.TeamType), nil); err != nil {
			return nil, err
		}
	}

	if _, err := step(models.AttachmentsFolderName, models.FolderTypeAttachment, nil); err != nil {
		return nil, err
	}
	return path, nil
}

func (r *folderResolver) orgChain(userID uuid.UUID) ([]models.Team, error) {
	membership, err := r.memberships.GetOldestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team membership: %w", err)
	}
	chain, err := r.teams.GetChain(membership.TeamID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "load team chain")
	}
	return chain, nil
}

func boundTo(folder *models.DocumentFolder, workCycleID uuid.UUID) bool {
	return folder.WorkCycleID != nil && *folder.WorkCycleID == workCycleID
}
