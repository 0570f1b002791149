package testutils

import (
	"fmt"
	"sync"
	"time"

	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password of every factory user
const DefaultPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func defaultPasswordHash() string {
	hashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		passwordHash = string(hash)
	})
	return passwordHash
}

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active test user with a unique username
func (f *UserFactory) Create() *models.User {
	f.seq++
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     fmt.Sprintf("user%03d", f.seq),
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User %d", f.seq),
		Email:        fmt.Sprintf("user%03d@example.com", f.seq),
		LoginRole:    models.LoginRoleUser,
		PasswordHash: defaultPasswordHash(),
		IsActive:     true,
	}
}

// WithRole creates a user holding role
func (f *UserFactory) WithRole(role models.LoginRole) *models.User {
	user := f.Create()
	user.LoginRole = role
	return user
}

// WithUsername creates a user with a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a team of teamType under parent (nil for a division)
func (f *TeamFactory) Create(name string, teamType models.TeamType, parent *models.Team) *models.Team {
	team := &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		TeamType:  teamType,
	}
	if parent != nil {
		team.ParentID = &parent.ID
	}
	return team
}

// WorkCycleFactory provides methods to create test WorkCycle data
type WorkCycleFactory struct{}

// NewWorkCycleFactory creates a new WorkCycleFactory
func NewWorkCycleFactory() *WorkCycleFactory {
	return &WorkCycleFactory{}
}

// Create creates an active cycle due in a week
func (f *WorkCycleFactory) Create() *models.WorkCycle {
	return &models.WorkCycle{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Title:       "Monthly Report",
		Description: "Monthly accomplishment report",
		DueAt:       time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second),
		IsActive:    true,
	}
}

// WithDueAt creates a cycle with a custom due date
func (f *WorkCycleFactory) WithDueAt(dueAt time.Time) *models.WorkCycle {
	cycle := f.Create()
	cycle.DueAt = dueAt
	return cycle
}

// WithTitle creates a cycle with a custom title
func (f *WorkCycleFactory) WithTitle(title string) *models.WorkCycle {
	cycle := f.Create()
	cycle.Title = title
	return cycle
}

// FolderFactory provides methods to create test DocumentFolder data
type FolderFactory struct{}

// NewFolderFactory creates a new FolderFactory
func NewFolderFactory() *FolderFactory {
	return &FolderFactory{}
}

// System creates a system-generated folder
func (f *FolderFactory) System(name string, folderType models.FolderType, parent *models.DocumentFolder) *models.DocumentFolder {
	folder := &models.DocumentFolder{
		BaseModel:         models.BaseModel{ID: uuid.New()},
		Name:              name,
		FolderType:        folderType,
		IsSystemGenerated: true,
	}
	if parent != nil {
		folder.ParentID = &parent.ID
	}
	return folder
}

// ForCycle creates the system folder that binds cycle under a category folder
func (f *FolderFactory) ForCycle(cycle *models.WorkCycle, category *models.DocumentFolder) *models.DocumentFolder {
	folder := f.System(cycle.Title, models.FolderTypeWorkCycle, category)
	folder.WorkCycleID = &cycle.ID
	return folder
}

// Manual creates a user-created attachment folder
func (f *FolderFactory) Manual(name string, parent *models.DocumentFolder) *models.DocumentFolder {
	folder := f.System(name, models.FolderTypeAttachment, parent)
	folder.IsSystemGenerated = false
	return folder
}

// OrgChain is a division > section > service > unit branch
type OrgChain struct {
	Division *models.Team
	Section  *models.Team
	Service  *models.Team
	Unit     *models.Team
}

// Teams returns the chain top-most first
func (c OrgChain) Teams() []*models.Team {
	return []*models.Team{c.Division, c.Section, c.Service, c.Unit}
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User      *UserFactory
	Team      *TeamFactory
	WorkCycle *WorkCycleFactory
	Folder    *FolderFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Team:      NewTeamFactory(),
		WorkCycle: NewWorkCycleFactory(),
		Folder:    NewFolderFactory(),
	}
}

// CreateOrgChain builds an unsaved division > section > service > unit branch
func (fs *FactorySet) CreateOrgChain(prefix string) OrgChain {
	division := fs.Team.Create(prefix+" Division", models.TeamTypeDivision, nil)
	section := fs.Team.Create(prefix+" Section", models.TeamTypeSection, division)
	svc := fs.Team.Create(prefix+" Service", models.TeamTypeService, section)
	unit := fs.Team.Create(prefix+" Unit", models.TeamTypeUnit, svc)
	return OrgChain{Division: division, Section: section, Service: svc, Unit: unit}
}
