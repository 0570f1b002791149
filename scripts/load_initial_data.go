package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workflow-portal-backend/internal/config"
	"workflow-portal-backend/internal/database"
	"workflow-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TeamData is one node of the org tree; children nest below it
type TeamData struct {
	Name        string     `yaml:"name"`
	Type        string     `yaml:"type"`
	Description string     `yaml:"description"`
	Children    []TeamData `yaml:"children,omitempty"`
}

// MembershipData places a user in a team addressed by its slash-separated path
type MembershipData struct {
	Team string `yaml:"team"`
	Role string `yaml:"role"`
}

type UserData struct {
	Username      string           `yaml:"username"`
	Password      string           `yaml:"password"`
	FirstName     string           `yaml:"first_name"`
	LastName      string           `yaml:"last_name"`
	Email         string           `yaml:"email"`
	PositionTitle string           `yaml:"position_title"`
	LoginRole     string           `yaml:"login_role"`
	Memberships   []MembershipData `yaml:"memberships,omitempty"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type loadStats struct {
	teamsCreated, teamsExisting           int
	usersCreated, usersExisting           int
	membershipsCreated, membershipsExists int
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" noise while loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFiles []TeamsFile
	if err := walkYAML(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teamsFiles = append(teamsFiles, file)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var users []UserData
	if err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		users = append(users, file.Users...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	var stats loadStats
	return db.Transaction(func(tx *gorm.DB) error {
		teamsByPath := make(map[string]*models.Team)
		for _, file := range teamsFiles {
			for _, root := range file.Teams {
				if err := createTeamTree(tx, root, nil, "", teamsByPath, &stats); err != nil {
					return err
				}
			}
		}

		for _, userData := range users {
			user, created, err := createUser(tx, userData)
			if err != nil {
				return err
			}
			if created {
				stats.usersCreated++
			} else {
				stats.usersExisting++
			}

			for _, m := range userData.Memberships {
				team, ok := teamsByPath[m.Team]
				if !ok {
					return fmt.Errorf("user %s: unknown team %q", userData.Username, m.Team)
				}
				created, err := createMembership(tx, user.ID, team.ID, m.Role)
				if err != nil {
					return err
				}
				if created {
					stats.membershipsCreated++
				} else {
					stats.membershipsExists++
				}
			}
		}

		log.Printf("Teams: %d created, %d existing", stats.teamsCreated, stats.teamsExisting)
		log.Printf("Users: %d created, %d existing", stats.usersCreated, stats.usersExisting)
		log.Printf("Memberships: %d created, %d existing", stats.membershipsCreated, stats.membershipsExists)
		return nil
	})
}

// walkYAML feeds every .yaml file under dataDir whose path contains kind to fn
func walkYAML(dataDir, kind string, fn func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// createTeamTree creates node under parent and recurses into its children.
// chain is the parent's ancestry from the division down, used for placement checks.
func createTeamTree(db *gorm.DB, node TeamData, chain []models.Team, parentPath string, teamsByPath map[string]*models.Team, stats *loadStats) error {
	teamType := models.TeamType(node.Type)
	if err := models.ValidateTeamPlacement(uuid.Nil, teamType, chain); err != nil {
		return fmt.Errorf("team %q: %w", node.Name, err)
	}

	var parentID *uuid.UUID
	if len(chain) > 0 {
		parentID = &chain[len(chain)-1].ID
	}

	var team models.Team
	query := db.Where("name = ?", node.Name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	err := query.First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		team = models.Team{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			Name:        node.Name,
			Description: node.Description,
			TeamType:    teamType,
			ParentID:    parentID,
		}
		if err := db.Create(&team).Error; err != nil {
			return fmt.Errorf("failed to create team %q: %w", node.Name, err)
		}
		stats.teamsCreated++
	case err != nil:
		return fmt.Errorf("failed to query team %q: %w", node.Name, err)
	default:
		if team.TeamType != teamType {
			return fmt.Errorf("team %q already exists as a %s", node.Name, team.TeamType)
		}
		stats.teamsExisting++
	}

	path := node.Name
	if parentPath != "" {
		path = parentPath + "/" + node.Name
	}
	teamsByPath[path] = &team

	childChain := append(append([]models.Team{}, chain...), team)
	for _, child := range node.Children {
		if err := createTeamTree(db, child, childChain, path, teamsByPath, stats); err != nil {
			return err
		}
	}
	return nil
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("username = ?", data.Username).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user %s: %w", data.Username, err)
	}

	role := models.LoginRole(data.LoginRole)
	if role == "" {
		role = models.LoginRoleUser
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("user %s: unknown login role %q", data.Username, data.LoginRole)
	}
	if data.Password == "" {
		return nil, false, fmt.Errorf("user %s: password is required", data.Username)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password for %s: %w", data.Username, err)
	}

	user = models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Username:      data.Username,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PositionTitle: data.PositionTitle,
		LoginRole:     role,
		PasswordHash:  string(hash),
		IsActive:      true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", data.Username, err)
	}
	return &user, true, nil
}

func createMembership(db *gorm.DB, userID, teamID uuid.UUID, role string) (bool, error) {
	membershipRole := models.MembershipRole(role)
	if membershipRole == "" {
		membershipRole = models.MembershipRoleMember
	}
	if !membershipRole.IsValid() {
		return false, fmt.Errorf("unknown membership role %q", role)
	}

	membership := models.TeamMembership{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    teamID,
		UserID:    userID,
		Role:      membershipRole,
	}
	result := db.Where("team_id = ? AND user_id = ?", teamID, userID).FirstOrCreate(&membership)
	if result.Error != nil {
		return false, fmt.Errorf("failed to create membership: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
