package models

import (
	"strings"

	"github.com/google/uuid"
)

// User is a portal account
type User struct {
	BaseModel
	Username      string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	FirstName     string    `json:"first_name" gorm:"size:150"`
	LastName      string    `json:"last_name" gorm:"size:150"`
	Email         string    `json:"email" gorm:"size:255;index"`
	PositionTitle string    `json:"position_title" gorm:"size:150"`
	LoginRole     LoginRole `json:"login_role" gorm:"type:varchar(20);not null;default:'user';index"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"`
	IsActive      bool      `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns "First Last", falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// IsAdmin reports whether the user holds the admin login role
func (u *User) IsAdmin() bool {
	return u.LoginRole == LoginRoleAdmin
}

// OrgAssignment records where a user sits in the org chain (set by onboarding)
type OrgAssignment struct {
	BaseModel
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	DivisionID uuid.UUID  `json:"division_id" gorm:"type:uuid;not null"`
	SectionID  uuid.UUID  `json:"section_id" gorm:"type:uuid;not null"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty" gorm:"type:uuid"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty" gorm:"type:uuid"`

	User     *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Division *Team `json:"-" gorm:"foreignKey:DivisionID;constraint:OnDelete:CASCADE"`
	Section  *Team `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Service  *Team `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL"`
	Unit     *Team `json:"-" gorm:"foreignKey:UnitID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for OrgAssignment
func (OrgAssignment) TableName() string {
	return "org_assignments"
}
