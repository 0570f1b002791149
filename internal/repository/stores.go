package repository

import "gorm.io/gorm"

// Stores bundles every repository bound to the same connection or transaction
type Stores struct {
	Users          UserRepositoryInterface
	Teams          TeamRepositoryInterface
	Memberships    TeamMembershipRepositoryInterface
	OrgAssignments OrgAssignmentRepositoryInterface
	WorkCycles     WorkCycleRepositoryInterface
	Assignments    WorkAssignmentRepositoryInterface
	WorkItems      WorkItemRepositoryInterface
	Attachments    AttachmentRepositoryInterface
	Messages       MessageRepositoryInterface
	Folders        FolderRepositoryInterface
	Notifications  NotificationRepositoryInterface
	Analytics      AnalyticsRepositoryInterface
}

// NewStores builds the repositories on db
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Users:          NewUserRepository(db),
		Teams:          NewTeamRepository(db),
		Memberships:    NewTeamMembershipRepository(db),
		OrgAssignments: NewOrgAssignmentRepository(db),
		WorkCycles:     NewWorkCycleRepository(db),
		Assignments:    NewWorkAssignmentRepository(db),
		WorkItems:      NewWorkItemRepository(db),
		Attachments:    NewAttachmentRepository(db),
		Messages:       NewMessageRepository(db),
		Folders:        NewFolderRepository(db),
		Notifications:  NewNotificationRepository(db),
		Analytics:      NewAnalyticsRepository(db),
	}
}

// TransactionManager runs callbacks inside a database transaction
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (m *TransactionManager) WithinTransaction(fn func(stores *Stores) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}
