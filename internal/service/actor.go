package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/events"
	"workflow-portal-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor is the authenticated user performing an operation
type Actor struct {
	UserID uuid.UUID
	Role   models.LoginRole
}

// IsAdmin reports whether the actor holds the admin login role
func (a Actor) IsAdmin() bool {
	return a.Role == models.LoginRoleAdmin
}

// IsStaff reports whether the actor is an admin or a manager
func (a Actor) IsStaff() bool {
	return a.Role == models.LoginRoleAdmin || a.Role == models.LoginRoleManager
}

// Owns reports whether the actor owns the work item
func (a Actor) Owns(item *models.WorkItem) bool {
	return item.OwnerID == a.UserID
}

// UploadedFile is one file of a multipart request; Open is called once per store attempt
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// lookupError maps a missing row to the given sentinel and wraps anything else
func lookupError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// publish emits events after commit; failures are logged and never surface to the caller
func publish(ctx context.Context, publisher events.Publisher, evts ...events.Event) {
	if publisher == nil || len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, evts...); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", evts[0].Type).Warn("Failed to publish domain event")
	}
}
