package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"workflow-portal-backend/internal/database/models"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkItemHandler handles HTTP requests for work items, their chat and uploads
type WorkItemHandler struct {
	workItems      service.WorkItemServiceInterface
	attachments    service.AttachmentServiceInterface
	maxUploadBytes int64
}

// NewWorkItemHandler creates a new work item handler; maxUploadBytes caps a multipart body
func NewWorkItemHandler(workItems service.WorkItemServiceInterface, attachments service.AttachmentServiceInterface, maxUploadBytes int64) *WorkItemHandler {
	return &WorkItemHandler{
		workItems:      workItems,
		attachments:    attachments,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListWorkItems handles GET /work-items
// @Summary List work items
// @Description Users see their own items; admins and managers can filter by owner
// @Tags work-items
// @Produce json
// @Param workcycle_id query string false "Work cycle ID (UUID)"
// @Param owner_id query string false "Owner ID (UUID)"
// @Param status query string false "Status (pending, in_progress, done)"
// @Param include_inactive query bool false "Include archived items"
// @Success 200 {array} service.WorkItemResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /work-items [get]
func (h *WorkItemHandler) ListWorkItems(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	cycleID, err := queryID(c, "workcycle_id")
	if err != nil {
		respondError(c, err)
		return
	}
	ownerID, err := queryID(c, "owner_id")
	if err != nil {
		respondError(c, err)
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	items, err := h.workItems.List(actor, service.ListWorkItemsQuery{
		WorkCycleID:     cycleID,
		OwnerID:         ownerID,
		Status:          models.WorkItemStatus(c.Query("status")),
		IncludeInactive: includeInactive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetWorkItem handles GET /work-items/:id
// @Summary Get a work item
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Success 200 {object} service.WorkItemResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Work item not found"
// @Security BearerAuth
// @Router /work-items/{id} [get]
func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	item, err := h.workItems.Get(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateStatus handles PATCH /work-items/:id/status
// @Summary Change the status of a work item
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param status body service.UpdateStatusRequest true "New status"
// @Success 200 {object} service.WorkItemResponse
// @Failure 400 {object} ErrorResponse "Invalid transition"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/status [patch]
func (h *WorkItemHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.workItems.UpdateStatus(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateContext handles PATCH /work-items/:id/context
// @Summary Annotate a work item
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param context body service.UpdateContextRequest true "Label and message"
// @Success 200 {object} service.WorkItemResponse
// @Failure 400 {object} ErrorResponse "Item already completed"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/context [patch]
func (h *WorkItemHandler) UpdateContext(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	var req service.UpdateContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.workItems.UpdateContext(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Submit handles POST /work-items/:id/submit
// @Summary Submit a work item
// @Description Uploads the attached files, then marks the item done. At least one attachment must exist.
// @Tags work-items
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param attachment_type formData string false "Attachment type (matrix_a, matrix_b, mov)"
// @Param message formData string false "Submission note"
// @Param files formData file false "Files"
// @Success 200 {object} service.WorkItemResponse
// @Failure 400 {object} ErrorResponse "No attachments or already submitted"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/submit [post]
func (h *WorkItemHandler) Submit(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	form, ok := h.multipartForm(c)
	if !ok {
		return
	}

	item, err := h.workItems.Submit(c.Request.Context(), actor, id, &service.SubmitRequest{
		AttachmentType: models.AttachmentType(formValue(form, "attachment_type")),
		Message:        formValue(form, "message"),
		Files:          uploadedFiles(form),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Review handles POST /work-items/:id/review
// @Summary Record a review decision
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param review body service.ReviewRequest true "Decision (pending, approved, revision)"
// @Success 200 {object} service.WorkItemResponse
// @Failure 400 {object} ErrorResponse "Item not submitted or invalid decision"
// @Security BearerAuth
// @Router /work-items/{id}/review [post]
func (h *WorkItemHandler) Review(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.workItems.SetReviewDecision(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListMessages handles GET /work-items/:id/messages
// @Summary Chat thread of a work item
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Success 200 {array} service.MessageResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/messages [get]
func (h *WorkItemHandler) ListMessages(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	messages, err := h.workItems.ListMessages(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// PostMessage handles POST /work-items/:id/messages
// @Summary Post a chat message
// @Tags work-items
// @Accept json
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param message body service.PostMessageRequest true "Message"
// @Success 201 {object} service.MessageResponse
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/messages [post]
func (h *WorkItemHandler) PostMessage(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	var req service.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.workItems.PostMessage(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListAttachments handles GET /work-items/:id/attachments
// @Summary Attachments of a work item
// @Tags work-items
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param attachment_type query string false "Attachment type (matrix_a, matrix_b, mov)"
// @Success 200 {array} service.AttachmentResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/attachments [get]
func (h *WorkItemHandler) ListAttachments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	attachments, err := h.attachments.ListByWorkItem(actor, id, models.AttachmentType(c.Query("attachment_type")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachments)
}

// UploadAttachments handles POST /work-items/:id/attachments
// @Summary Upload attachments
// @Description Files are filed under the item's folder chain; a file that fails to store is skipped
// @Tags work-items
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Work item ID (UUID)"
// @Param attachment_type formData string true "Attachment type (matrix_a, matrix_b, mov)"
// @Param files formData file true "Files"
// @Success 201 {array} service.AttachmentResponse
// @Failure 400 {object} ErrorResponse "No files or invalid type"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /work-items/{id}/attachments [post]
func (h *WorkItemHandler) UploadAttachments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work item", respondError)
	if !ok {
		return
	}

	form, ok := h.multipartForm(c)
	if !ok {
		return
	}

	stored, err := h.attachments.Upload(c.Request.Context(), actor, id,
		models.AttachmentType(formValue(form, "attachment_type")), uploadedFiles(form))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stored)
}

// multipartForm parses a size-capped multipart body. A request without one yields an empty form.
func (h *WorkItemHandler) multipartForm(c *gin.Context) (*multipart.Form, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	form, err := c.MultipartForm()
	if err == nil {
		return form, true
	}
	if errors.Is(err, http.ErrNotMultipart) {
		return &multipart.Form{}, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(c, apperrors.NewValidationError("files", "Upload exceeds the maximum allowed size."))
		return nil, false
	}
	respondError(c, apperrors.NewValidationError("files", "Malformed multipart body."))
	return nil, false
}
