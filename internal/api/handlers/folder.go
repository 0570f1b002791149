package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FileManagerHandler handles the document folder tree and filed attachments
type FileManagerHandler struct {
	folders     service.FolderServiceInterface
	attachments service.AttachmentServiceInterface
}

// NewFileManagerHandler creates a new file manager handler
func NewFileManagerHandler(folders service.FolderServiceInterface, attachments service.AttachmentServiceInterface) *FileManagerHandler {
	return &FileManagerHandler{folders: folders, attachments: attachments}
}

// GetRoot handles GET /folders/root
// @Summary Root folder
// @Description Returns the ROOT folder, creating it on first use
// @Tags files
// @Produce json
// @Success 200 {object} StatusResponse{data=service.FolderContents}
// @Security BearerAuth
// @Router /folders/root [get]
func (h *FileManagerHandler) GetRoot(c *gin.Context) {
	root, err := h.folders.Root()
	if err != nil {
		respondStatusError(c, err)
		return
	}

	contents, err := h.folders.Contents(root.ID)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Data: contents})
}

// GetFolder handles GET /folders/:id
// @Summary Folder contents
// @Description The folder, its breadcrumb, sub-folders and files
// @Tags files
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} StatusResponse{data=service.FolderContents}
// @Failure 404 {object} StatusResponse "Folder not found"
// @Security BearerAuth
// @Router /folders/{id} [get]
func (h *FileManagerHandler) GetFolder(c *gin.Context) {
	id, ok := pathID(c, "id", "folder", respondStatusError)
	if !ok {
		return
	}

	contents, err := h.folders.Contents(id)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Data: contents})
}

// GetPath handles GET /folders/:id/path
// @Summary Folder path
// @Description Folders from ROOT down to the given folder
// @Tags files
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} StatusResponse{data=[]service.FolderResponse}
// @Failure 404 {object} StatusResponse "Folder not found"
// @Security BearerAuth
// @Router /folders/{id}/path [get]
func (h *FileManagerHandler) GetPath(c *gin.Context) {
	id, ok := pathID(c, "id", "folder", respondStatusError)
	if !ok {
		return
	}

	path, err := h.folders.GetPath(id)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Data: path})
}

// CreateFolder handles POST /folders
// @Summary Create a manual folder
// @Tags files
// @Accept json
// @Produce json
// @Param folder body service.CreateFolderRequest true "Folder"
// @Success 201 {object} StatusResponse{data=service.FolderResponse}
// @Failure 400 {object} StatusResponse "Not allowed under this parent"
// @Failure 409 {object} StatusResponse "Sibling with the same name exists"
// @Security BearerAuth
// @Router /folders [post]
func (h *FileManagerHandler) CreateFolder(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	folder, err := h.folders.Create(actor, &req)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusCreated, StatusResponse{Status: "success", Message: "Folder created.", Data: folder})
}

// RenameFolder handles PATCH /folders/:id
// @Summary Rename a folder
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Param folder body service.RenameFolderRequest true "New name"
// @Success 200 {object} StatusResponse{data=service.FolderResponse}
// @Failure 400 {object} StatusResponse "System folders cannot be renamed"
// @Security BearerAuth
// @Router /folders/{id} [patch]
func (h *FileManagerHandler) RenameFolder(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "folder", respondStatusError)
	if !ok {
		return
	}

	var req service.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	folder, err := h.folders.Rename(actor, id, &req)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Folder renamed.", Data: folder})
}

// MoveFolder handles POST /folders/:id/move
// @Summary Move a folder
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Param target body service.MoveFolderRequest true "New parent"
// @Success 200 {object} StatusResponse{data=service.FolderResponse}
// @Failure 400 {object} StatusResponse "Cycle or system folder"
// @Security BearerAuth
// @Router /folders/{id}/move [post]
func (h *FileManagerHandler) MoveFolder(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "folder", respondStatusError)
	if !ok {
		return
	}

	var req service.MoveFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	folder, err := h.folders.Move(actor, id, &req)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Folder moved.", Data: folder})
}

// DeleteFolder handles DELETE /folders/:id
// @Summary Delete an empty manual folder
// @Tags files
// @Produce json
// @Param id path string true "Folder ID (UUID)"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse "Folder not empty or system folder"
// @Security BearerAuth
// @Router /folders/{id} [delete]
func (h *FileManagerHandler) DeleteFolder(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "folder", respondStatusError)
	if !ok {
		return
	}

	if err := h.folders.Delete(actor, id); err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "Folder deleted."})
}

// MoveAttachments handles POST /attachments/move
// @Summary Move attachments
// @Description Moves every listed file or none; files cannot land in Category folders or another cycle
// @Tags files
// @Accept json
// @Produce json
// @Param move body service.MoveAttachmentsRequest true "Files and target folder"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} StatusResponse "Invalid placement"
// @Security BearerAuth
// @Router /attachments/move [post]
func (h *FileManagerHandler) MoveAttachments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.MoveAttachmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	if err := h.attachments.Move(actor, &req); err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: fmt.Sprintf("Moved %d file(s).", len(req.AttachmentIDs))})
}

// RenameAttachment handles PATCH /attachments/:id
// @Summary Rename an attachment
// @Tags files
// @Accept json
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Param attachment body service.RenameAttachmentRequest true "New name"
// @Success 200 {object} StatusResponse{data=service.AttachmentResponse}
// @Failure 404 {object} StatusResponse "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [patch]
func (h *FileManagerHandler) RenameAttachment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment", respondStatusError)
	if !ok {
		return
	}

	var req service.RenameAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusResponse{Status: "error", Message: err.Error()})
		return
	}

	attachment, err := h.attachments.Rename(actor, id, &req)
	if err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "File renamed.", Data: attachment})
}

// DeleteAttachment handles DELETE /attachments/:id
// @Summary Delete an attachment
// @Tags files
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} StatusResponse "Attachment not found"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *FileManagerHandler) DeleteAttachment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment", respondStatusError)
	if !ok {
		return
	}

	if err := h.attachments.Delete(c.Request.Context(), actor, id); err != nil {
		respondStatusError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "success", Message: "File deleted."})
}

// DownloadAttachment handles GET /attachments/:id/download
// @Summary Download an attachment
// @Description Streams the stored file with its original name
// @Tags files
// @Produce octet-stream
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Attachment or file not found"
// @Security BearerAuth
// @Router /attachments/{id}/download [get]
func (h *FileManagerHandler) DownloadAttachment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment", respondError)
	if !ok {
		return
	}

	download, err := h.attachments.Download(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer download.Body.Close()

	contentType := download.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Name))
	c.Header("Content-Type", contentType)
	if download.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(download.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, download.Body); err != nil {
		logger.WithContext(c).WithError(err).WithField("attachment_id", id).Warn("Download interrupted")
	}
}
