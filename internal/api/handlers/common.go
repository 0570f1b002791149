package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"workflow-portal-backend/internal/auth"
	apperrors "workflow-portal-backend/internal/errors"
	"workflow-portal-backend/internal/logger"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// StatusResponse is the envelope of the file-manager endpoints
type StatusResponse struct {
	Status  string      `json:"status" example:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse is the envelope of the user and team endpoints
type SuccessResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// statusFor maps an application error to an HTTP status and user-facing message
func statusFor(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest, apperrors.Message(err)
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict, err.Error()
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden, err.Error()
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func logIfInternal(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		_ = c.Error(err)
	}
}

// respondError writes {"error": msg}
func respondError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	logIfInternal(c, status, err)
	c.JSON(status, ErrorResponse{Error: msg})
}

// respondStatusError writes {"status":"error","message":msg}
func respondStatusError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	logIfInternal(c, status, err)
	c.JSON(status, StatusResponse{Status: "error", Message: msg})
}

// respondSuccessError writes {"success":false,"error":msg}
func respondSuccessError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	logIfInternal(c, status, err)
	c.JSON(status, SuccessResponse{Success: false, Error: msg})
}

// actorFrom builds the acting user from the auth context
func actorFrom(c *gin.Context) (service.Actor, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return service.Actor{}, false
	}
	role, _ := auth.GetLoginRole(c)
	return service.Actor{UserID: userID, Role: role}, true
}

// responder writes an error in one of the response envelopes
type responder func(c *gin.Context, err error)

// pathID parses a UUID path parameter, answering 400 through respond when it is malformed
func pathID(c *gin.Context, name, label string, respond responder) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respond(c, apperrors.NewValidationError(name, "invalid "+label+" ID"))
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional UUID query parameter
func queryID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError(name, "invalid "+name)
	}
	return &id, nil
}

// uploadedFiles converts the multipart "files" field into service uploads
func uploadedFiles(form *multipart.Form) []service.UploadedFile {
	if form == nil {
		return nil
	}
	headers := form.File["files"]
	files := make([]service.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, service.UploadedFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}

// formValue returns the first value of a multipart field
func formValue(form *multipart.Form, key string) string {
	if form == nil || len(form.Value[key]) == 0 {
		return ""
	}
	return form.Value[key][0]
}
