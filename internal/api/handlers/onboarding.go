package handlers

import (
	"context"
	"net/http"

	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OnboardingHandler drives the org-placement wizard of a user
type OnboardingHandler struct {
	onboarding service.OnboardingServiceInterface
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(onboarding service.OnboardingServiceInterface) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

// GetState handles GET /users/:id/onboarding
// @Summary Onboarding wizard state
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.OnboardingState}
// @Failure 404 {object} SuccessResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/onboarding [get]
func (h *OnboardingHandler) GetState(c *gin.Context) {
	userID, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	state, err := h.onboarding.State(c.Request.Context(), userID)
	if err != nil {
		respondSuccessError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: state})
}

// SelectDivision handles POST /users/:id/onboarding/division
// @Summary Choose the division
// @Description Choosing a new division resets the later steps
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param selection body service.SelectTeamRequest true "Division"
// @Success 200 {object} SuccessResponse{data=service.OnboardingState}
// @Failure 400 {object} SuccessResponse "Not a division"
// @Security BearerAuth
// @Router /users/{id}/onboarding/division [post]
func (h *OnboardingHandler) SelectDivision(c *gin.Context) {
	h.selectRequired(c, h.onboarding.SelectDivision)
}

// SelectSection handles POST /users/:id/onboarding/section
// @Summary Choose the section
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param selection body service.SelectTeamRequest true "Section"
// @Success 200 {object} SuccessResponse{data=service.OnboardingState}
// @Failure 400 {object} SuccessResponse "Section is not under the chosen division"
// @Security BearerAuth
// @Router /users/{id}/onboarding/section [post]
func (h *OnboardingHandler) SelectSection(c *gin.Context) {
	h.selectRequired(c, h.onboarding.SelectSection)
}

// SelectService handles POST /users/:id/onboarding/service
// @Summary Choose the service (optional)
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param selection body service.SelectTeamRequest false "Service; omit team_id to skip"
// @Success 200 {object} SuccessResponse{data=service.OnboardingState}
// @Failure 400 {object} SuccessResponse "Service is not under the chosen section"
// @Security BearerAuth
// @Router /users/{id}/onboarding/service [post]
func (h *OnboardingHandler) SelectService(c *gin.Context) {
	h.selectOptional(c, h.onboarding.SelectService)
}

// SelectUnit handles POST /users/:id/onboarding/unit
// @Summary Choose the unit (optional)
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param selection body service.SelectTeamRequest false "Unit; omit team_id to skip"
// @Success 200 {object} SuccessResponse{data=service.OnboardingState}
// @Failure 400 {object} SuccessResponse "Unit is not under the chosen section or service"
// @Security BearerAuth
// @Router /users/{id}/onboarding/unit [post]
func (h *OnboardingHandler) SelectUnit(c *gin.Context) {
	h.selectOptional(c, h.onboarding.SelectUnit)
}

// Complete handles POST /users/:id/onboarding/complete
// @Summary Finish onboarding
// @Description Saves the org assignment and the team membership, then clears the wizard
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse{data=models.OrgAssignment}
// @Failure 400 {object} SuccessResponse "Division and section are required"
// @Security BearerAuth
// @Router /users/{id}/onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	assignment, err := h.onboarding.Complete(c.Request.Context(), userID)
	if err != nil {
		respondSuccessError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: assignment})
}

// Restart handles DELETE /users/:id/onboarding
// @Summary Restart onboarding
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Security BearerAuth
// @Router /users/{id}/onboarding [delete]
func (h *OnboardingHandler) Restart(c *gin.Context) {
	userID, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	if err := h.onboarding.Restart(c.Request.Context(), userID); err != nil {
		respondSuccessError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

type requiredStep func(ctx context.Context, userID, teamID uuid.UUID) (*service.OnboardingState, error)
type optionalStep func(ctx context.Context, userID uuid.UUID, teamID *uuid.UUID) (*service.OnboardingState, error)

func (h *OnboardingHandler) selectRequired(c *gin.Context, step requiredStep) {
	userID, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	var req service.SelectTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TeamID == nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: "team_id is required"})
		return
	}

	state, err := step(c.Request.Context(), userID, *req.TeamID)
	if err != nil {
		respondSuccessError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: state})
}

func (h *OnboardingHandler) selectOptional(c *gin.Context, step optionalStep) {
	userID, ok := pathID(c, "id", "user", respondSuccessError)
	if !ok {
		return
	}

	var req service.SelectTeamRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
			return
		}
	}

	state, err := step(c.Request.Context(), userID, req.TeamID)
	if err != nil {
		respondSuccessError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: state})
}
