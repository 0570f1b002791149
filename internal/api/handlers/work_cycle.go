package handlers

import (
	"net/http"
	"strconv"

	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkCycleHandler handles HTTP requests for work cycles
type WorkCycleHandler struct {
	workCycles service.WorkCycleServiceInterface
}

// NewWorkCycleHandler creates a new work cycle handler
func NewWorkCycleHandler(workCycles service.WorkCycleServiceInterface) *WorkCycleHandler {
	return &WorkCycleHandler{workCycles: workCycles}
}

// CreateWorkCycle handles POST /workcycles
// @Summary Create a work cycle
// @Description Creates the cycle and one work item per assigned user or team member
// @Tags workcycles
// @Accept json
// @Produce json
// @Param workcycle body service.CreateWorkCycleRequest true "Work cycle"
// @Success 201 {object} service.WorkCycleResponse
// @Failure 400 {object} ErrorResponse "No assignees or invalid body"
// @Failure 404 {object} ErrorResponse "User or team not found"
// @Security BearerAuth
// @Router /workcycles [post]
func (h *WorkCycleHandler) CreateWorkCycle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateWorkCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cycle, err := h.workCycles.CreateWithAssignments(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cycle)
}

// ListWorkCycles handles GET /workcycles
// @Summary List work cycles
// @Tags workcycles
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Success 200 {array} service.WorkCycleResponse
// @Failure 400 {object} ErrorResponse "Invalid active flag"
// @Security BearerAuth
// @Router /workcycles [get]
func (h *WorkCycleHandler) ListWorkCycles(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid active flag"})
			return
		}
		active = &parsed
	}

	cycles, err := h.workCycles.List(active)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cycles)
}

// GetWorkCycle handles GET /workcycles/:id
// @Summary Get a work cycle
// @Tags workcycles
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Success 200 {object} service.WorkCycleResponse
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id} [get]
func (h *WorkCycleHandler) GetWorkCycle(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	cycle, err := h.workCycles.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cycle)
}

// ListItems handles GET /workcycles/:id/items
// @Summary Work items of a cycle
// @Tags workcycles
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Param include_inactive query bool false "Include archived items"
// @Success 200 {array} service.WorkItemResponse
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id}/items [get]
func (h *WorkCycleHandler) ListItems(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	items, err := h.workCycles.ListItems(id, includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateWorkCycle handles PUT /workcycles/:id
// @Summary Update a work cycle
// @Tags workcycles
// @Accept json
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Param workcycle body service.UpdateWorkCycleRequest true "Work cycle"
// @Success 200 {object} service.WorkCycleResponse
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id} [put]
func (h *WorkCycleHandler) UpdateWorkCycle(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	var req service.UpdateWorkCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cycle, err := h.workCycles.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cycle)
}

// DeleteWorkCycle handles DELETE /workcycles/:id
// @Summary Delete a work cycle
// @Description Cycles with filed documents cannot be deleted
// @Tags workcycles
// @Param id path string true "Work cycle ID (UUID)"
// @Success 204
// @Failure 400 {object} ErrorResponse "Cycle has filed documents"
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id} [delete]
func (h *WorkCycleHandler) DeleteWorkCycle(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	if err := h.workCycles.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reassign handles POST /workcycles/:id/reassign
// @Summary Reassign a work cycle
// @Description Creates items for new owners, archives removed owners and restores returning ones
// @Tags workcycles
// @Accept json
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Param assignees body service.ReassignRequest true "New assignees"
// @Success 200 {object} service.ReassignResult
// @Failure 400 {object} ErrorResponse "No assignees"
// @Failure 404 {object} ErrorResponse "Work cycle, user or team not found"
// @Security BearerAuth
// @Router /workcycles/{id}/reassign [post]
func (h *WorkCycleHandler) Reassign(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	var req service.ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.workCycles.Reassign(c.Request.Context(), actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Archive handles POST /workcycles/:id/archive
// @Summary Archive a work cycle
// @Tags workcycles
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Success 200 {object} service.WorkCycleResponse
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id}/archive [post]
func (h *WorkCycleHandler) Archive(c *gin.Context) {
	h.setActive(c, false)
}

// Restore handles POST /workcycles/:id/restore
// @Summary Restore an archived work cycle
// @Tags workcycles
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Success 200 {object} service.WorkCycleResponse
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id}/restore [post]
func (h *WorkCycleHandler) Restore(c *gin.Context) {
	h.setActive(c, true)
}

func (h *WorkCycleHandler) setActive(c *gin.Context, active bool) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	cycle, err := h.workCycles.SetActive(id, active)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cycle)
}
