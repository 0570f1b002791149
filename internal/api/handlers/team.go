package handlers

import (
	"net/http"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a division, section, service or unit under a parent allowed by the hierarchy
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} SuccessResponse{data=service.TeamResponse} "Successfully created team"
// @Failure 400 {object} SuccessResponse "Invalid request body or hierarchy violation"
// @Failure 404 {object} SuccessResponse "Parent team not found"
// @Failure 409 {object} SuccessResponse "Sibling with the same name exists"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: team})
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} SuccessResponse{data=service.TeamResponse} "Successfully retrieved team"
// @Failure 400 {object} SuccessResponse "Invalid team ID"
// @Failure 404 {object} SuccessResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: team})
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams, optionally filtered by type and parent
// @Tags teams
// @Produce json
// @Param type query string false "Team type (division, section, service, unit)"
// @Param parent_id query string false "Parent team ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]service.TeamResponse} "Successfully retrieved teams"
// @Failure 400 {object} SuccessResponse "Invalid parameters"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	parentID, err := queryID(c, "parent_id")
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	teams, err := h.teamService.List(models.TeamType(c.Query("type")), parentID)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: teams})
}

// GetTree handles GET /teams/tree
// @Summary Org tree
// @Description The whole division, section, service and unit hierarchy
// @Tags teams
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]service.TeamNode}
// @Security BearerAuth
// @Router /teams/tree [get]
func (h *TeamHandler) GetTree(c *gin.Context) {
	tree, err := h.teamService.Tree()
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: tree})
}

// GetChain handles GET /teams/:id/chain
// @Summary Ancestor chain
// @Description The team and its ancestors, top-most first
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]service.TeamResponse}
// @Failure 404 {object} SuccessResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/chain [get]
func (h *TeamHandler) GetChain(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	chain, err := h.teamService.Chain(id)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: chain})
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} SuccessResponse{data=service.TeamResponse}
// @Failure 400 {object} SuccessResponse "Invalid request"
// @Failure 404 {object} SuccessResponse "Team not found"
// @Failure 409 {object} SuccessResponse "Sibling with the same name exists"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: team})
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Teams with child teams cannot be deleted
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} SuccessResponse "Team has child teams"
// @Failure 404 {object} SuccessResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ListMembers handles GET /teams/:id/members
// @Summary Team members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} SuccessResponse{data=[]service.MemberResponse}
// @Failure 404 {object} SuccessResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	members, err := h.teamService.ListMembers(id)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: members})
}

// AddMember handles POST /teams/:id/members
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddMemberRequest true "Member"
// @Success 201 {object} SuccessResponse{data=service.MemberResponse}
// @Failure 404 {object} SuccessResponse "Team or user not found"
// @Failure 409 {object} SuccessResponse "Already a member"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, SuccessResponse{Success: false, Error: err.Error()})
		return
	}

	member, err := h.teamService.AddMember(id, &req)
	if err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: member})
}

// RemoveMember handles DELETE /teams/:id/members/:user_id
// @Summary Remove a team member
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} SuccessResponse "Membership not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{user_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "id", "team", respondSuccessError)
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id", "user", respondSuccessError)
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(id, userID); err != nil {
		respondSuccessError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
