package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// OrganizationHandler handles organization, team and membership requests.
type OrganizationHandler struct {
	orgService  portssvc.OrganizationSvcFacade
	userService portssvc.UserReaderSvc
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(os portssvc.OrganizationSvcFacade, us portssvc.UserReaderSvc) *OrganizationHandler {
	return &OrganizationHandler{orgService: os, userService: us}
}

// registerOrganizationRoutes sets up the routes for organization management.
func registerOrganizationRoutes(rg *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade, userService portssvc.UserReaderSvc) {
	h := NewOrganizationHandler(orgService, userService)

	// Joining is top level because the code alone identifies the target.
	rg.POST("/join", h.JoinByCode)

	orgs := rg.Group("/organizations")
	{
		orgs.POST("", h.CreateOrganization)
		orgs.GET("/:org_id", h.GetOrganization)
		orgs.PUT("/:org_id", h.UpdateOrganization)
		orgs.GET("/:org_id/users", h.ListOrganizationUsers)
		orgs.POST("/:org_id/teams", h.CreateTeam)
		orgs.GET("/:org_id/teams", h.ListTeams)
	}
}

// CreateOrganization godoc
// @Summary Create an organization
// @Description Creates an organization owned by the caller, with a generated join code.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// GetOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	if _, ok := callerOrAbort(c); !ok {
		return
	}
	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), c.Param("org_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// UpdateOrganization godoc
// @Summary Update an organization
// @Description Updates name and description. Owner only.
// @Tags organizations
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// ListOrganizationUsers godoc
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/users [get]
func (h *OrganizationHandler) ListOrganizationUsers(c *gin.Context) {
	if _, ok := callerOrAbort(c); !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	users, err := h.userService.ListOrganizationUsers(c.Request.Context(), c.Param("org_id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// CreateTeam godoc
// @Summary Create a team
// @Description Creates a team under the organization with a generated join code. Owner only.
// @Tags organizations
// @Accept json
// @Produce json
// @Param org_id path string true "Organization ID"
// @Param team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/teams [post]
func (h *OrganizationHandler) CreateTeam(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	team, err := h.orgService.CreateTeam(c.Request.Context(), c.Param("org_id"), req, *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTeamResponse(team))
}

// ListTeams godoc
// @Summary List teams
// @Tags organizations
// @Produce json
// @Param org_id path string true "Organization ID"
// @Success 200 {array} dto.TeamResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{org_id}/teams [get]
func (h *OrganizationHandler) ListTeams(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	teams, err := h.orgService.ListTeams(c.Request.Context(), c.Param("org_id"), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTeamResponses(teams))
}

// JoinByCode godoc
// @Summary Join by code
// @Description Attaches the caller to the team or organization matching the six character code. Team codes win over organization codes.
// @Tags organizations
// @Accept json
// @Produce json
// @Param join body dto.JoinByCodeRequest true "Join code"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /join [post]
func (h *OrganizationHandler) JoinByCode(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var req dto.JoinByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.orgService.JoinByCode(c.Request.Context(), *caller, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
