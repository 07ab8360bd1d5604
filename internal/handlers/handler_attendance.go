package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SellSage/biz_management_app/internal/core/ports/services"
	"github.com/SellSage/biz_management_app/internal/dto"
)

// AttendanceHandler handles attendance punch requests.
type AttendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(as portssvc.AttendanceSvcFacade) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes sets up the routes for attendance tracking.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := NewAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/punch-in", h.PunchIn)
		attendance.POST("/punch-out", h.PunchOut)
		attendance.GET("", h.ListAttendance)
	}
}

// PunchIn godoc
// @Summary Punch in
// @Description Opens an attendance record for the caller. A second punch-in while one is open returns 409.
// @Tags attendance
// @Produce json
// @Success 201 {object} dto.AttendanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/punch-in [post]
func (h *AttendanceHandler) PunchIn(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	record, err := h.attendanceService.PunchIn(c.Request.Context(), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// PunchOut godoc
// @Summary Punch out
// @Description Closes the caller's open attendance record. Without one it returns 404.
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.AttendanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/punch-out [post]
func (h *AttendanceHandler) PunchOut(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	record, err := h.attendanceService.PunchOut(c.Request.Context(), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// ListAttendance godoc
// @Summary List attendance records
// @Description Lists attendance records for the caller, or for another organization member when the caller is the owner.
// @Tags attendance
// @Produce json
// @Param user_id query string false "Target user, defaults to the caller"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.AttendanceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	targetUserID := c.DefaultQuery("user_id", caller.UserID)

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), *caller, targetUserID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponses(records))
}
