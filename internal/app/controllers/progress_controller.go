package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/middleware"
)

// ProgressController handles learner progress endpoints
type ProgressController struct {
	progressService services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService services.ProgressService) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// RecordLectureEvent ingests a playback event for the calling user
// @Summary Record lecture event
// @Description Applies a watch event to the user's lecture and course progress. Watched seconds only move forward unless reset is set.
// @Tags progress
// @Accept json
// @Produce json
// @Param request body dto.RecordLectureEventRequest true "Playback event"
// @Success 200 {object} dto.APIResponse{data=models.UserCourseProgress} "Progress updated"
// @Failure 409 {object} dto.ErrorResponse "Watched seconds lower than stored value"
// @Failure 422 {object} dto.ErrorResponse "Course unknown or has no lectures"
// @Security BearerAuth
// @Router /progress/events [post]
func (c *ProgressController) RecordLectureEvent(ctx *gin.Context) {
	var req dto.RecordLectureEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid lecture event data").WithDetails(err.Error())))
		return
	}

	progress, err := c.progressService.RecordLectureEvent(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(progress, "Progress updated successfully"))
}

// ListCourseProgress returns progress summaries for all of the user's courses
// @Summary List course progress
// @Description Returns a progress summary for every course the user has touched
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseProgressSummary} "Summaries listed"
// @Security BearerAuth
// @Router /progress/courses [get]
func (c *ProgressController) ListCourseProgress(ctx *gin.Context) {
	summaries, err := c.progressService.GetCourseSummaries(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summaries, "Course progress retrieved successfully"))
}

// GetCourseProgress returns the progress summary for one course
// @Summary Get course progress
// @Description Returns the user's progress summary for a single course
// @Tags progress
// @Produce json
// @Param courseId path string true "Course ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseProgressSummary} "Summary found"
// @Failure 404 {object} dto.ErrorResponse "No progress for this course"
// @Security BearerAuth
// @Router /progress/courses/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	courseID, err := uuid.Parse(ctx.Param("courseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithField("courseId")))
		return
	}

	summary, err := c.progressService.GetCourseSummary(ctx, middleware.UserID(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary, "Course progress retrieved successfully"))
}
