package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/middleware"
)

// CourseController handles catalog course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// UpsertCourse registers or refreshes a catalog course
// @Summary Upsert course
// @Description Creates the course if unknown, otherwise updates its title and lecture count
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.UpsertCourseRequest true "Course data"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course upserted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Security BearerAuth
// @Router /admin/courses [put]
func (c *CourseController) UpsertCourse(ctx *gin.Context) {
	var req dto.UpsertCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data").WithDetails(err.Error())))
		return
	}

	course := &models.Course{
		ID:            req.ID,
		Title:         req.Title,
		TotalLectures: req.TotalLectures,
	}

	if err := c.courseService.UpsertCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course saved successfully"))
}

// GetCourse returns a catalog course by ID
// @Summary Get course
// @Description Returns a single catalog course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course found"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID").WithField("id")))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course retrieved successfully"))
}
