package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/middleware"
	"github.com/kaan/edusphere/internal/pkg/helpers"
)

// UniversityController handles university CRUD endpoints
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// CreateUniversity creates a new university
// @Summary Create university
// @Description Creates a new university record
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.CreateUniversityRequest true "University data"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "University already exists"
// @Security BearerAuth
// @Router /admin/universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data").WithDetails(err.Error())))
		return
	}

	university := &models.University{
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		ChairmanName:     req.ChairmanName,
		ChairmanPhotoURL: req.ChairmanPhotoURL,
		ContactNumbers:   req.ContactNumbers,
	}

	id, err := c.universityService.CreateUniversity(ctx, university)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	university.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(university, "University created successfully"))
}

// GetUniversity returns a single university by ID
// @Summary Get university
// @Description Returns a university by its ID
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=models.University} "University found"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID").WithField("id")))
		return
	}

	university, err := c.universityService.GetUniversityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university, "University retrieved successfully"))
}

// ListUniversities returns a paginated list of universities
// @Summary List universities
// @Description Returns universities with pagination, most recent first
// @Tags universities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.UniversityListResponse} "Universities listed"
// @Router /universities [get]
func (c *UniversityController) ListUniversities(ctx *gin.Context) {
	page, size := helpers.ParsePageParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	universities, total, err := c.universityService.GetAllUniversities(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UniversityListResponse{
		Universities: universities,
		Pagination:   helpers.NewPaginationInfo(total, page, size),
	}, "Universities retrieved successfully"))
}

// UpdateUniversity updates an existing university
// @Summary Update university
// @Description Updates a university's details
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Param request body dto.UpdateUniversityRequest true "University data"
// @Success 200 {object} dto.APIResponse{data=models.University} "University updated"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Security BearerAuth
// @Router /admin/universities/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID").WithField("id")))
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data").WithDetails(err.Error())))
		return
	}

	university := &models.University{
		ID:               id,
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		ChairmanName:     req.ChairmanName,
		ChairmanPhotoURL: req.ChairmanPhotoURL,
		ContactNumbers:   req.ContactNumbers,
	}

	if err := c.universityService.UpdateUniversity(ctx, university); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university, "University updated successfully"))
}

// DeleteUniversity soft-deletes a university
// @Summary Delete university
// @Description Soft-deletes a university. Its branches and colleges remain readable.
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse "University deleted"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Security BearerAuth
// @Router /admin/universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID").WithField("id")))
		return
	}

	if err := c.universityService.DeleteUniversity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "University deleted successfully"))
}
