package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/app/services"
	"github.com/mjoly/scolaris/internal/middleware"
)

// GradeController handles grade book endpoints
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new grade controller
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// List returns all grades with student and course joined
func (c *GradeController) List(ctx *gin.Context) {
	grades, err := c.gradeService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades))
}

// ListByStudent returns one student's grades ordered by date.
// Student-role callers only get their own.
func (c *GradeController) ListByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	grades, err := c.gradeService.ListByStudent(ctx.Request.Context(), middleware.CurrentAccount(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades))
}

// Create records a grade after checking both references exist
func (c *GradeController) Create(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(grade))
}

// Update applies a partial update to a grade
func (c *GradeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// Delete removes a grade
func (c *GradeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.gradeService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": id}))
}
