package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateHandler serves the built-in program templates.
type TemplateHandler struct {
	programService service.ProgramService
}

func NewTemplateHandler(programService service.ProgramService) *TemplateHandler {
	return &TemplateHandler{programService: programService}
}

// ListTemplates godoc
// @Summary List built-in program templates
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProgramResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.programService.ListTemplates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(templates))
}

// PublishTemplate godoc
// @Summary Publish a built-in template (admin)
// @Tags Templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param template body ProgramRequest true "Template fields"
// @Success 201 {object} ProgramResponse
// @Failure 403 {object} gin.H "Not an admin"
// @Failure 409 {object} gin.H "Template name taken"
// @Router /templates [post]
func (h *TemplateHandler) PublishTemplate(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	params, err := req.toParams(primitive.NilObjectID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	template, err := h.programService.PublishTemplate(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProgramToResponse(template))
}

// CloneTemplate godoc
// @Summary Copy a template into the caller's programs
// @Tags Templates
// @Produce json
// @Security BearerAuth
// @Param templateId path string true "Template ID"
// @Success 201 {object} ProgramResponse
// @Failure 404 {object} gin.H "Template not found"
// @Router /templates/{templateId}/clone [post]
func (h *TemplateHandler) CloneTemplate(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	templateID, ok := pathObjectID(c, "templateId")
	if !ok {
		return
	}

	program, err := h.programService.CloneTemplate(c.Request.Context(), ownerID, templateID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}
