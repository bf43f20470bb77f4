package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"a1art-gateway/internal/models"
	"a1art-gateway/internal/templates"
)

type TemplatesHandler struct {
	templates *templates.Store
}

func NewTemplatesHandler(store *templates.Store) *TemplatesHandler {
	return &TemplatesHandler{templates: store}
}

// List godoc
// @Summary     List available templates
// @Description Returns every loaded template with its provider parameter triple, sorted by template id.
// @Tags        templates
// @Produce     json
// @Success     200 {object} models.TemplateListResponse
// @Router      /templates [get]
func (h *TemplatesHandler) List(c *gin.Context) {
	all := h.templates.List()

	list := make([]models.TemplateInfo, 0, len(all))
	for _, t := range all {
		info := models.TemplateInfo{
			TemplateID: t.TemplateID,
			Name:       t.Name,
			AppID:      t.AppID,
			VersionID:  t.VersionID,
			CnetFormID: t.CnetFormID,
		}
		if t.TemplateImage != "" {
			img := t.TemplateImage
			info.TemplateImage = &img
		}
		list = append(list, info)
	}

	c.JSON(http.StatusOK, models.TemplateListResponse{
		Status:    "success",
		Count:     len(list),
		Templates: list,
	})
}
