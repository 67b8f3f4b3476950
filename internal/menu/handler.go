package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

//
// --------------------------------------------------
// GET /menu
// --------------------------------------------------
//

func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu"})
		return
	}

	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
