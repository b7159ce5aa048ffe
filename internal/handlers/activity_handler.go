package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/house-hunting/internal/audit"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/httpresp"
)

// ActivityHandler exposes the caller's own audit trail.
type ActivityHandler struct {
	list *audit.ListActivity
}

func NewActivityHandler(list *audit.ListActivity) *ActivityHandler {
	return &ActivityHandler{list: list}
}

func (h *ActivityHandler) List(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	action := strings.TrimSpace(c.Query("action"))

	res, err := h.list.Execute(c.Request.Context(), id.UserID, action, pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}
