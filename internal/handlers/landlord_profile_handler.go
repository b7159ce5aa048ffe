package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/house-hunting/internal/usecase/account"
)

type LandlordProfileHandler struct {
	create *ucAccount.CreateLandlordProfile
	get    *ucAccount.GetLandlordProfile
}

func NewLandlordProfileHandler(
	create *ucAccount.CreateLandlordProfile,
	get *ucAccount.GetLandlordProfile,
) *LandlordProfileHandler {
	return &LandlordProfileHandler{create: create, get: get}
}

func (h *LandlordProfileHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req ucAccount.LandlordProfileInput
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.create.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, profile, domain.MsgProfileCreated)
}

func (h *LandlordProfileHandler) Get(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	profile, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, profile)
}
