package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/house"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/httpresp"
	ucHouse "github.com/BruksfildServices01/house-hunting/internal/usecase/house"
)

// ======================================================
// HANDLER
// ======================================================

type HouseHandler struct {
	list         *ucHouse.ListHouses
	get          *ucHouse.GetHouse
	getOwn       *ucHouse.GetOwnHouse
	create       *ucHouse.CreateHouse
	update       *ucHouse.UpdateHouse
	remove       *ucHouse.DeleteHouse
	updateStatus *ucHouse.UpdateHouseStatus
	byLandlord   *ucHouse.ListLandlordHouses
}

type HouseUseCases struct {
	List         *ucHouse.ListHouses
	Get          *ucHouse.GetHouse
	GetOwn       *ucHouse.GetOwnHouse
	Create       *ucHouse.CreateHouse
	Update       *ucHouse.UpdateHouse
	Delete       *ucHouse.DeleteHouse
	UpdateStatus *ucHouse.UpdateHouseStatus
	ByLandlord   *ucHouse.ListLandlordHouses
}

func NewHouseHandler(uc HouseUseCases) *HouseHandler {
	return &HouseHandler{
		list:         uc.List,
		get:          uc.Get,
		getOwn:       uc.GetOwn,
		create:       uc.Create,
		update:       uc.Update,
		remove:       uc.Delete,
		updateStatus: uc.UpdateStatus,
		byLandlord:   uc.ByLandlord,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type statusRequest struct {
	Status string `json:"status"`
}

func parseFilters(c *gin.Context) (domain.Filters, bool) {
	f := domain.Filters{
		City:   strings.TrimSpace(c.Query("city")),
		Estate: strings.TrimSpace(c.Query("estate")),
	}

	price := func(key string) (*float64, bool) {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return nil, true
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return &v, true
	}

	var ok bool
	if f.MinRent, ok = price("minPrice"); !ok {
		return f, false
	}
	if f.MaxRent, ok = price("maxPrice"); !ok {
		return f, false
	}
	return f, true
}

// ======================================================
// PUBLIC
// ======================================================

func (h *HouseHandler) List(c *gin.Context) {
	filters, ok := parseFilters(c)
	if !ok {
		httperr.BadRequest(c, domain.MsgInvalidPrice)
		return
	}

	res, err := h.list.Execute(c.Request.Context(), pageParams(c), filters)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *HouseHandler) Get(c *gin.Context) {
	house, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, house)
}

func (h *HouseHandler) ListByLandlord(c *gin.Context) {
	res, err := h.byLandlord.ByLandlord(c.Request.Context(), c.Param("landlordId"), pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// LANDLORD
// ======================================================

func (h *HouseHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req domain.CreateInput
	if !bindJSON(c, &req) {
		return
	}

	house, err := h.create.Execute(c.Request.Context(), id, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, house, domain.MsgCreated)
}

func (h *HouseHandler) Update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req domain.UpdateInput
	if !bindJSON(c, &req) {
		return
	}

	house, err := h.update.Execute(c.Request.Context(), id, c.Param("id"), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OKWithMessage(c, house, domain.MsgUpdated)
}

func (h *HouseHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, domain.MsgDeleted)
}

func (h *HouseHandler) UpdateStatus(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}

	house, err := h.updateStatus.Execute(c.Request.Context(), id, c.Param("id"), req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OKWithMessage(c, house, domain.MsgStatusUpdated)
}

func (h *HouseHandler) ListMine(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	res, err := h.byLandlord.Mine(c.Request.Context(), id, pageParams(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *HouseHandler) GetMine(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	house, err := h.getOwn.Execute(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, house)
}
