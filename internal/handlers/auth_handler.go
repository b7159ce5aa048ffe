package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/httpresp"
	"github.com/BruksfildServices01/house-hunting/internal/middleware"
	"github.com/BruksfildServices01/house-hunting/internal/models"
	ucAccount "github.com/BruksfildServices01/house-hunting/internal/usecase/account"
)

// AuthEvents counts authentication outcomes.
type AuthEvents interface {
	AuthEvent(event string, ok bool)
}

type noEvents struct{}

func (noEvents) AuthEvent(string, bool) {}

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	signup      *ucAccount.Signup
	login       *ucAccount.Login
	refresh     *ucAccount.Refresh
	logout      *ucAccount.Logout
	currentUser *ucAccount.GetCurrentUser
	events      AuthEvents
}

func NewAuthHandler(
	signup *ucAccount.Signup,
	login *ucAccount.Login,
	refresh *ucAccount.Refresh,
	logout *ucAccount.Logout,
	currentUser *ucAccount.GetCurrentUser,
	events AuthEvents,
) *AuthHandler {
	if events == nil {
		events = noEvents{}
	}
	return &AuthHandler{
		signup:      signup,
		login:       login,
		refresh:     refresh,
		logout:      logout,
		currentUser: currentUser,
		events:      events,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ======================================================
// SIGNUP
// ======================================================

func (h *AuthHandler) SignupTenant(c *gin.Context) {
	h.signupAs(c, models.RoleTenant)
}

func (h *AuthHandler) SignupLandlord(c *gin.Context) {
	h.signupAs(c, models.RoleLandlord)
}

func (h *AuthHandler) signupAs(c *gin.Context, role string) {
	var req ucAccount.SignupInput
	if !bindJSON(c, &req) {
		return
	}

	res, msg, err := h.signup.Execute(c.Request.Context(), role, req)
	h.events.AuthEvent("signup", err == nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, res, msg)
}

// ======================================================
// SESSION
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req ucAccount.LoginInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req)
	h.events.AuthEvent("login", err == nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.refresh.Execute(c.Request.Context(), req.RefreshToken)
	h.events.AuthEvent("refresh", err == nil)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.SessionFrom(c)); err != nil {
		h.events.AuthEvent("logout", false)
		httperr.Respond(c, err)
		return
	}
	h.events.AuthEvent("logout", true)
	httpresp.Message(c, domain.MsgLoggedOut)
}

func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.currentUser.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, profile)
}
