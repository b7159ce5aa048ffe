package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/house-hunting/internal/domain/account"
	"github.com/BruksfildServices01/house-hunting/internal/httperr"
	"github.com/BruksfildServices01/house-hunting/internal/middleware"
	"github.com/BruksfildServices01/house-hunting/internal/pagination"
)

const msgInvalidBody = "Invalid request body"

// bindJSON decodes the body into dst. An empty body leaves dst zeroed so
// the use case reports the missing fields itself.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, msgInvalidBody)
		return false
	}
	return true
}

// identity is only nil on routes that skip Authenticate.
func identity(c *gin.Context) (account.Identity, bool) {
	id := middleware.IdentityFrom(c)
	if id == nil {
		httperr.Unauthorized(c, account.MsgNotAuthenticated)
		return account.Identity{}, false
	}
	return *id, true
}

func pageParams(c *gin.Context) pagination.Params {
	return pagination.Parse(c.Query("page"), c.Query("pageSize"))
}
