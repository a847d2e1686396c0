package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// pagination reads limit and currentPageNo, falling back to 10 and 1.
func pagination(c *gin.Context) (page, limit int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	page, _ = strconv.Atoi(c.DefaultQuery("currentPageNo", "1"))
	if page <= 0 {
		page = 1
	}
	return page, limit
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", validators.Describe(err))
}
