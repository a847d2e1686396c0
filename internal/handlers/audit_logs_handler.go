package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditReader interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	reader AuditReader
	tz     string
}

func NewAuditLogsHandler(reader AuditReader, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader, tz: tz}
}

// List shows the signed in user's own audit trail. from and to are clinic
// dates, both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)
	if actorID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized")
		return
	}

	page, limit := pagination(c)

	q := audit.Query{
		ActorID: actorID,
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	// --------------------------------------------------
	// Optional date bounds
	// --------------------------------------------------

	if s := c.Query("from"); s != "" {
		from, err := timezone.DayStart(s, h.tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "from must be YYYY-MM-DD")
			return
		}
		q.From = from
	}
	if s := c.Query("to"); s != "" {
		to, err := timezone.DayEnd(s, h.tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "to must be YYYY-MM-DD")
			return
		}
		q.To = to
	}

	logs, total, err := h.reader.List(c.Request.Context(), q)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, "Audit logs fetched", page, limit, total, logs)
}
