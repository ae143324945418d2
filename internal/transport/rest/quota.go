package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/docugallery/gallery-backend/pkg/ctxutil"
)

// quotaStats reports daily Drive API usage.
type quotaStats interface {
	Stats(ctx context.Context) (used, limit int64, err error)
}

// QuotaHandler serves the Drive API quota endpoint.
type QuotaHandler struct {
	stats quotaStats
	log   *slog.Logger
}

// NewQuotaHandler creates a QuotaHandler. stats may be nil when the
// counter is not configured.
func NewQuotaHandler(stats quotaStats, logger *slog.Logger) *QuotaHandler {
	return &QuotaHandler{stats: stats, log: logger.With("handler", "quota")}
}

// Get handles GET /admin/quota.
func (h *QuotaHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := ctxutil.CallerFromCtx(r.Context())
	if !caller.Authenticated {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	if h.stats == nil {
		writeError(w, http.StatusServiceUnavailable, "quota tracking not configured")
		return
	}

	used, limit, err := h.stats.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"used":      used,
		"limit":     limit,
		"remaining": max(limit-used, 0),
	})
}
