package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/handler/http/response"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db      *database.DB
	version string
}

func NewHealthHandler(db *database.DB, version string) HealthHandler {
	return &healthHandlerImpl{db: db, version: version}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Check handles GET /health. A broken database connection fails the probe.
func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, healthResponse{Status: "ok", Version: h.version})
}
