package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/amaumene/seerrctl/internal/controllers"
	"github.com/amaumene/seerrctl/internal/models"
	"github.com/sirupsen/logrus"
)

// StatusHandler handles status requests
type StatusHandler struct {
	db        *models.Database
	watchCtrl *controllers.WatchController
	logger    *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *models.Database, watchCtrl *controllers.WatchController, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		db:        db,
		watchCtrl: watchCtrl,
		logger:    logger,
	}
}

// StatusResponse represents the status response
type StatusResponse struct {
	SeenMedia  int                     `json:"seen_media"`
	SeenIssues int                     `json:"seen_issues"`
	Watch      controllers.WatchStatus `json:"watch"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	counts, err := h.db.CountByKind()
	if err != nil {
		h.logger.WithError(err).Error("Failed to count seen items")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	response := StatusResponse{
		SeenMedia:  counts["media"],
		SeenIssues: counts["issue"],
		Watch:      h.watchCtrl.Status(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
