package handler

import (
	"net/http"

	"github.com/abcdental/chat-platform/internal/model"
)

// defaultRoster is served when no roster is configured.
var defaultRoster = []model.Doctor{
	{ID: 1, Name: "Dr. Wang", Specialization: "General Dentistry"},
	{ID: 2, Name: "Dr. Chen", Specialization: "Orthodontics"},
	{ID: 3, Name: "Dr. Li", Specialization: "Oral Surgery"},
}

// DoctorsHandler handles GET /api/doctors/.
type DoctorsHandler struct {
	roster []model.Doctor
}

// NewDoctorsHandler creates the doctors handler. A nil roster serves the
// default clinic roster.
func NewDoctorsHandler(roster []model.Doctor) *DoctorsHandler {
	if roster == nil {
		roster = defaultRoster
	}
	return &DoctorsHandler{roster: roster}
}

// List handles GET /api/doctors/.
func (h *DoctorsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.roster)
}
