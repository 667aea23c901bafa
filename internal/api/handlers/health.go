package handlers

import (
	"net/http"
)

// Health reports that the solver process is up. It stays available for the
// whole run so scrapers can tell a slow search from a dead process.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "service": "waypoint-tour-solver"})
}
