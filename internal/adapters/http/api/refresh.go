package api

import (
	"encoding/json"
	"net/http"

	"github.com/okraft/skillscope/internal/domain/inventory"
)

// RefreshHandler routes filter changes into the refresh pipeline.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// refreshAccepted acknowledges an accepted refresh request.
type refreshAccepted struct {
	Status string `json:"status"`
}

// HandlePostRefresh handles POST /refresh requests. The body is a JSON
// object of facet name to value, e.g. {"department": "Engineering"}.
// An empty object clears all facets. The refresh runs asynchronously;
// rapid successive requests are coalesced so only the latest filter's
// result is ever published.
func (h *RefreshHandler) HandlePostRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, ErrMethodNotAllowed)
		return
	}

	var f inventory.Filter
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, ErrBadRequest)
		return
	}

	h.deps.Refresh(r.Context(), f)
	writeJSON(w, http.StatusAccepted, refreshAccepted{Status: "refreshing"})
}
