package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okraft/skillscope/internal/render"
)

// ActionsHandler forwards gap-row action intents to the host.
type ActionsHandler struct {
	deps Dependencies
}

// NewActionsHandler creates a new actions handler.
func NewActionsHandler(deps Dependencies) *ActionsHandler {
	return &ActionsHandler{deps: deps}
}

// actionAccepted acknowledges an accepted action intent.
type actionAccepted struct {
	Status string `json:"status"`
	Skill  string `json:"skill"`
}

// HandlePostAction handles POST /actions requests. The body carries the
// skill the action button was pressed for: {"skill": "Blockchain"}.
func (h *ActionsHandler) HandlePostAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, ErrMethodNotAllowed)
		return
	}

	var intent render.ActionIntent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, ErrBadRequest)
		return
	}
	if intent.Skill == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, errors.New("skill is required"))
		return
	}

	h.deps.RequestAction(r.Context(), intent)
	writeJSON(w, http.StatusAccepted, actionAccepted{Status: "accepted", Skill: intent.Skill})
}
