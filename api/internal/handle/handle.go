package handle

import (
	"encoding/json"
	"net/http"

	"cloud-architect/api/internal/gen"
)

type Handle struct {
	gw         gen.Gateway
	configured bool
	demoMode   bool
}

// New builds the handler set over an injected gateway. configured reports
// whether a live upstream credential is present, demoMode whether the canned
// gateway is in use; both are surfaced by /healthz only.
func New(gw gen.Gateway, configured, demoMode bool) *Handle {
	return &Handle{
		gw:         gw,
		configured: configured,
		demoMode:   demoMode,
	}
}

type successResp struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

type errorResp struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResp{Status: "error", Error: msg})
}
