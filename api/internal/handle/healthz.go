package handle

import "net/http"

type healthzResp struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
	DemoMode         bool   `json:"demo_mode"`
}

// Healthz reports liveness and configuration status.
func (h *Handle) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthzResp{
		Status:           "ok",
		GeminiConfigured: h.configured,
		DemoMode:         h.demoMode,
	})
}
