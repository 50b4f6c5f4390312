package handle

import (
	"context"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"cloud-architect/api/internal/gen"
	"cloud-architect/api/internal/validate"
)

// maxBodyBytes bounds the request body read; the largest acceptable prompt is
// far below this.
const maxBodyBytes = 1 << 20

// Generate handles POST /generate: validate the submission, run the single
// gateway call, and shape the outcome as {status, response|error}.
func (h *Handle) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Request must be JSON format")
		return
	}
	prompt, err := validate.Request(r.Header.Get("Content-Type"), body)
	if err != nil {
		// No upstream call happens for a rejected submission.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deadline := 60 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	text, err := h.gw.Generate(ctx, prompt)
	if err != nil {
		ge := gen.Categorize(err)
		log.Printf("generate failed (%s): %v", ge.Category, err)
		if ge.Category == gen.CategoryRateLimited {
			w.Header().Set("Retry-After", "60")
		}
		writeError(w, ge.Category.HTTPStatus(), ge.Message)
		return
	}

	writeJSON(w, http.StatusOK, successResp{Status: "success", Response: text})
}
