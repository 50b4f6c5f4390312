// Package validate accepts or rejects a raw /generate submission before any
// upstream call is attempted. It is a pure function of the request's content
// type and body.
package validate

import (
	"encoding/json"
	"mime"
	"strings"
	"unicode/utf8"
)

const (
	MinPromptLen = 10
	MaxPromptLen = 5000
)

// Reason tags a validation rejection.
type Reason string

const (
	ReasonWrongContentType Reason = "wrong-content-type"
	ReasonMalformedBody    Reason = "malformed-request-body"
	ReasonEmpty            Reason = "empty"
	ReasonTooShort         Reason = "too-short"
	ReasonTooLong          Reason = "too-long"
)

// Rejection is the error returned for an unacceptable submission.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string { return r.Message }

func reject(reason Reason, msg string) error {
	return &Rejection{Reason: reason, Message: msg}
}

type generateReq struct {
	Prompt *string `json:"prompt"`
}

// Request checks the declared content type and body of a submission and
// returns the trimmed prompt text on acceptance. Every rejection is a
// *Rejection; the caller never sees a decoder error directly.
func Request(contentType string, body []byte) (string, error) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt != "application/json" {
		return "", reject(ReasonWrongContentType, "Request must be JSON format")
	}
	var req generateReq
	if err := json.Unmarshal(body, &req); err != nil {
		return "", reject(ReasonMalformedBody, "Request must be JSON format")
	}
	if req.Prompt == nil {
		return "", reject(ReasonMalformedBody, "Missing required field: prompt")
	}
	return Prompt(*req.Prompt)
}

// Prompt checks the submitted text against the length bounds after trimming.
func Prompt(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	// Bounds are in characters, not bytes.
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return "", reject(ReasonEmpty, "Project description cannot be empty")
	case n < MinPromptLen:
		return "", reject(ReasonTooShort, "Project description must be at least 10 characters long")
	case n > MaxPromptLen:
		return "", reject(ReasonTooLong, "Project description must be less than 5000 characters")
	}
	return text, nil
}
