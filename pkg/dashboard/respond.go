package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
	"github.com/xrpl-custody/custody-sdk-go/pkg/xls89"
)

// proposalResponse pairs the envelope that was submitted with the backend
// response, matching what the forms render.
type proposalResponse struct {
	Request  *intent.Envelope `json:"request"`
	Response json.RawMessage  `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeBody(r *http.Request, target any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	// Several routes take no parameters but are still POSTs; treat an
	// empty body as an empty object.
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps core errors to status codes: validation and metadata
// format failures are the caller's to fix (400), everything else is a
// backend or transport failure (500).
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErr *intent.ValidationError
	var formatErr *xls89.FormatError
	if errors.As(err, &validationErr) || errors.As(err, &formatErr) {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}
