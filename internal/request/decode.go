package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/trainerhub/pkg"

	log "github.com/sirupsen/logrus"
)

// MaxBodyBytes is the largest accepted request body.
const MaxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Decode reads a size limited JSON body into dst, rejecting unknown fields, then validates it.
// An empty body leaves dst zeroed so required fields fail validation.
func (v *Validator) Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("decode %s body: %s", r.URL.Path, err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return NewValidationError("body", "too large")
		}
		return NewValidationError("body", "invalid JSON")
	}
	return v.Struct(dst)
}

// WriteValidationError writes the 400 validation failure body.
func WriteValidationError(w http.ResponseWriter, err *ValidationError) {
	pkg.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Errors: err.Fields,
	})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	pkg.WriteJSON(w, status, ErrorResponse{Error: message})
}
