package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/emuhs/s2p-api/internal/procurement/domain"
)

// ErrMalformedBody is returned when the request body is not a JSON object
var ErrMalformedBody = errors.New("malformed request body")

// Decode reads a JSON body into dst.
// A value of the wrong type becomes a ValidationError on that field.
func Decode(r io.Reader, dst any) error {
	err := json.NewDecoder(r).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &domain.ValidationError{Fields: []domain.FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: "must be of type " + typeErr.Type.String(),
		}}}
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}
