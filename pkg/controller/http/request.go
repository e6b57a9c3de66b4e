package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/usecase"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON decodes the request body into dst and runs struct validation.
// Failures map to ErrValidation so the caller gets a 400.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "malformed JSON body", goerr.V("cause", err.Error()))
	}
	if err := validate.Struct(dst); err != nil {
		return goerr.Wrap(usecase.ErrValidation, "invalid request body", goerr.V("cause", err.Error()))
	}
	return nil
}
