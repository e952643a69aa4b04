// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/constants"
	"github.com/taibuivan/inkwell/internal/platform/validate"
	"github.com/taibuivan/inkwell/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Description: At most constants.MaxRequestBodyBytes are read. A larger body
is refused before any field validation runs.

Returns:
  - error: PAYLOAD_TOO_LARGE over the limit, validate.ErrInvalidJSON if
    decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	body := http.MaxBytesReader(writer, request.Body, constants.MaxRequestBodyBytes)

	if err := json.NewDecoder(body).Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.PayloadTooLarge(tooLarge.Limit)
		}
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter holding a resource identifier.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query returns a single query string value, empty when absent.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
Flag parses a boolean query parameter ("true", "1", "on").
Absent or malformed values read as false.
*/
func Flag(request *http.Request, name string) bool {
	return convert.ToBool(request.URL.Query().Get(name))
}
