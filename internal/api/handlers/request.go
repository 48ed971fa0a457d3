package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

// readJSONBody parses the request body as a single JSON value.
func readJSONBody(r *http.Request) (any, error) {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, api.NewPayloadTooLargeError("Payload too large")
		}
		return nil, api.WrapMalformedRequestError(err, "failed to read request body")
	}

	if len(body) == 0 {
		return nil, api.NewMalformedRequestError("request body is empty")
	}

	value, err := jsonvalue.Parse(body)
	if err != nil {
		return nil, api.WrapMalformedRequestError(err, "failed to decode request JSON")
	}
	return value, nil
}

// readJSONObjectBody parses the request body and requires the root to be a JSON object.
func readJSONObjectBody(r *http.Request) (*jsonvalue.Object, error) {
	value, err := readJSONBody(r)
	if err != nil {
		return nil, err
	}

	obj, ok := value.(*jsonvalue.Object)
	if !ok {
		return nil, api.NewRootNotObjectError("Payload must be a JSON object at the root.")
	}
	return obj, nil
}
