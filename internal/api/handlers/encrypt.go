package handlers

// encrypt.go implements the POST /encrypt endpoint

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/metrics"
)

// EncryptHandler handles POST /encrypt requests
type EncryptHandler struct {
	codec crypto.ValueCodec
}

// NewEncryptHandler creates a new handler for encrypt requests
func NewEncryptHandler(codec crypto.ValueCodec) *EncryptHandler {
	return &EncryptHandler{
		codec: codec,
	}
}

// HandleEncrypt godoc
//
//	@Summary		Encrypt depth-1 properties
//	@Description	Replaces the value of every top-level property with a token (base64 of the JSON form of the value).
//	@Description	Nested objects and arrays are encoded as a single token, their contents are not transformed.
//	@Description
//	@Description	The response has the same keys in the same order, every value is a string.
//	@Tags		Crypto
//	@Accept		json
//	@Produce	json
//	@Param		request	body		object				true	"Any JSON object"
//	@Success	200		{object}	map[string]string	"Object with encrypted values"
//	@Failure	400		{object}	api.ErrorResponse	"Malformed JSON"
//	@Failure	422		{object}	api.ErrorResponse	"Payload is not a JSON object"
//	@Router		/encrypt [post]
func (h *EncryptHandler) HandleEncrypt(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	obj, err := readJSONObjectBody(r)
	if err != nil {
		metrics.RecordOperation(metrics.OpEncrypt, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	result, err := crypto.EncryptProperties(h.codec, obj)
	if err != nil {
		metrics.RecordOperation(metrics.OpEncrypt, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, api.WrapInternalError(err, "failed to encrypt payload"))
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.Int("properties", result.Len()),
	)
	metrics.RecordOperation(metrics.OpEncrypt, metrics.StatusSuccess, start)

	api.RespondWithJSONPayload(w, http.StatusOK, result)
}
