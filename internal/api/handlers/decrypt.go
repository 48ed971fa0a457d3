package handlers

// decrypt.go implements the POST /decrypt endpoint

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/metrics"
)

// DecryptHandler handles POST /decrypt requests
type DecryptHandler struct {
	codec crypto.ValueCodec
}

// NewDecryptHandler creates a new handler for decrypt requests
func NewDecryptHandler(codec crypto.ValueCodec) *DecryptHandler {
	return &DecryptHandler{
		codec: codec,
	}
}

// HandleDecrypt godoc
//
//	@Summary		Decrypt depth-1 properties
//	@Description	Attempts to decode every top-level string value produced by /encrypt.
//	@Description
//	@Description	Values that decode are replaced with the original value (types are preserved: an encrypted 30 comes back as the number 30).
//	@Description	Strings that are not valid tokens and values that are not strings are returned unchanged.
//	@Description
//	@Description	Note: any string that happens to be base64 encoded JSON is decoded, whether or not it was produced by /encrypt.
//	@Tags		Crypto
//	@Accept		json
//	@Produce	json
//	@Param		request	body		object				true	"JSON object with encrypted values"
//	@Success	200		{object}	object				"Object with decrypted values"
//	@Failure	400		{object}	api.ErrorResponse	"Malformed JSON"
//	@Failure	422		{object}	api.ErrorResponse	"Payload is not a JSON object"
//	@Router		/decrypt [post]
func (h *DecryptHandler) HandleDecrypt(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	obj, err := readJSONObjectBody(r)
	if err != nil {
		metrics.RecordOperation(metrics.OpDecrypt, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	// strings that are not tokens are kept as they are
	result, fallbacks := crypto.DecryptProperties(h.codec, obj)

	logger.ContextWithLogAttrs(r.Context(),
		slog.Int("properties", result.Len()),
		slog.Int("unchanged", fallbacks),
	)
	metrics.RecordDecryptFallbacks(fallbacks)
	metrics.RecordOperation(metrics.OpDecrypt, metrics.StatusSuccess, start)

	api.RespondWithJSONPayload(w, http.StatusOK, result)
}
