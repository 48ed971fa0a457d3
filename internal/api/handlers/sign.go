package handlers

// sign.go implements the POST /sign endpoint

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/metrics"
)

// SignHandler handles POST /sign requests
type SignHandler struct {
	signer crypto.Signer
}

// NewSignHandler creates a new handler for sign requests.
//
// signer is nil when no secret is configured, requests then fail with 503.
func NewSignHandler(signer crypto.Signer) *SignHandler {
	return &SignHandler{
		signer: signer,
	}
}

// HandleSign godoc
//
//	@Summary		Sign a JSON value
//	@Description	Computes an HMAC-SHA256 signature over the canonical form of the payload (sorted keys, no whitespace, exact numbers).
//	@Description
//	@Description	Any JSON value is accepted (object, array, string, number etc).
//	@Description	The signature does not depend on the order of object properties or on whitespace.
//	@Tags		Crypto
//	@Accept		json
//	@Produce	json
//	@Param		request	body		object				true	"Any JSON value"
//	@Success	200		{object}	api.SignResponse	"Hex encoded signature"
//	@Failure	400		{object}	api.ErrorResponse	"Malformed JSON"
//	@Failure	503		{object}	api.ErrorResponse	"HMAC secret not configured"
//	@Router		/sign [post]
func (h *SignHandler) HandleSign(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.signer == nil {
		metrics.RecordOperation(metrics.OpSign, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, api.NewSecretMissingError("HMAC secret missing"))
		return
	}

	value, err := readJSONBody(r)
	if err != nil {
		metrics.RecordOperation(metrics.OpSign, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	signature, err := h.signer.Sign(value)
	if err != nil {
		metrics.RecordOperation(metrics.OpSign, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("payload_type", jsonvalue.TypeName(value)),
		slog.String("algorithm", h.signer.Algorithm()),
	)
	metrics.RecordOperation(metrics.OpSign, metrics.StatusSuccess, start)

	api.RespondWithJSONPayload(w, http.StatusOK, api.SignResponse{Signature: signature})
}
