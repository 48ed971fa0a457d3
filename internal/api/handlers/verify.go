package handlers

// verify.go implements the POST /verify endpoint

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/metrics"
)

// VerifyHandler handles POST /verify requests
type VerifyHandler struct {
	signer crypto.Signer
}

// NewVerifyHandler creates a new handler for verify requests.
//
// signer is nil when no secret is configured, requests then fail with 503.
func NewVerifyHandler(signer crypto.Signer) *VerifyHandler {
	return &VerifyHandler{
		signer: signer,
	}
}

// HandleVerify godoc
//
//	@Summary		Verify a signature
//	@Description	Checks that `signature` is the signature /sign returns for `data`.
//	@Description
//	@Description	`data` must be a JSON object and `signature` a non-empty string.
//	@Description	Property order in `data` does not matter.
//	@Tags		Crypto
//	@Accept		json
//	@Param		request	body	api.VerifyRequest	true	"Signature and signed data"
//	@Success	204		"Signature is valid"
//	@Failure	400		{object}	api.ErrorResponse	"Invalid signature or malformed JSON"
//	@Failure	422		{object}	api.ErrorResponse	"Missing or invalid fields"
//	@Failure	503		{object}	api.ErrorResponse	"HMAC secret not configured"
//	@Router		/verify [post]
func (h *VerifyHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.signer == nil {
		metrics.RecordOperation(metrics.OpVerify, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, api.NewSecretMissingError("HMAC secret missing"))
		return
	}

	body, err := readJSONObjectBody(r)
	if err != nil {
		metrics.RecordOperation(metrics.OpVerify, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	signature, data, err := parseVerifyRequest(body)
	if err != nil {
		metrics.RecordOperation(metrics.OpVerify, metrics.StatusError, start)
		api.RespondWithErrorResponse(w, r, err)
		return
	}

	if !h.signer.Verify(signature, data) {
		metrics.RecordOperation(metrics.OpVerify, metrics.StatusInvalid, start)
		api.RespondWithErrorResponse(w, r, api.NewInvalidSignatureError("Invalid signature"))
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("algorithm", h.signer.Algorithm()),
	)
	metrics.RecordOperation(metrics.OpVerify, metrics.StatusSuccess, start)

	api.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

// parseVerifyRequest checks the shape of a verify request:
// signature must be a non-blank string and data a JSON object.
func parseVerifyRequest(body *jsonvalue.Object) (string, *jsonvalue.Object, error) {
	rawSignature, ok := body.Get("signature")
	if !ok {
		return "", nil, api.NewValidationError("signature is required")
	}
	signature, ok := rawSignature.(string)
	if !ok {
		return "", nil, api.NewValidationError("signature must be a string, got " + jsonvalue.TypeName(rawSignature))
	}
	if strings.TrimSpace(signature) == "" {
		return "", nil, api.NewValidationError("signature must be a non-empty string")
	}

	rawData, ok := body.Get("data")
	if !ok {
		return "", nil, api.NewValidationError("data is required")
	}
	data, ok := rawData.(*jsonvalue.Object)
	if !ok {
		return "", nil, api.NewValidationError("data must be a JSON object, got " + jsonvalue.TypeName(rawData))
	}

	return signature, data, nil
}
