// api package contains the HTTP layer for the crypto operations: request/response types,
// the error response format and the response helpers used by the handlers in api/handlers.
//
// **error handling**
// crypto has its own error type, the api package adds APIError for request level failures (bad JSON,
// wrong shape, invalid signature etc). Both are mapped to an HTTP status and a stable error code by MapErrorToResponse.
// Use RespondWithErrorResponse() to create and send the error response.
//
// **fallback policy**
// the codec and signer never swallow errors. Leaving an undecodable value unchanged is done by
// crypto.DecryptProperties, turning a failed verification into a 400 is done by the verify handler.
package api
