package api

// api_types.go contains the request and response bodies of the crypto API.
// /encrypt, /decrypt and /sign take arbitrary JSON so only their responses are typed here.

// SignResponse is returned by POST /sign
type SignResponse struct {
	// Hex encoded HMAC-SHA256 of the canonical JSON form of the payload
	Signature string `json:"signature" example:"4771e9f03478b9b1bf197dc2cd35015b24eced4af51a4679faa197860abb88ab"`
}

// VerifyRequest is the body of POST /verify.
//
// The request is parsed with jsonvalue so Data keeps the literal form of its numbers,
// this type documents the shape for swag.
type VerifyRequest struct {
	// Hex encoded signature returned by /sign
	Signature string `json:"signature" example:"4771e9f03478b9b1bf197dc2cd35015b24eced4af51a4679faa197860abb88ab"`

	// The JSON object that was signed
	Data map[string]any `json:"data" swaggertype:"object"`
}
