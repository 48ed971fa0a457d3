// Package docs registers the OpenAPI (swagger 2.0) description of the crypto API with swag.
// The document is served at /swagger/doc.json.
//
// Regenerate with: swag init -g cmd/crypto-server/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/decrypt": {
            "post": {
                "description": "Attempts to decode every top-level string value produced by /encrypt.\n\nValues that decode are replaced with the original value (types are preserved: an encrypted 30 comes back as the number 30).\nStrings that are not valid tokens and values that are not strings are returned unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crypto"],
                "summary": "Decrypt depth-1 properties",
                "parameters": [
                    {
                        "description": "JSON object with encrypted values",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Object with decrypted values", "schema": {"type": "object"}},
                    "400": {"description": "Malformed JSON", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Payload is not a JSON object", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/encrypt": {
            "post": {
                "description": "Replaces the value of every top-level property with a token (base64 of the JSON form of the value).\nNested objects and arrays are encoded as a single token, their contents are not transformed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crypto"],
                "summary": "Encrypt depth-1 properties",
                "parameters": [
                    {
                        "description": "Any JSON object",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Object with encrypted values",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "400": {"description": "Malformed JSON", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Payload is not a JSON object", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Check if the HTTP service is alive and responding.",
                "produces": ["text/plain"],
                "tags": ["Common"],
                "summary": "Health (liveness) Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Checks if the service is ready to accept traffic.\n\nThe service is not ready when no HMAC secret is configured (/sign and /verify return 503 until it is).",
                "produces": ["application/json"],
                "tags": ["Common"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "status ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "status not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sign": {
            "post": {
                "description": "Computes an HMAC-SHA256 signature over the canonical form of the payload (sorted keys, no whitespace, exact numbers).\n\nAny JSON value is accepted (object, array, string, number etc).\nThe signature does not depend on the order of object properties or on whitespace.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Crypto"],
                "summary": "Sign a JSON value",
                "parameters": [
                    {
                        "description": "Any JSON value",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "Hex encoded signature", "schema": {"$ref": "#/definitions/api.SignResponse"}},
                    "400": {"description": "Malformed JSON", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "503": {"description": "HMAC secret not configured", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/verify": {
            "post": {
                "description": "Checks that signature is the signature /sign returns for data.\n\ndata must be a JSON object and signature a non-empty string.\nProperty order in data does not matter.",
                "consumes": ["application/json"],
                "tags": ["Crypto"],
                "summary": "Verify a signature",
                "parameters": [
                    {
                        "description": "Signature and signed data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.VerifyRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "Signature is valid"},
                    "400": {"description": "Invalid signature or malformed JSON", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "503": {"description": "HMAC secret not configured", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version and build information for the service",
                "produces": ["application/json"],
                "tags": ["Common"],
                "summary": "Get version information",
                "responses": {
                    "200": {"description": "Version information", "schema": {"$ref": "#/definitions/handlers.VersionResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "invalid_signature"},
                "error": {"type": "string", "example": "Invalid signature"},
                "errorDateTime": {"type": "string", "example": "2024-01-28T10:00:00Z"},
                "requestId": {"type": "string"},
                "statusCode": {"type": "integer", "example": 400}
            }
        },
        "api.SignResponse": {
            "type": "object",
            "properties": {
                "signature": {"type": "string", "example": "4771e9f03478b9b1bf197dc2cd35015b24eced4af51a4679faa197860abb88ab"}
            }
        },
        "api.VerifyRequest": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "signature": {"type": "string", "example": "4771e9f03478b9b1bf197dc2cd35015b24eced4af51a4679faa197860abb88ab"}
            }
        },
        "handlers.VersionResponse": {
            "type": "object",
            "properties": {
                "build_date": {"type": "string", "example": "2024-01-28T10:00:00Z"},
                "git_commit": {"type": "string", "example": "a1b2c3d"},
                "service": {"type": "string", "example": "crypto-api"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Crypto API",
	Description:      "Encrypts, decrypts, signs and verifies JSON payloads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
