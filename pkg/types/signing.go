package types

import "encoding/json"

// Request fields stay raw so the gateway can tell a binary value apart from
// text before anything is converted.

type KeypairRequest struct {
	Seed json.RawMessage `json:"seed"`
}

type KeypairResponse struct {
	PublicKey  Buffer `json:"public_key"`
	PrivateKey Buffer `json:"private_key"`
}

type SignRequest struct {
	Message    json.RawMessage `json:"message"`
	PrivateKey json.RawMessage `json:"private_key"`
}

type SignResponse struct {
	Signature Buffer `json:"signature"`
}

type VerifyRequest struct {
	Message   json.RawMessage `json:"message"`
	Signature json.RawMessage `json:"signature"`
	PublicKey json.RawMessage `json:"public_key"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
