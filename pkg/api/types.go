package api

import (
	"time"

	"github.com/segmentio/ksuid"
	"github.com/ssargent/ghosthex/pkg/codec"
)

// DefaultMaxBodyBytes caps request bodies when ServerConfig.MaxBodyBytes is zero
const DefaultMaxBodyBytes = 1 << 20

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeRequest asks the server to hide payload in carrier
type EncodeRequest struct {
	Carrier string `json:"carrier"`
	Payload string `json:"payload"`
}

// EncodeResponse is the result of hiding a payload
type EncodeResponse struct {
	Text         string       `json:"text"`
	EncodedCount int          `json:"encoded_count"`
	Skipped      []string     `json:"skipped"`
	Status       codec.Status `json:"status"`
}

// DecodeRequest asks the server to split text into carrier and payload
type DecodeRequest struct {
	Text string `json:"text"`
}

// DecodeResponse is the result of revealing a payload
type DecodeResponse struct {
	Carrier        string       `json:"carrier"`
	Payload        string       `json:"payload"`
	RecoveredCount int          `json:"recovered_count"`
	Status         codec.Status `json:"status"`
}

// DropResponse describes a stored drop and, when read back, its decoded content
type DropResponse struct {
	ID        ksuid.KSUID     `json:"id"`
	Text      string          `json:"text"`
	CreatedAt time.Time       `json:"created_at"`
	Encoded   *EncodeResponse `json:"encoded,omitempty"`
	Decoded   *DecodeResponse `json:"decoded,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind              string
	Port              int
	APIKey            string
	AllowEmptyCarrier bool  // Accept encode requests with no carrier text
	Strict            bool  // Reject non-ASCII payloads instead of skipping them
	MaxBodyBytes      int64 // Request body limit, DefaultMaxBodyBytes when zero
}
