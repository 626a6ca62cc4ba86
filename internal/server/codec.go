package server

import (
	"encoding/json"
	"fmt"
)

// jsonCodec serializes plain Go messages so the service needs no generated protobuf types.
type jsonCodec struct{}

// Codec is the codec both the handler and its clients must use.
var Codec = jsonCodec{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%T) > %w", message, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	// Connect sends an empty body for a request without fields
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal(%T) > %w", message, err)
	}
	return nil
}
