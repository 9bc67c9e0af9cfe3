// Package converters translates between the wire formats consumed and
// produced by the REST/CLI/MCP transports and the engine's domain types.
package converters

import (
	"encoding/json"
	"fmt"

	"github.com/tuckertucker/taskboard/internal/services/batch"
)

// DecodeOperations parses a JSON array of wire operations into the tagged
// union form. The payload is schema-validated first, so malformed envelopes
// are rejected at the boundary with a field-level message instead of
// surfacing as engine errors.
func DecodeOperations(raw []byte) ([]batch.Operation, error) {
	if err := validateBatchPayload(raw); err != nil {
		return nil, err
	}

	var ops []batch.Operation
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("invalid batch payload: %w", err)
	}
	return ops, nil
}

// EncodeOperations renders operations back into the wire format
func EncodeOperations(ops []batch.Operation) ([]byte, error) {
	return json.Marshal(ops)
}
