package converters

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// batchSchema is the JSON schema for the batch operation wire format.
// It checks the envelope shape only: the discriminator, each variant's
// required fields, and the position union. Field semantics (column exists,
// reference declared, and so on) belong to the engine.
const batchSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["type"],
    "properties": {
      "type": {"enum": ["create", "update", "move", "delete"]}
    },
    "allOf": [
      {
        "if": {"properties": {"type": {"const": "create"}}},
        "then": {
          "required": ["columnId", "data"],
          "properties": {
            "columnId": {"type": "string", "minLength": 1},
            "reference": {"type": "string"},
            "position": {"type": "integer", "minimum": 0},
            "data": {
              "type": "object",
              "required": ["title"],
              "properties": {
                "title": {"type": "string", "minLength": 1},
                "content": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "dependencies": {"type": "array", "items": {"type": "string"}},
                "subtasks": {"type": "array", "items": {"type": "string"}}
              }
            }
          }
        }
      },
      {
        "if": {"properties": {"type": {"const": "update"}}},
        "then": {
          "required": ["cardId", "data"],
          "properties": {
            "cardId": {"type": "string", "minLength": 1},
            "data": {"type": "object"}
          }
        }
      },
      {
        "if": {"properties": {"type": {"const": "move"}}},
        "then": {
          "required": ["cardId", "columnId", "position"],
          "properties": {
            "cardId": {"type": "string", "minLength": 1},
            "columnId": {"type": "string", "minLength": 1},
            "position": {
              "anyOf": [
                {"type": "integer", "minimum": 0},
                {"enum": ["first", "last", "up", "down"]}
              ]
            }
          }
        }
      },
      {
        "if": {"properties": {"type": {"const": "delete"}}},
        "then": {
          "required": ["cardId"],
          "properties": {
            "cardId": {"type": "string", "minLength": 1}
          }
        }
      }
    ]
  }
}`

var compiledBatchSchema = jsonschema.MustCompileString("batch.json", batchSchema)

// validateBatchPayload checks the raw batch JSON against the wire schema
func validateBatchPayload(raw []byte) error {
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("invalid batch payload: %w", err)
	}
	if err := compiledBatchSchema.Validate(payload); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("invalid batch payload: %s", firstCause(ve).Message)
		}
		return fmt.Errorf("invalid batch payload: %w", err)
	}
	return nil
}

// firstCause walks to the deepest first cause for a readable message
func firstCause(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return err
}
