package batch

import (
	"encoding/json"
	"fmt"

	"github.com/tuckertucker/taskboard/internal/position"
	"github.com/tuckertucker/taskboard/internal/types"
)

// OpType discriminates the operation variants
type OpType string

const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpMove   OpType = "move"
	OpDelete OpType = "delete"
)

// Operation is a tagged union over the four batch operation variants.
// Exactly one of the variant pointers is set, matching Type. Unknown types
// are rejected when decoding, so a constructed Operation is always one of
// the four.
type Operation struct {
	Type   OpType
	Create *CreateOp
	Update *UpdateOp
	Move   *MoveOp
	Delete *DeleteOp
}

// CardData carries the card fields of a create operation.
// Dependencies are raw strings because they may contain $ref: tokens that
// are only resolvable while the batch runs.
type CardData struct {
	Title        string   `json:"title"`
	Content      string   `json:"content,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Subtasks     []string `json:"subtasks,omitempty"`
}

// CardPatch carries the card fields of an update operation.
// Nil pointers mean "leave unchanged".
type CardPatch struct {
	Title        *string   `json:"title,omitempty"`
	Content      *string   `json:"content,omitempty"`
	ColumnID     *string   `json:"columnId,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
	Dependencies *[]string `json:"dependencies,omitempty"`
	Subtasks     *[]string `json:"subtasks,omitempty"`
}

// CreateOp adds a new card. Reference, when non-empty, names the created
// card for later operations in the same batch via $ref:<reference>.
type CreateOp struct {
	Reference string         `json:"reference,omitempty"`
	ColumnID  types.ColumnID `json:"columnId"`
	Position  *int           `json:"position,omitempty"`
	Data      CardData       `json:"data"`
}

// UpdateOp merges field changes into an existing card. CardID may be a
// $ref: token.
type UpdateOp struct {
	CardID string    `json:"cardId"`
	Data   CardPatch `json:"data"`
}

// MoveOp relocates an existing card. CardID may be a $ref: token.
type MoveOp struct {
	CardID   string         `json:"cardId"`
	ColumnID types.ColumnID `json:"columnId"`
	Position position.Spec  `json:"position"`
}

// DeleteOp removes an existing card. CardID may be a $ref: token.
type DeleteOp struct {
	CardID string `json:"cardId"`
}

// UnmarshalJSON decodes one wire operation, dispatching on the "type"
// discriminator and rejecting unknown types at the boundary.
func (op *Operation) UnmarshalJSON(data []byte) error {
	var head struct {
		Type OpType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("invalid operation: %w", err)
	}

	switch head.Type {
	case OpCreate:
		var v CreateOp
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid create operation: %w", err)
		}
		*op = Operation{Type: OpCreate, Create: &v}
	case OpUpdate:
		var v UpdateOp
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid update operation: %w", err)
		}
		*op = Operation{Type: OpUpdate, Update: &v}
	case OpMove:
		var v MoveOp
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid move operation: %w", err)
		}
		*op = Operation{Type: OpMove, Move: &v}
	case OpDelete:
		var v DeleteOp
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid delete operation: %w", err)
		}
		*op = Operation{Type: OpDelete, Delete: &v}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, head.Type)
	}
	return nil
}

// MarshalJSON encodes the active variant with its type discriminator
func (op Operation) MarshalJSON() ([]byte, error) {
	switch op.Type {
	case OpCreate:
		return marshalTagged(op.Type, op.Create)
	case OpUpdate:
		return marshalTagged(op.Type, op.Update)
	case OpMove:
		return marshalTagged(op.Type, op.Move)
	case OpDelete:
		return marshalTagged(op.Type, op.Delete)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Type)
	}
}

func marshalTagged(t OpType, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tag, err := json.Marshal(map[string]OpType{"type": t})
	if err != nil {
		return nil, err
	}
	if string(body) == "{}" {
		return tag, nil
	}
	// splice the discriminator into the variant object
	merged := append(tag[:len(tag)-1], ',')
	merged = append(merged, body[1:]...)
	return merged, nil
}
