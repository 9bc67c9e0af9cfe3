package batch

import (
	"github.com/tuckertucker/taskboard/internal/models"
	"github.com/tuckertucker/taskboard/internal/types"
)

// OperationResult records the outcome of one operation in a batch
type OperationResult struct {
	Index   int          `json:"index"`
	Type    OpType       `json:"type"`
	CardID  types.CardID `json:"cardId,omitempty"`
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Code    string       `json:"code,omitempty"`
}

// Result is the outcome of a whole batch. Success is true iff every
// operation succeeded; the board is persisted either way, so NewCards and
// ReferenceMap reflect whatever subset actually applied. ReferenceMap is nil
// when the batch declared no references.
type Result struct {
	Success      bool                    `json:"success"`
	Results      []OperationResult       `json:"results"`
	NewCards     []*models.Card          `json:"newCards"`
	ReferenceMap map[string]types.CardID `json:"referenceMap,omitempty"`
}
