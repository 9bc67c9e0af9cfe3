package batch

import (
	"fmt"
	"strings"

	"github.com/tuckertucker/taskboard/internal/types"
)

// RefPrefix marks a batch-local symbolic reference inside a card-id field
const RefPrefix = "$ref:"

// Resolver maps batch-local references declared by create operations to the
// card ids generated for them, and substitutes $ref:<name> tokens in later
// operations. A reference must be declared before any operation consumes it;
// forward references are a resolution failure, not late binding.
type Resolver struct {
	refs map[string]types.CardID
}

// NewResolver creates an empty resolver
func NewResolver() *Resolver {
	return &Resolver{refs: map[string]types.CardID{}}
}

// Declare records the generated id for a reference name
func (r *Resolver) Declare(reference string, id types.CardID) {
	r.refs[reference] = id
}

// ResolveID substitutes a $ref: token with the declared card id.
// Plain ids pass through unchanged.
func (r *Resolver) ResolveID(raw string) (types.CardID, error) {
	if !strings.HasPrefix(raw, RefPrefix) {
		return types.CardID(raw), nil
	}
	name := strings.TrimPrefix(raw, RefPrefix)
	id, ok := r.refs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedReference, name)
	}
	return id, nil
}

// ResolveIDs substitutes $ref: tokens in a list of card-id values
func (r *Resolver) ResolveIDs(raw []string) ([]types.CardID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]types.CardID, len(raw))
	for i, v := range raw {
		id, err := r.ResolveID(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// Map returns a copy of the declared references, or nil when none were
// declared. Callers must be able to tell "no references" apart from an empty
// result, so the nil is deliberate.
func (r *Resolver) Map() map[string]types.CardID {
	if len(r.refs) == 0 {
		return nil
	}
	out := make(map[string]types.CardID, len(r.refs))
	for name, id := range r.refs {
		out[name] = id
	}
	return out
}
