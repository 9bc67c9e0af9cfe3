package position

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Spec is a user-facing position specification: either an explicit
// non-negative index or one of the keywords "first", "last", "up", "down".
// The zero value is invalid; construct through At, Keyword or UnmarshalJSON.
type Spec struct {
	keyword string
	index   int
	numeric bool
}

// Keyword values accepted in a Spec
const (
	First = "first"
	Last  = "last"
	Up    = "up"
	Down  = "down"
)

// At returns a Spec for an explicit index
func At(i int) Spec {
	return Spec{index: i, numeric: true}
}

// Keyword returns a Spec for one of the keyword values.
// The keyword is not validated here; Parse and UnmarshalJSON validate input
// at the boundary, and the move engine rejects anything it does not know.
func Keyword(kw string) Spec {
	return Spec{keyword: kw}
}

// IsNumeric reports whether the spec carries an explicit index
func (s Spec) IsNumeric() bool { return s.numeric }

// Index returns the explicit index; only meaningful when IsNumeric
func (s Spec) Index() int { return s.index }

// Word returns the keyword; empty when the spec is numeric
func (s Spec) Word() string { return s.keyword }

func (s Spec) String() string {
	if s.numeric {
		return strconv.Itoa(s.index)
	}
	return s.keyword
}

// Parse converts a string into a Spec, accepting a non-negative integer or
// one of the keywords. Used by the CLI.
func Parse(raw string) (Spec, error) {
	switch raw {
	case First, Last, Up, Down:
		return Keyword(raw), nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return Spec{}, fmt.Errorf("invalid position %q: expected a non-negative integer or first|last|up|down", raw)
	}
	return At(i), nil
}

// UnmarshalJSON accepts either a JSON number or one of the keyword strings,
// matching the operation wire format.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		if i < 0 {
			return fmt.Errorf("invalid position %d: must be >= 0", i)
		}
		*s = At(i)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid position: expected integer or string")
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON emits the integer or keyword form
func (s Spec) MarshalJSON() ([]byte, error) {
	if s.numeric {
		return json.Marshal(s.index)
	}
	return json.Marshal(s.keyword)
}
