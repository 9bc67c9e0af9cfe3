package position

import (
	"encoding/json"
	"testing"
)

func TestParseAcceptsKeywordsAndIndices(t *testing.T) {
	spec, err := Parse("first")
	if err != nil {
		t.Fatalf("Parse(first) failed: %v", err)
	}
	if spec.IsNumeric() || spec.Word() != First {
		t.Errorf("expected keyword first, got %v", spec)
	}

	spec, err = Parse("7")
	if err != nil {
		t.Fatalf("Parse(7) failed: %v", err)
	}
	if !spec.IsNumeric() || spec.Index() != 7 {
		t.Errorf("expected index 7, got %v", spec)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "top", "-1", "1.5"} {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) should fail", raw)
		}
	}
}

func TestSpecUnmarshalNumber(t *testing.T) {
	var spec Spec
	if err := json.Unmarshal([]byte(`3`), &spec); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if !spec.IsNumeric() || spec.Index() != 3 {
		t.Errorf("expected index 3, got %v", spec)
	}
}

func TestSpecUnmarshalKeyword(t *testing.T) {
	var spec Spec
	if err := json.Unmarshal([]byte(`"last"`), &spec); err != nil {
		t.Fatalf("unmarshal keyword failed: %v", err)
	}
	if spec.Word() != Last {
		t.Errorf("expected last, got %v", spec)
	}
}

func TestSpecUnmarshalRejectsNegativeAndUnknown(t *testing.T) {
	var spec Spec
	if err := json.Unmarshal([]byte(`-2`), &spec); err == nil {
		t.Error("negative index should be rejected")
	}
	if err := json.Unmarshal([]byte(`"middle"`), &spec); err == nil {
		t.Error("unknown keyword should be rejected")
	}
	if err := json.Unmarshal([]byte(`true`), &spec); err == nil {
		t.Error("non string/number should be rejected")
	}
}

func TestSpecMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(At(4))
	if err != nil || string(out) != "4" {
		t.Errorf("expected 4, got %s (%v)", out, err)
	}
	out, err = json.Marshal(Keyword(Up))
	if err != nil || string(out) != `"up"` {
		t.Errorf("expected \"up\", got %s (%v)", out, err)
	}
}
