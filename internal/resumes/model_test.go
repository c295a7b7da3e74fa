package resumes

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCloneKeepsEmptySectionsPresent(t *testing.T) {
	r := NewResume("user-1", "")
	clone := r.Clone()

	if clone.Skills == nil || clone.Experience == nil || clone.Education == nil || clone.Projects == nil {
		t.Fatalf("expected empty section slices to stay non-nil, got %+v", clone)
	}
	if !reflect.DeepEqual(r, clone) {
		t.Fatalf("expected clone identical to source")
	}

	out, err := json.Marshal(clone)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"skills":[]`, `"experience":[]`, `"education":[]`, `"projects":[]`} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %s in serialized resume, got %s", want, out)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := NewResume("user-1", "Original")
	r.Skills = []string{"Go"}
	r.Experience = []Experience{{Company: "Acme", Position: "Engineer"}}

	clone := r.Clone()
	clone.Skills[0] = "Rust"
	clone.Experience[0].Company = "Initech"

	if r.Skills[0] != "Go" || r.Experience[0].Company != "Acme" {
		t.Fatalf("expected clone mutation to leave source untouched, got %+v", r)
	}
}
