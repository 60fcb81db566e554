package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectRef_UnmarshalJSON(t *testing.T) {
	data := `[{"id":"p1","name":"Alpha"},{"_id":"65f1","name":"Beta"},{"id":"p3","_id":"ignored","name":"Gamma"}]`

	var got []ProjectRef
	if err := json.Unmarshal([]byte(data), &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := []ProjectRef{
		{ID: "p1", Name: "Alpha"},
		{ID: "65f1", Name: "Beta"},
		{ID: "p3", Name: "Gamma"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProjectRef mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectRef_MarshalUsesID(t *testing.T) {
	out, err := json.Marshal(ProjectRef{ID: "p1", Name: "Alpha"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `{"id":"p1","name":"Alpha"}` {
		t.Errorf("got %s", out)
	}
}
