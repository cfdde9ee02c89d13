package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAppliedJobAlwaysSerializesAssociations(t *testing.T) {
	// Association objects are part of the response shape whether or not
	// they were preloaded; consumers key into them unconditionally.
	out, err := json.Marshal(AppliedJob{ID: "a1"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"job":`, `"user":`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("serialized AppliedJob missing %s: %s", key, out)
		}
	}
}
