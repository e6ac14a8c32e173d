package types

import "testing"

func TestResource_SetStatus(t *testing.T) {
	r := &Resource{Status: ResourceStatusDraft}

	if err := r.SetStatus(ResourceStatusLive); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := r.SetStatus("RETIRED"); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if r.Status != ResourceStatusLive {
		t.Error("failed SetStatus must not modify the status")
	}
}

func TestResource_Publish(t *testing.T) {
	r := &Resource{Status: ResourceStatusDraft}

	if err := r.Publish(); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if r.Status != ResourceStatusLive {
		t.Errorf("Status = %q, want LIVE", r.Status)
	}

	// Idempotent.
	if err := r.Publish(); err != nil {
		t.Errorf("second Publish should not error, got %v", err)
	}
}

func TestValidResourceType(t *testing.T) {
	for _, rt := range []string{ResourceTypeTextbook, ResourceTypePastPaper, ResourceTypeStudyGuide} {
		if !ValidResourceType(rt) {
			t.Errorf("%q should be valid", rt)
		}
	}
	if ValidResourceType("WORKSHEET") {
		t.Error("WORKSHEET should be invalid")
	}
}
