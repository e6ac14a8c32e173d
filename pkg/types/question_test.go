package types

import "testing"

func TestQuestion_Publish(t *testing.T) {
	q := &Question{Status: QuestionStatusDraft}

	if err := q.Publish(); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if q.Status != QuestionStatusLive {
		t.Errorf("Status = %q, want LIVE", q.Status)
	}

	// Publishing a live question is not a valid transition.
	if err := q.Publish(); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestQuestion_Unpublish(t *testing.T) {
	q := &Question{Status: QuestionStatusLive}

	if err := q.Unpublish(); err != nil {
		t.Fatalf("Unpublish failed: %v", err)
	}
	if q.Status != QuestionStatusDraft {
		t.Errorf("Status = %q, want DRAFT", q.Status)
	}

	// Idempotent on drafts.
	if err := q.Unpublish(); err != nil {
		t.Errorf("second Unpublish should not error, got %v", err)
	}
}

func TestQuestion_SetStatus(t *testing.T) {
	q := &Question{Status: QuestionStatusDraft}

	if err := q.SetStatus(QuestionStatusLive); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if err := q.SetStatus("ARCHIVED"); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if q.Status != QuestionStatusLive {
		t.Error("failed SetStatus must not modify the status")
	}
}

func TestValidQuestionType(t *testing.T) {
	for _, qt := range []string{QuestionTypeMCQ, QuestionTypeStructured, QuestionTypeTrueFalse} {
		if !ValidQuestionType(qt) {
			t.Errorf("%q should be valid", qt)
		}
	}
	if ValidQuestionType("ESSAY") {
		t.Error("ESSAY should be invalid")
	}
}
