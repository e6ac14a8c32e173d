package types

import "testing"

func TestContent_SetType(t *testing.T) {
	c := &Content{Type: ContentTypeChapter}

	for _, ct := range []string{
		ContentTypeChapter,
		ContentTypeSection,
		ContentTypePage,
		ContentTypeExercise,
	} {
		if err := c.SetType(ct); err != nil {
			t.Errorf("SetType(%q) failed: %v", ct, err)
		}
		if c.Type != ct {
			t.Errorf("Type = %q, want %q", c.Type, ct)
		}
	}

	if err := c.SetType("LESSON"); err != ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestContent_Retitle(t *testing.T) {
	c := &Content{Title: "Algebra"}

	if err := c.Retitle("Trigonometry"); err != nil {
		t.Fatalf("Retitle failed: %v", err)
	}
	if c.Title != "Trigonometry" {
		t.Errorf("Title = %q, want Trigonometry", c.Title)
	}
	if c.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}

	if err := c.Retitle(""); err != ErrInvalidTitle {
		t.Errorf("expected ErrInvalidTitle, got %v", err)
	}
	if c.Title != "Trigonometry" {
		t.Error("failed Retitle must not modify the title")
	}
}

func TestContent_TopLevel(t *testing.T) {
	top := &Content{ResourceID: "r1"}
	if !top.TopLevel() {
		t.Error("node without parent should be top-level")
	}

	child := &Content{ResourceID: "r1", ParentID: "c1"}
	if child.TopLevel() {
		t.Error("node with parent should not be top-level")
	}
}

func TestValidContentType(t *testing.T) {
	if !ValidContentType(ContentTypePage) {
		t.Error("PAGE should be valid")
	}
	if ValidContentType("") || ValidContentType("page") {
		t.Error("empty and lowercase types should be invalid")
	}
}
