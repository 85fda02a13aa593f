package service

import (
	"strings"
	"testing"
)

func TestValidateCVLengthWindow(t *testing.T) {
	svc := NewCVService()

	if err := svc.ValidateCV(strings.Repeat("a", 99)); err == nil {
		t.Error("99-character resume should be rejected")
	}

	// Exactly 100 characters including a keyword.
	text := "experience" + strings.Repeat("a", 90)
	if len(text) != 100 {
		t.Fatalf("fixture length = %d", len(text))
	}
	if err := svc.ValidateCV(text); err != nil {
		t.Errorf("100-character resume rejected: %v", err)
	}

	long := "experience" + strings.Repeat("a", 10000)
	if err := svc.ValidateCV(long); err == nil {
		t.Error("resume above 10000 characters should be rejected")
	}
}

func TestValidateCVTrimsWhitespaceForMinimum(t *testing.T) {
	svc := NewCVService()

	padded := strings.Repeat(" ", 80) + "experience work skills" + strings.Repeat(" ", 80)
	if err := svc.ValidateCV(padded); err == nil {
		t.Error("whitespace padding must not count toward the minimum")
	}
}

func TestValidateCVKeywordCheck(t *testing.T) {
	svc := NewCVService()

	noKeywords := strings.Repeat("lorem ipsum dolor sit amet ", 10)
	if err := svc.ValidateCV(noKeywords); err == nil {
		t.Error("resume without experience or skill keywords should be rejected")
	}

	cases := []string{"experience", "Work", "PENGALAMAN", "kerja", "skill", "kemampuan", "keahlian", "kompeten"}
	for _, kw := range cases {
		text := kw + " " + strings.Repeat("lorem ipsum dolor sit amet ", 10)
		if err := svc.ValidateCV(text); err != nil {
			t.Errorf("keyword %q not accepted: %v", kw, err)
		}
	}
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	svc := NewCVService()

	_, err := svc.ExtractPDF(strings.NewReader("this is not a pdf"))
	if err == nil {
		t.Fatal("non-PDF input should fail extraction")
	}
}
