package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^FL-20260901-\d{4}$`)
	for i := 0; i < 20; i++ {
		got := GenerateOrderNumber(now)
		if !pattern.MatchString(got) {
			t.Fatalf("order number %q does not match FL-YYYYMMDD-NNNN", got)
		}
	}
}

func TestGenerateRandomDigitString(t *testing.T) {
	got := GenerateRandomDigitString(6)
	if len(got) != 6 {
		t.Fatalf("length = %d, want 6", len(got))
	}
	for _, r := range got {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit %q in %q", r, got)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"  Jane.Doe@Example.COM ": "jane.doe@example.com",
		"user@example.com":        "user@example.com",
		"   ":                     "",
	}
	for in, want := range tests {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"agreement.pdf":          "agreement.pdf",
		"../../etc/passwd":       "passwd",
		"my file (final)!.docx":  "my_file__final__.docx",
		"/tmp/upload/report.pdf": "report.pdf",
		"":                       "file",
	}
	for in, want := range tests {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContentDispositionASCII(t *testing.T) {
	got := ContentDisposition("agreement.pdf")
	want := `attachment; filename="agreement.pdf"`
	if got != want {
		t.Errorf("ContentDisposition = %q, want %q", got, want)
	}
}

func TestContentDispositionNonASCII(t *testing.T) {
	got := ContentDisposition("契約書.pdf")
	if !strings.Contains(got, "filename*=UTF-8''") {
		t.Errorf("missing RFC 5987 form: %q", got)
	}
	if !strings.HasPrefix(got, `attachment; filename="`) {
		t.Errorf("missing ASCII fallback: %q", got)
	}
}

func TestContentDispositionStripsQuotes(t *testing.T) {
	got := ContentDisposition(`my"file.pdf`)
	if strings.Count(got, `"`) != 2 {
		t.Errorf("embedded quote not stripped: %q", got)
	}
}

func TestExtensionForMIME(t *testing.T) {
	if ExtensionForMIME["application/pdf"] != ".pdf" {
		t.Error("pdf mapping missing")
	}
	if ExtensionForMIME["application/vnd.openxmlformats-officedocument.wordprocessingml.document"] != ".docx" {
		t.Error("docx mapping missing")
	}
	if got := ExtensionForMIME["application/zip"]; got != "" {
		t.Errorf("unexpected mapping for zip: %q", got)
	}
}
