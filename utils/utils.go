package utils

import (
	rndm "math/rand"
	"net/url"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// GenerateOrderNumber returns a human-readable order number like
// FL-20260901-4821. Uniqueness is backed by a unique index on orderNumber.
func GenerateOrderNumber(now time.Time) string {
	return "FL-" + now.Format("20060102") + "-" + GenerateRandomDigitString(4)
}

// NormalizeEmail trims whitespace and lowercases an address so purchaser
// lookups match regardless of how the email was typed at checkout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- Filenames ---

var unsafeFilenameChars = regexp.MustCompile(`[^\w.\-]`)

// SanitizeFilename strips path components and unsafe characters.
func SanitizeFilename(name string) string {
	clean := unsafeFilenameChars.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" {
		return "file"
	}
	return clean
}

// ExtensionForMIME maps known template MIME types to a download extension,
// used when a stored filename is missing.
var ExtensionForMIME = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"text/plain": ".txt",
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

// ContentDisposition builds an attachment header value. Non-ASCII names get
// the RFC 5987 filename* form alongside an ASCII fallback.
func ContentDisposition(filename string) string {
	if isASCII(filename) {
		return `attachment; filename="` + strings.ReplaceAll(filename, `"`, "") + `"`
	}
	fallback := unsafeFilenameChars.ReplaceAllString(filename, "_")
	return `attachment; filename="` + fallback + `"; filename*=UTF-8''` + url.PathEscape(filename)
}

// Contains reports whether slice holds value.
func Contains(slice []string, value string) bool {
	return slices.Contains(slice, value)
}
