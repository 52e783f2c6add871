package filemgr

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
)

// multipartUpload builds a parsed multipart file for handler-free testing.
func multipartUpload(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	file, header, err := req.FormFile("file")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestReadUploadDocument(t *testing.T) {
	content := []byte("%PDF-1.4 test")
	file, header := multipartUpload(t, "Mutual NDA (2026).pdf", "application/pdf", content)

	up, err := ReadUpload(file, header, FileDocument, 1<<20)
	if err != nil {
		t.Fatalf("ReadUpload: %v", err)
	}
	if !bytes.Equal(up.Data, content) {
		t.Error("content mismatch")
	}
	if up.ContentType != "application/pdf" {
		t.Errorf("content type = %s", up.ContentType)
	}
	if up.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", up.Size, len(content))
	}
	if !strings.HasSuffix(up.Name, ".pdf") {
		t.Errorf("name %q should keep the .pdf extension", up.Name)
	}
	for _, bad := range []string{" ", "(", ")", "/"} {
		if strings.Contains(up.Name, bad) {
			t.Errorf("unsafe character %q in name %q", bad, up.Name)
		}
	}
}

func TestReadUploadRejectsExtension(t *testing.T) {
	file, header := multipartUpload(t, "malware.exe", "application/pdf", []byte("x"))

	_, err := ReadUpload(file, header, FileDocument, 1<<20)
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("err = %v, want ErrInvalidExtension", err)
	}
}

func TestReadUploadRejectsMIME(t *testing.T) {
	file, header := multipartUpload(t, "nda.pdf", "application/zip", []byte("x"))

	_, err := ReadUpload(file, header, FileDocument, 1<<20)
	if !errors.Is(err, ErrInvalidMIME) {
		t.Errorf("err = %v, want ErrInvalidMIME", err)
	}
}

func TestReadUploadRejectsOversize(t *testing.T) {
	file, header := multipartUpload(t, "nda.pdf", "application/pdf", bytes.Repeat([]byte("a"), 100))

	_, err := ReadUpload(file, header, FileDocument, 99)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestReadUploadNamesAreUnique(t *testing.T) {
	f1, h1 := multipartUpload(t, "nda.pdf", "application/pdf", []byte("x"))
	f2, h2 := multipartUpload(t, "nda.pdf", "application/pdf", []byte("x"))

	u1, err := ReadUpload(f1, h1, FileDocument, 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	u2, err := ReadUpload(f2, h2, FileDocument, 1<<20)
	if err != nil {
		t.Fatal(err)
	}
	if u1.Name == u2.Name {
		t.Errorf("identical uploads produced identical names: %q", u1.Name)
	}
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	thumb, err := Thumbnail(buf.Bytes(), 320)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	decoded, format, err := image.Decode(bytes.NewReader(thumb))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %s, want jpeg", format)
	}
	if w := decoded.Bounds().Dx(); w != 320 {
		t.Errorf("width = %d, want 320", w)
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), 320); err == nil {
		t.Error("expected an error for non-image data")
	}
}
