package filemgr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// Upload is a validated in-memory file ready for the object store.
type Upload struct {
	Name        string
	Data        []byte
	ContentType string
	Size        int64
}

var safeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

func ensureSafeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = safeNameChars.ReplaceAllString(name, "")
	if name == "" {
		name = uuid.New().String()
	}
	return name + ext
}

func isExtensionAllowed(ext string, fileType FileType) bool {
	for _, a := range AllowedExtensions[fileType] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, fileType FileType) bool {
	for _, a := range AllowedMIMEs[fileType] {
		if mimeType == a {
			return true
		}
	}
	return false
}

// ReadUpload validates a multipart file against the rules for fileType and
// returns its bytes with a storage-safe, uniquified name.
func ReadUpload(file multipart.File, header *multipart.FileHeader, fileType FileType, maxSize int64) (*Upload, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, fileType) {
		return nil, fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, fileType)
	}

	mimeType := header.Header.Get("Content-Type")
	if !isMIMEAllowed(mimeType, fileType) {
		return nil, fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, fileType)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, maxSize)
	}

	name := ensureSafeFilename(header.Filename, ext)
	name = uuid.New().String()[:8] + "_" + name

	return &Upload{
		Name:        name,
		Data:        data,
		ContentType: mimeType,
		Size:        int64(len(data)),
	}, nil
}

// Thumbnail renders a JPEG preview thumbnail bounded to width w.
func Thumbnail(data []byte, w int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, w, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
