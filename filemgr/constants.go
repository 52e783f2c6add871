package filemgr

import "errors"

type EntityType string
type FileType string

const (
	EntityTemplate EntityType = "template"
	EntityBlog     EntityType = "blog"
	EntityGallery  EntityType = "gallery"

	FileDocument FileType = "document"
	FilePreview  FileType = "preview"
	FilePhoto    FileType = "photo"
)

var (
	AllowedExtensions = map[FileType][]string{
		FileDocument: {".pdf", ".doc", ".docx", ".txt"},
		FilePreview:  {".jpg", ".jpeg", ".png", ".webp"},
		FilePhoto:    {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}

	AllowedMIMEs = map[FileType][]string{
		FileDocument: {
			"application/pdf", "application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
		FilePreview: {"image/jpeg", "image/png", "image/webp"},
		FilePhoto:   {"image/jpeg", "image/png", "image/gif", "image/webp"},
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)
