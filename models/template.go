package models

import "time"

// CustomOption is a consultation-based variant of a template. Buying one
// entitles the customer to contact/scheduling details instead of a file.
type CustomOption struct {
	Name         string   `json:"name" bson:"name"`
	Price        float64  `json:"price" bson:"price"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Features     []string `json:"features,omitempty" bson:"features,omitempty"`
	CalendlyLink string   `json:"calendlyLink,omitempty" bson:"calendlyLink,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
}

// Template is a purchasable legal document template. FileURL points either
// into the cloud bucket (templates/ prefix) or a legacy local upload path.
type Template struct {
	TemplateID    string         `json:"templateId" bson:"templateId"`
	Title         string         `json:"title" bson:"title"`
	Description   string         `json:"description,omitempty" bson:"description,omitempty"`
	FileURL       string         `json:"fileUrl,omitempty" bson:"fileUrl,omitempty"`
	FileName      string         `json:"fileName,omitempty" bson:"fileName,omitempty"`
	FileSize      int64          `json:"fileSize,omitempty" bson:"fileSize,omitempty"`
	FileType      string         `json:"fileType,omitempty" bson:"fileType,omitempty"`
	PreviewURL    string         `json:"previewUrl,omitempty" bson:"previewUrl,omitempty"`
	Price         float64        `json:"price" bson:"price"`
	CustomOptions []CustomOption `json:"customOptions,omitempty" bson:"customOptions,omitempty"`
	CalendlyLink  string         `json:"calendlyLink,omitempty" bson:"calendlyLink,omitempty"`
	ContactEmail  string         `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	Downloads     int64          `json:"downloads" bson:"downloads"`
	Active        bool           `json:"active" bson:"active"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// HasCustomOptions reports whether the template defines any custom variants.
func (t *Template) HasCustomOptions() bool {
	return len(t.CustomOptions) > 0
}

// CustomOptionByName returns the defined option matching name, if any.
func (t *Template) CustomOptionByName(name string) (CustomOption, bool) {
	for _, opt := range t.CustomOptions {
		if opt.Name == name {
			return opt, true
		}
	}
	return CustomOption{}, false
}
