package templates

import (
	"testing"

	"github.com/Circulx/Fathom-Legal-sub001/models"
)

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name string
		tmpl models.Template
		want string
	}{
		{
			name: "stored filename wins",
			tmpl: models.Template{Title: "NDA", FileName: "mutual-nda-v3.docx", FileType: "application/pdf"},
			want: "mutual-nda-v3.docx",
		},
		{
			name: "stored filename is sanitized",
			tmpl: models.Template{FileName: "../../etc/agreement draft.pdf"},
			want: "agreement_draft.pdf",
		},
		{
			name: "title plus mime extension",
			tmpl: models.Template{Title: "Employment Agreement", FileType: "application/pdf"},
			want: "Employment_Agreement.pdf",
		},
		{
			name: "docx mime",
			tmpl: models.Template{Title: "NDA", FileType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
			want: "NDA.docx",
		},
		{
			name: "extension from stored reference when mime unknown",
			tmpl: models.Template{Title: "NDA", FileURL: "templates/abc123_nda.doc"},
			want: "NDA.doc",
		},
		{
			name: "pdf default when nothing else is known",
			tmpl: models.Template{Title: "NDA"},
			want: "NDA.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DownloadFilename(&tt.tmpl); got != tt.want {
				t.Errorf("DownloadFilename = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindTemplateItem(t *testing.T) {
	items := []models.OrderItem{
		{TemplateID: "tpl-1", Title: "NDA"},
		{TemplateID: "tpl-2", Title: "Employment Agreement"},
	}

	item, ok := findTemplateItem(items, "tpl-2")
	if !ok {
		t.Fatal("expected a match for tpl-2")
	}
	if item.Title != "Employment Agreement" {
		t.Errorf("wrong item returned: %+v", item)
	}

	if _, ok := findTemplateItem(items, "tpl-9"); ok {
		t.Error("unexpected match for unknown template")
	}
	if _, ok := findTemplateItem(nil, "tpl-1"); ok {
		t.Error("unexpected match in empty order")
	}
}
