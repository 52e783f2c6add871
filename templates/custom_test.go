package templates

import (
	"testing"

	"github.com/Circulx/Fathom-Legal-sub001/models"
)

func templateWithOption() *models.Template {
	return &models.Template{
		TemplateID: "tpl-1",
		Title:      "Shareholder Agreement",
		CustomOptions: []models.CustomOption{
			{Name: "Premium Drafting", Price: 4999},
		},
	}
}

func TestIsCustomPurchase(t *testing.T) {
	tests := []struct {
		name string
		tmpl *models.Template
		item *models.OrderItem
		want bool
	}{
		{
			name: "all three conditions hold",
			tmpl: templateWithOption(),
			item: &models.OrderItem{TemplateID: "tpl-1", IsCustom: true, CustomOptionName: "Premium Drafting"},
			want: true,
		},
		{
			name: "template has no custom options",
			tmpl: &models.Template{TemplateID: "tpl-1"},
			item: &models.OrderItem{TemplateID: "tpl-1", IsCustom: true, CustomOptionName: "Premium Drafting"},
			want: false,
		},
		{
			name: "item flag not set",
			tmpl: templateWithOption(),
			item: &models.OrderItem{TemplateID: "tpl-1", CustomOptionName: "Premium Drafting"},
			want: false,
		},
		{
			name: "option name empty",
			tmpl: templateWithOption(),
			item: &models.OrderItem{TemplateID: "tpl-1", IsCustom: true},
			want: false,
		},
		{
			name: "option name not defined on template",
			tmpl: templateWithOption(),
			item: &models.OrderItem{TemplateID: "tpl-1", IsCustom: true, CustomOptionName: "Gone"},
			want: false,
		},
		{
			name: "nil template",
			tmpl: nil,
			item: &models.OrderItem{TemplateID: "tpl-1", IsCustom: true, CustomOptionName: "Premium Drafting"},
			want: false,
		},
		{
			name: "nil item",
			tmpl: templateWithOption(),
			item: nil,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCustomPurchase(tt.tmpl, tt.item); got != tt.want {
				t.Errorf("IsCustomPurchase = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveCustomDeliveryItemOverrides(t *testing.T) {
	tmpl := templateWithOption()
	tmpl.CustomOptions[0].CalendlyLink = "https://calendly.com/option"
	tmpl.CalendlyLink = "https://calendly.com/template"
	item := &models.OrderItem{
		CustomOptionName: "Premium Drafting",
		CalendlyLink:     "https://calendly.com/item",
	}

	d := ResolveCustomDelivery(tmpl, item)
	if d.CalendlyLink != "https://calendly.com/item" {
		t.Errorf("item override lost, got %s", d.CalendlyLink)
	}
	if d.Instructions != "Use the scheduling link to book your consultation." {
		t.Errorf("unexpected instructions %q", d.Instructions)
	}
}

func TestResolveCustomDeliveryOptionThenTemplate(t *testing.T) {
	tmpl := templateWithOption()
	tmpl.CustomOptions[0].ContactEmail = "drafting@example.com"
	tmpl.ContactEmail = "office@example.com"
	item := &models.OrderItem{CustomOptionName: "Premium Drafting"}

	d := ResolveCustomDelivery(tmpl, item)
	if d.ContactEmail != "drafting@example.com" {
		t.Errorf("option value not preferred, got %s", d.ContactEmail)
	}

	// Drop the option value; the template default takes over.
	tmpl.CustomOptions[0].ContactEmail = ""
	d = ResolveCustomDelivery(tmpl, item)
	if d.ContactEmail != "office@example.com" {
		t.Errorf("template fallback not used, got %s", d.ContactEmail)
	}
	if d.Instructions != "Write to the contact email to begin work on your custom template." {
		t.Errorf("unexpected instructions %q", d.Instructions)
	}
}

func TestResolveCustomDeliveryGenericInstructions(t *testing.T) {
	tmpl := templateWithOption()
	item := &models.OrderItem{CustomOptionName: "Premium Drafting"}

	d := ResolveCustomDelivery(tmpl, item)
	if d.CalendlyLink != "" || d.ContactEmail != "" {
		t.Fatalf("expected no contact details, got %+v", d)
	}
	if d.Instructions != "Our team will reach out with contact information shortly." {
		t.Errorf("unexpected instructions %q", d.Instructions)
	}
}

func TestResolveCustomDeliverySchedulingBeatsEmail(t *testing.T) {
	tmpl := templateWithOption()
	tmpl.CalendlyLink = "https://calendly.com/template"
	tmpl.ContactEmail = "office@example.com"
	item := &models.OrderItem{CustomOptionName: "Premium Drafting"}

	d := ResolveCustomDelivery(tmpl, item)
	if d.Instructions != "Use the scheduling link to book your consultation." {
		t.Errorf("scheduling link should take priority, got %q", d.Instructions)
	}
}
