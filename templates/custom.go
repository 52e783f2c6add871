package templates

import "github.com/Circulx/Fathom-Legal-sub001/models"

// IsCustomPurchase decides whether a purchased line item was the
// consultation-based variant of a template rather than the downloadable file.
// All three legs must hold:
//
//  1. the template itself defines at least one custom option,
//  2. the line item carries the custom flag, and
//  3. the item names a custom option that the template actually defines.
//
// Any leg failing means the purchase is a standard file delivery. The
// conjunction is deliberate: a forged or stale client-side flag alone must
// never block a legitimate standard download, and a custom claim must be
// backed by the template as it exists now, not by embedded order data.
func IsCustomPurchase(tmpl *models.Template, item *models.OrderItem) bool {
	if tmpl == nil || item == nil {
		return false
	}
	if !tmpl.HasCustomOptions() {
		return false
	}
	if !item.IsCustom {
		return false
	}
	if item.CustomOptionName == "" {
		return false
	}
	_, defined := tmpl.CustomOptionByName(item.CustomOptionName)
	return defined
}

// CustomDelivery is what a custom purchaser receives instead of a file.
type CustomDelivery struct {
	CustomOptionName string `json:"customOptionName"`
	CalendlyLink     string `json:"calendlyLink,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	Instructions     string `json:"instructions"`
}

// ResolveCustomDelivery builds the contact/scheduling payload for a custom
// purchase. Item-level overrides win over template defaults; the instruction
// line follows scheduling > email > generic priority.
func ResolveCustomDelivery(tmpl *models.Template, item *models.OrderItem) CustomDelivery {
	d := CustomDelivery{
		CustomOptionName: item.CustomOptionName,
		CalendlyLink:     item.CalendlyLink,
		ContactEmail:     item.ContactEmail,
	}

	if opt, ok := tmpl.CustomOptionByName(item.CustomOptionName); ok {
		if d.CalendlyLink == "" {
			d.CalendlyLink = opt.CalendlyLink
		}
		if d.ContactEmail == "" {
			d.ContactEmail = opt.ContactEmail
		}
	}
	if d.CalendlyLink == "" {
		d.CalendlyLink = tmpl.CalendlyLink
	}
	if d.ContactEmail == "" {
		d.ContactEmail = tmpl.ContactEmail
	}

	switch {
	case d.CalendlyLink != "":
		d.Instructions = "Use the scheduling link to book your consultation."
	case d.ContactEmail != "":
		d.Instructions = "Write to the contact email to begin work on your custom template."
	default:
		d.Instructions = "Our team will reach out with contact information shortly."
	}
	return d
}
