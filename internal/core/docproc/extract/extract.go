// Package extract pulls canonical fields out of classified OCR text by
// running the rule cascade for the document type.
package extract

import (
	"strings"

	"github.com/sigortech/docuscan/internal/core/domain"
	"github.com/sigortech/docuscan/internal/core/docproc/normalize"
	"github.com/sigortech/docuscan/internal/core/docproc/rules"
)

type Extractor struct {
	lib *rules.Library
}

func New(lib *rules.Library) *Extractor {
	return &Extractor{lib: lib}
}

// Extract walks the rule cascade in order. For each field the first
// captured value that survives its kind's sanity filter wins; a rejected
// capture moves on to the next candidate instead of abandoning the
// field. Empty or garbage input yields a field set of nulls.
func (e *Extractor) Extract(docType domain.DocumentType, text string) domain.FieldSet {
	var fields domain.FieldSet

	for _, rule := range e.lib.ForType(docType) {
		if _, done := fields.Value(rule.Field); done {
			continue
		}
	patterns:
		for _, re := range rule.Patterns {
			for _, m := range re.FindAllStringSubmatch(text, -1) {
				value, ok := refine(rule.Kind, m[1])
				if !ok {
					continue
				}
				fields.Set(rule.Field, value)
				break patterns
			}
		}
	}

	fields.FillLegacyAliases()
	return fields
}

// refine normalizes a raw capture per its kind and reports whether the
// value passes the kind's sanity filter.
func refine(kind rules.ValueKind, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	switch kind {
	case rules.KindName:
		name := normalize.PersonName(raw)
		if !plausibleName(name) {
			return "", false
		}
		return name, true
	case rules.KindCompany:
		v := normalize.CompanyName(raw)
		return v, v != ""
	case rules.KindPolicyNumber:
		v := normalize.PolicyNumber(raw)
		return v, v != ""
	case rules.KindDate:
		v := normalize.Date(raw)
		return v, v != ""
	case rules.KindCurrency:
		if !strings.ContainsAny(raw, "0123456789") {
			return "", false
		}
		v := normalize.Currency(raw)
		return v, v != ""
	case rules.KindTCNumber:
		v := normalize.TCNumber(raw)
		return v, v != "" && normalize.ValidTCNumber(v)
	case rules.KindPhone:
		if digitCount(raw) < 10 {
			return "", false
		}
		v := normalize.Phone(raw)
		return v, v != ""
	case rules.KindPlate:
		v := normalize.Plate(raw)
		return v, v != ""
	case rules.KindAddress:
		v := normalize.Address(raw)
		return v, len([]rune(v)) >= 5
	default:
		v := strings.Join(strings.Fields(raw), " ")
		return v, v != ""
	}
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
