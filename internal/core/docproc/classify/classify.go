// Package classify decides the insurance document class from raw OCR
// text.
package classify

import (
	"regexp"

	"github.com/sigortech/docuscan/internal/core/domain"
)

type signature struct {
	docType  domain.DocumentType
	patterns []*regexp.Regexp
}

// Signatures are evaluated in order and the first hit wins, so more
// specific classes must precede broader ones. OCR frequently swaps
// İ and I, hence the explicit classes.
var signatures = []signature{
	{
		docType: domain.TypeTrafikSigortasi,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)zorunlu[:\s]+traf[iı]k[:\s]+s[iı]gortas[ıi]`),
			regexp.MustCompile(`(?i)karayollar[ıi]\s+motorlu\s+ara[çc]lar`),
			regexp.MustCompile(`(?i)traf[iı]k\s+s[iı]gorta\s+pol[iı][çc]es[iı]`),
		},
	},
	{
		docType: domain.TypeKaskoSigortasi,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)kasko\s+s[iı]gorta(?:s[ıi])?`),
			regexp.MustCompile(`(?i)kasko\s+pol[iı][çc]e`),
			regexp.MustCompile(`(?i)geni[şs]letilmi[şs]\s+kasko`),
		},
	},
	{
		docType: domain.TypeDepremSigortasi,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)zorunlu\s+deprem\s+s[iı]gortas[ıi]`),
			regexp.MustCompile(`(?i)\bdask\b`),
			regexp.MustCompile(`(?i)deprem\s+pol[iı][çc]e`),
		},
	},
	{
		docType: domain.TypeHasarRaporu,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)hasar\s+(?:tespit\s+)?raporu`),
			regexp.MustCompile(`(?i)hasar\s+dosya\s+no`),
		},
	},
	{
		docType: domain.TypeEkspertizRaporu,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ekspert[iı]z\s+raporu`),
			regexp.MustCompile(`(?i)eksper\s+g[öo]r[üu][şs][üu]`),
		},
	},
}

// Classifier adapts Detect to the document pipeline's classifier port.
type Classifier struct{}

func NewClassifier() Classifier {
	return Classifier{}
}

func (Classifier) Classify(text string) domain.DocumentType {
	return Detect(text)
}

// Detect scans the signatures in registration order. Text that matches
// nothing classifies as a generic insurance policy.
func Detect(text string) domain.DocumentType {
	for _, sig := range signatures {
		for _, re := range sig.patterns {
			if re.MatchString(text) {
				return sig.docType
			}
		}
	}
	return domain.TypeInsurancePolicy
}
