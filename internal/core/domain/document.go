package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// DocumentType is the recognized insurance document class.
type DocumentType string

const (
	TypeTrafikSigortasi DocumentType = "trafik"
	TypeKaskoSigortasi  DocumentType = "kasko"
	TypeDepremSigortasi DocumentType = "deprem"
	TypeHasarRaporu     DocumentType = "hasar"
	TypeEkspertizRaporu DocumentType = "ekspertiz"
	TypeInsurancePolicy DocumentType = "insurance_policy"
)

// ExtractionMethod records how the raw text was obtained.
type ExtractionMethod string

const (
	MethodPDFText    ExtractionMethod = "pdf_text"
	MethodOCRSpace   ExtractionMethod = "ocr_space"
	MethodSimulation ExtractionMethod = "simulation"
)

type Document struct {
	ID           string           `json:"id"`
	Filename     string           `json:"filename"`
	MimeType     string           `json:"mime_type"`
	SizeBytes    int64            `json:"size_bytes"`
	StoragePath  string           `json:"storage_path"`
	Status       DocumentStatus   `json:"status"`
	DocumentType DocumentType     `json:"document_type,omitempty"`
	Method       ExtractionMethod `json:"extraction_method,omitempty"`
	Confidence   float64          `json:"confidence,omitempty"`
	Extraction   *Extraction      `json:"extraction,omitempty"`
	Error        string           `json:"error,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Extraction is the persisted processing result for one document.
type Extraction struct {
	RawText      string           `json:"raw_text"`
	DocumentType DocumentType     `json:"document_type"`
	Method       ExtractionMethod `json:"extraction_method"`
	Confidence   float64          `json:"confidence"`
	Fields       FieldSet         `json:"extracted_fields"`
}

// RecognizedText is the output of the text recognition stage, before
// classification and field extraction.
type RecognizedText struct {
	Text       string
	Method     ExtractionMethod
	Confidence float64
}

// ListFilter narrows document listings.
type ListFilter struct {
	Status       DocumentStatus
	DocumentType DocumentType
	Limit        int
}
