package extract

import (
	"testing"

	"github.com/sigortech/docuscan/internal/core/domain"
	"github.com/sigortech/docuscan/internal/core/docproc/rules"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	lib, err := rules.Load()
	if err != nil {
		t.Fatalf("rules.Load() error = %v", err)
	}
	return New(lib)
}

func mustValue(t *testing.T, fields domain.FieldSet, name string) string {
	t.Helper()
	v, ok := fields.Value(name)
	if !ok {
		t.Fatalf("expected field %s to be set", name)
	}
	return v
}

func TestExtractPolicyBasics(t *testing.T) {
	text := "SİGORTA POLİÇESİ\n" +
		"Poliçe No: ABC-123\n" +
		"Başlangıç Tarihi: 01.01.2025\n" +
		"Bitiş Tarihi: 01.01.2026\n" +
		"Toplam Tutar: 1.500,00 TL\n"

	fields := newExtractor(t).Extract(domain.TypeInsurancePolicy, text)

	if got := mustValue(t, fields, "policy_number"); got != "ABC-123" {
		t.Errorf("policy_number = %q", got)
	}
	if got := mustValue(t, fields, "policy_start_date"); got != "2025-01-01" {
		t.Errorf("policy_start_date = %q", got)
	}
	if got := mustValue(t, fields, "policy_end_date"); got != "2026-01-01" {
		t.Errorf("policy_end_date = %q", got)
	}
	if got := mustValue(t, fields, "total_amount"); got != "1500.00" {
		t.Errorf("total_amount = %q", got)
	}

	if fields.StartDate == nil || *fields.StartDate != "2025-01-01" {
		t.Errorf("legacy start_date not mirrored: %v", fields.StartDate)
	}
	if fields.EndDate == nil || *fields.EndDate != "2026-01-01" {
		t.Errorf("legacy end_date not mirrored: %v", fields.EndDate)
	}
}

func TestExtractBareTutarLabelCapturesAmount(t *testing.T) {
	// Short policy summaries label the amount "Tutar" with no
	// Toplam/Ödenecek prefix; the last-resort pattern must catch it.
	text := "Poliçe No: ABC-123\nBaşlangıç Tarihi: 01.01.2025\nTutar: 1.500,00 TL"

	fields := newExtractor(t).Extract(domain.TypeInsurancePolicy, text)

	if got := mustValue(t, fields, "policy_number"); got != "ABC-123" {
		t.Errorf("policy_number = %q", got)
	}
	if got := mustValue(t, fields, "policy_start_date"); got != "2025-01-01" {
		t.Errorf("policy_start_date = %q", got)
	}
	if got := mustValue(t, fields, "total_amount"); got != "1500.00" {
		t.Errorf("total_amount = %q", got)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	fields := newExtractor(t).Extract(domain.TypeTrafikSigortasi, "")
	if fields.PolicyNumber != nil || fields.InsuredName != nil || fields.VehiclePlate != nil {
		t.Fatalf("expected all-null field set, got %+v", fields)
	}
}

func TestExtractRejectedNameAdvancesCascade(t *testing.T) {
	text := "Sigortalı Adı: Adı Soyadı\nMüşteri: MEHMET ÖZ\n"

	fields := newExtractor(t).Extract(domain.TypeInsurancePolicy, text)

	if got := mustValue(t, fields, "insured_name"); got != "Mehmet Öz" {
		t.Fatalf("insured_name = %q, want fallback past the label echo", got)
	}
	if fields.CustomerName == nil || *fields.CustomerName != "Mehmet Öz" {
		t.Fatalf("legacy customer_name not mirrored: %v", fields.CustomerName)
	}
}

func TestExtractTCNumberRequiresChecksum(t *testing.T) {
	// The first eleven-digit run fails the checksum, the second passes.
	text := "Referans 12345678901 kayıt\nkimlik 10000000146 dosyada\n"

	fields := newExtractor(t).Extract(domain.TypeInsurancePolicy, text)

	if got := mustValue(t, fields, "insured_tc_number"); got != "10000000146" {
		t.Fatalf("insured_tc_number = %q", got)
	}
}

func TestExtractAmountFilterAdvances(t *testing.T) {
	text := "Toplam: .,\nÖdenecek Tutar: 2.500,00 TL\n"

	fields := newExtractor(t).Extract(domain.TypeInsurancePolicy, text)

	if got := mustValue(t, fields, "total_amount"); got != "2500.00" {
		t.Fatalf("total_amount = %q", got)
	}
}

func TestExtractTrafikVehicleFields(t *testing.T) {
	text := "ZORUNLU TRAFİK SİGORTASI\n" +
		"Plaka: 34abc123\n" +
		"Marka: RENAULT\n" +
		"Model Yılı: 2021\n" +
		"Şasi No: NM0GXXTTFG1234567\n"

	fields := newExtractor(t).Extract(domain.TypeTrafikSigortasi, text)

	if got := mustValue(t, fields, "vehicle_plate"); got != "34 ABC 123" {
		t.Errorf("vehicle_plate = %q", got)
	}
	if got := mustValue(t, fields, "vehicle_year"); got != "2021" {
		t.Errorf("vehicle_year = %q", got)
	}
	if fields.PlateNumber == nil || *fields.PlateNumber != "34 ABC 123" {
		t.Errorf("legacy plate_number not mirrored: %v", fields.PlateNumber)
	}
	if got := mustValue(t, fields, "vehicle_chassis"); got != "NM0GXXTTFG1234567" {
		t.Errorf("vehicle_chassis = %q", got)
	}
}

func TestExtractPhoneNeedsTenDigits(t *testing.T) {
	short := newExtractor(t).Extract(domain.TypeInsurancePolicy, "Telefon: 12345\n")
	if short.InsuredPhone != nil {
		t.Fatalf("expected short phone to be rejected, got %v", *short.InsuredPhone)
	}

	full := newExtractor(t).Extract(domain.TypeInsurancePolicy, "Telefon: 0532 123 45 67\n")
	if got := mustValue(t, full, "insured_phone"); got != "+905321234567" {
		t.Fatalf("insured_phone = %q", got)
	}
}
