package recognize

import "fmt"

const simulationConfidence = 35.0

// simulationText is a deterministic sample policy used when OCR is
// unreachable, so local environments without an API key still exercise
// classification and extraction end to end.
func simulationText(filename string) string {
	return fmt.Sprintf(`SİGORTA POLİÇESİ (SİMÜLASYON - %s)
Poliçe No: SIM-2024-001
Sigortalı Adı Soyadı: AYŞE ÖRNEK
Başlangıç Tarihi: 01.01.2024
Bitiş Tarihi: 01.01.2025
Toplam Tutar: 1.250,00 TL
`, filename)
}
