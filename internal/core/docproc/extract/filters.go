package extract

import (
	"strings"
	"unicode"
)

// labelWords are form labels that OCR smears into the value column. A
// captured "name" containing any of them is a mis-read label, not a
// person.
var labelWords = map[string]bool{
	"ad": true, "adı": true, "soyad": true, "soyadı": true,
	"müşteri": true, "sigortalı": true, "sigortalının": true,
	"adres": true, "adresi": true, "telefon": true,
	"tc": true, "tckn": true, "vkn": true, "ykn": true,
	"no": true, "numara": true, "numarası": true,
}

func plausibleName(name string) bool {
	n := len([]rune(name))
	if n < 2 || n > 50 {
		return false
	}
	for _, word := range strings.Fields(lowerTurkish(name)) {
		if labelWords[word] {
			return false
		}
	}
	return true
}

func lowerTurkish(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'I':
			return 'ı'
		case 'İ':
			return 'i'
		}
		return unicode.ToLower(r)
	}, s)
}
