// Package normalize canonicalizes field values pulled out of OCR text.
// Every function is total: garbage in yields an empty string, never a
// panic, so extraction can treat normalization failures as a missing
// value.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	datePattern      = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	dateShortPattern = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{2})$`)
	dateISOPattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	platePattern     = regexp.MustCompile(`^(\d{2,3})([A-ZÇĞİÖŞÜ]{1,3})(\d{2,4})$`)
	spaceRun         = regexp.MustCompile(`\s+`)
)

// Currency reduces Turkish monetary notation to a canonical dotted
// decimal string, e.g. "1.500,00 TL" -> "1500.00". The decimal separator
// is whichever of '.' or ',' occurs last; everything before it is treated
// as grouping.
func Currency(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			return r
		}
		return -1
	}, raw)
	if !strings.ContainsAny(cleaned, "0123456789") {
		return ""
	}

	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		cleaned = normalizeSingleSeparator(cleaned, ",")
	case lastDot >= 0:
		cleaned = normalizeSingleSeparator(cleaned, ".")
	}

	if strings.Count(cleaned, ".") > 1 {
		return ""
	}
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return ""
	}
	return cleaned
}

// normalizeSingleSeparator decides whether a lone separator kind groups
// thousands or marks decimals. A single occurrence followed by one or two
// digits is a decimal point, anything else is grouping.
func normalizeSingleSeparator(s, sep string) string {
	frac := s[strings.LastIndex(s, sep)+1:]
	if strings.Count(s, sep) == 1 && len(frac) >= 1 && len(frac) <= 2 {
		return strings.Replace(s, sep, ".", 1)
	}
	return strings.ReplaceAll(s, sep, "")
}

// Date canonicalizes dd.mm.yyyy, dd/mm/yyyy, dd-mm-yyyy, yyyy-mm-dd and
// two-digit-year variants to YYYY-MM-DD. Out-of-range components yield
// an empty string.
func Date(raw string) string {
	s := strings.TrimSpace(raw)
	var day, month, year int

	switch {
	case datePattern.MatchString(s):
		m := datePattern.FindStringSubmatch(s)
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
	case dateISOPattern.MatchString(s):
		m := dateISOPattern.FindStringSubmatch(s)
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
	case dateShortPattern.MatchString(s):
		m := dateShortPattern.FindStringSubmatch(s)
		day, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	default:
		return ""
	}

	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 || year > 2100 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Plate formats Turkish license plates as "34 ABC 123". Input that does
// not look like a plate is passed through untouched so a human can still
// read whatever OCR produced.
func Plate(raw string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	compact = upperTurkish(compact)

	m := platePattern.FindStringSubmatch(compact)
	if m == nil {
		return strings.TrimSpace(raw)
	}
	return m[1] + " " + m[2] + " " + m[3]
}

// TCNumber keeps only digits and requires exactly eleven of them.
// Checksum validity is a separate concern, see Valid.
func TCNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) != 11 {
		return ""
	}
	return digits
}

// Phone canonicalizes Turkish phone numbers to +90 form.
func Phone(raw string) string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := digitsOnly(raw)

	switch {
	case hasPlus && strings.HasPrefix(digits, "90") && len(digits) == 12:
		return "+" + digits
	case strings.HasPrefix(digits, "90") && len(digits) == 12:
		return "+" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		return "+90" + digits[1:]
	case len(digits) == 10:
		return "+90" + digits
	case digits == "":
		return ""
	default:
		return digits
	}
}

// PersonName strips non-letter noise and title-cases with Turkish
// casing rules (i/İ, ı/I).
func PersonName(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, raw)
	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = titleTurkish(w)
	}
	return strings.Join(words, " ")
}

// CompanyName uppercases with Turkish casing and collapses whitespace.
func CompanyName(raw string) string {
	return upperTurkish(collapseSpaces(raw))
}

// PolicyNumber uppercases and collapses whitespace. Structure varies per
// insurer, so no further shape is imposed.
func PolicyNumber(raw string) string {
	return upperTurkish(collapseSpaces(raw))
}

// Address collapses whitespace runs and trims.
func Address(raw string) string {
	return collapseSpaces(raw)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func upperTurkish(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'i':
			return 'İ'
		case 'ı':
			return 'I'
		}
		return unicode.ToUpper(r)
	}, s)
}

func lowerTurkish(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return unicode.ToLower(r)
}

func titleTurkish(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if i == 0 {
			switch r {
			case 'i':
				runes[i] = 'İ'
			case 'ı':
				runes[i] = 'I'
			default:
				runes[i] = unicode.ToUpper(r)
			}
			continue
		}
		runes[i] = lowerTurkish(r)
	}
	return string(runes)
}
