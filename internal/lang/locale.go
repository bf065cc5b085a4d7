package lang

import "unicode"

// Locale identifies the language a question was asked in and the language
// the answer must be rendered in. It is fixed once per request.
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// arabicRanges covers the Arabic, Arabic Supplement and Arabic Extended-A
// Unicode blocks.
var arabicRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
	},
}

// Detect classifies text as Arabic or English. A single code point inside
// the Arabic blocks is enough to select Arabic; everything else is English.
func Detect(text string) Locale {
	for _, r := range text {
		if unicode.Is(arabicRanges, r) {
			return LocaleArabic
		}
	}
	return LocaleEnglish
}
