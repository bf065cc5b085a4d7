package lang

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Locale
	}{
		{"english", "Who is selling the cheapest Wheat Straw?", LocaleEnglish},
		{"arabic", "من يبيع أرخص قش القمح؟", LocaleArabic},
		{"mixed", "price of الشعير in UAE", LocaleArabic},
		{"empty", "", LocaleEnglish},
		{"digits and punctuation", "12.50 USD/kg!", LocaleEnglish},
		{"arabic supplement block", "ݐ", LocaleArabic},
		{"arabic extended-a block", "ࢠ", LocaleArabic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.text); got != tc.want {
				t.Fatalf("Detect(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
