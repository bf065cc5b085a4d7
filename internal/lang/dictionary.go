package lang

import "sort"

// Term maps a source-language token to its canonical English form.
type Term struct {
	Text      string
	Canonical string
}

// Dictionary holds the static bilingual lookup tables used for
// normalization, entity extraction and answer rendering. It is built once
// at process start and is read-only afterwards.
type Dictionary struct {
	arabicProducts  []Term
	arabicCountries []Term
	arabicIdioms    []Term

	productPriority []string
	countryKeywords []Term

	countryArabic map[string]string
	typeArabic    map[string]string
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		arabicProducts:  sortByLengthDesc(arabicProductTerms),
		arabicCountries: sortByLengthDesc(arabicCountryTerms),
		arabicIdioms:    sortByLengthDesc(arabicIdiomTerms),
		productPriority: productPriority,
		countryKeywords: countryKeywords,
		countryArabic:   countryArabic,
		typeArabic:      typeArabic,
	}
}

// ArabicProducts returns Arabic product terms, longest first.
func (d *Dictionary) ArabicProducts() []Term { return d.arabicProducts }

// ArabicCountries returns Arabic country terms, longest first.
func (d *Dictionary) ArabicCountries() []Term { return d.arabicCountries }

// ArabicIdioms returns Arabic question idioms, longest first.
func (d *Dictionary) ArabicIdioms() []Term { return d.arabicIdioms }

// ProductPriority returns the canonical English product terms in extraction
// priority order: multi-word terms come before the bare words they contain.
func (d *Dictionary) ProductPriority() []string { return d.productPriority }

// CountryKeywords returns English country keywords paired with the
// canonical display name, in extraction priority order.
func (d *Dictionary) CountryKeywords() []Term { return d.countryKeywords }

// CountryDisplay translates a canonical country name for the given locale.
func (d *Dictionary) CountryDisplay(name string, loc Locale) string {
	if loc == LocaleArabic {
		if translated, ok := d.countryArabic[name]; ok {
			return translated
		}
	}
	return name
}

// TypeDisplay translates a product type (Fodder, Concentrate, Additive)
// for the given locale.
func (d *Dictionary) TypeDisplay(name string, loc Locale) string {
	if loc == LocaleArabic {
		if translated, ok := d.typeArabic[name]; ok {
			return translated
		}
	}
	return name
}

// sortByLengthDesc orders terms so that longer entries are substituted and
// matched before any shorter entry they contain. Ties break lexically to
// keep the order deterministic.
func sortByLengthDesc(terms []Term) []Term {
	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Text) != len(sorted[j].Text) {
			return len(sorted[i].Text) > len(sorted[j].Text)
		}
		return sorted[i].Text < sorted[j].Text
	})
	return sorted
}

var arabicProductTerms = []Term{
	{"برسيم", "Alfalfa"},
	{"تبن البرسيم", "Alfalfa hay"},
	{"قش القمح", "Wheat Straw"},
	{"قش", "Straw"},
	{"القمح", "Wheat"},
	{"الشعير", "Barley"},
	{"شعير", "Barley"},
	{"الذرة", "Corn"},
	{"ذرة", "Corn"},
	{"فول الصويا", "Soybean"},
	{"صويا", "Soybean"},
	{"الشوفان", "Oat"},
	{"شوفان", "Oat"},
	{"نخالة القمح", "Wheat Bran"},
	{"نخالة", "Bran"},
	{"بذور القطن", "Cotton Seed"},
	{"قطن", "Cotton"},
	{"دبس السكر", "Molasses"},
	{"دبس", "Molasses"},
	{"الحجر الجيري", "Limestone"},
	{"الملح", "Salt"},
	{"ملح", "Salt"},
	{"اليوريا", "Urea"},
	{"علف مركز", "Concentrate"},
	{"علف خشن", "Fodder"},
	{"علف", "Feed"},
	{"مضافات", "Additive"},
}

var arabicCountryTerms = []Term{
	{"الإمارات", "UAE"},
	{"الامارات", "UAE"},
	{"دبي", "UAE"},
	{"أبوظبي", "UAE"},
	{"السعودية", "Saudi Arabia"},
	{"المملكة العربية السعودية", "Saudi Arabia"},
	{"مصر", "Egypt"},
	{"قطر", "Qatar"},
	{"البحرين", "Bahrain"},
	{"الكويت", "Kuwait"},
	{"عمان", "Oman"},
	{"الأردن", "Jordan"},
	{"الاردن", "Jordan"},
	{"المغرب", "Morocco"},
	{"تونس", "Tunisia"},
	{"الجزائر", "Algeria"},
	{"ليبيا", "Libya"},
}

var arabicIdiomTerms = []Term{
	{"من يبيع", "who is selling"},
	{"من الذي يبيع", "who is selling"},
	{"اين اجد", "where can I find"},
	{"أين أجد", "where can I find"},
	{"ما هو سعر", "what is the price of"},
	{"ما سعر", "what is the price of"},
	{"كم سعر", "what is the price of"},
	{"الأرخص", "cheapest"},
	{"ارخص", "cheapest"},
	{"أرخص", "cheapest"},
	{"الأغلى", "most expensive"},
	{"متوسط السعر", "average price"},
	{"متوسط سعر", "average price"},
	{"أفضل وقت", "best time"},
	{"افضل وقت", "best time"},
	{"للشراء", "to buy"},
	{"المورد", "supplier"},
	{"الموردين", "suppliers"},
	{"في", "in"},
	{"من", "from"},
	{"ما هي", "what are"},
	{"ماهي", "what are"},
	{"أظهر", "show"},
	{"اظهر", "show"},
	{"قائمة", "list"},
	{"اسعار", "prices"},
	{"أسعار", "prices"},
	{"تاريخي", "historical"},
	{"التاريخي", "historical"},
}

var productPriority = []string{
	"alfalfa hay", "alfalfa", "wheat straw", "barley flakes", "barley",
	"corn silage", "corn gluten", "corn", "soya bean meal", "soybean",
	"oat hay", "wheat bran", "wheat grain", "cotton seed", "beet pulp",
	"triticale", "molasses", "limestone", "salt", "urea", "maize",
}

var countryKeywords = []Term{
	{"uae", "UAE"},
	{"emirates", "UAE"},
	{"dubai", "UAE"},
	{"abu dhabi", "UAE"},
	{"saudi arabia", "Saudi Arabia"},
	{"saudi", "Saudi Arabia"},
	{"egypt", "Egypt"},
	{"qatar", "Qatar"},
	{"bahrain", "Bahrain"},
	{"kuwait", "Kuwait"},
	{"oman", "Oman"},
	{"jordan", "Jordan"},
	{"morocco", "Morocco"},
	{"tunisia", "Tunisia"},
}

var countryArabic = map[string]string{
	"UAE":          "الإمارات",
	"Saudi Arabia": "السعودية",
	"Egypt":        "مصر",
	"Qatar":        "قطر",
	"Bahrain":      "البحرين",
	"Kuwait":       "الكويت",
	"Oman":         "عمان",
	"Jordan":       "الأردن",
	"Morocco":      "المغرب",
	"Tunisia":      "تونس",
}

var typeArabic = map[string]string{
	"Fodder":      "علف خشن",
	"Concentrate": "علف مركز",
	"Additive":    "مضافات",
}
