package nlq

import (
	"testing"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/lang"
)

func TestExtractEntities(t *testing.T) {
	dict := lang.NewDictionary()

	cases := []struct {
		name       string
		normalized string
		original   string
		want       Entities
	}{
		{
			name:       "product and country",
			normalized: "cheapest wheat straw in saudi arabia",
			want:       Entities{Product: "wheat straw", Country: "Saudi Arabia"},
		},
		{
			name:       "compound product wins over bare word",
			normalized: "price of alfalfa hay",
			want:       Entities{Product: "alfalfa hay"},
		},
		{
			name:       "bare alfalfa still matches",
			normalized: "price of alfalfa",
			want:       Entities{Product: "alfalfa"},
		},
		{
			name:       "saudi arabia not shadowed by saudi",
			normalized: "suppliers in saudi arabia",
			want:       Entities{Country: "Saudi Arabia"},
		},
		{
			name:       "bare saudi maps to canonical country",
			normalized: "suppliers in saudi",
			want:       Entities{Country: "Saudi Arabia"},
		},
		{
			name:       "arabic fallback on original text",
			normalized: "",
			original:   "أرخص الشعير في الإمارات",
			want:       Entities{Product: "barley", Country: "UAE"},
		},
		{
			name:       "no entities",
			normalized: "what can you do?",
			want:       Entities{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractEntities(dict, tc.normalized, tc.original)
			if got != tc.want {
				t.Fatalf("ExtractEntities() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
