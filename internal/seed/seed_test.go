package seed

import "testing"

func TestHistoricalSeriesShape(t *testing.T) {
	if len(historicalData) != 3 {
		t.Fatalf("series = %d, want 3", len(historicalData))
	}
	for _, series := range historicalData {
		if len(series.Points) != 25 {
			t.Fatalf("%s: points = %d, want 25", series.ProductCode, len(series.Points))
		}
		last := series.Points[len(series.Points)-1]
		if last.Timestamp != currentPriceTimestamp {
			t.Fatalf("%s: last point ts = %d, want %d", series.ProductCode, last.Timestamp, currentPriceTimestamp)
		}
		for i := 1; i < len(series.Points); i++ {
			if series.Points[i].Timestamp <= series.Points[i-1].Timestamp {
				t.Fatalf("%s: timestamps not ascending at %d", series.ProductCode, i)
			}
		}
	}
}

func TestDefaultProductsAreActive(t *testing.T) {
	products := defaultProducts()
	if len(products) == 0 {
		t.Fatal("no default products")
	}
	suppliers := 0
	for _, p := range products {
		if !p.IsActive {
			t.Fatalf("%s is not active", p.ProductCode)
		}
		if p.CreatedAt != currentPriceTimestamp {
			t.Fatalf("%s created_at = %d", p.ProductCode, p.CreatedAt)
		}
		if p.Supplier != "" {
			suppliers++
			if p.IsStandardProduct {
				t.Fatalf("%s has a supplier but is marked standard", p.ProductCode)
			}
		}
	}
	if suppliers == 0 {
		t.Fatal("no market products with suppliers")
	}
}

func TestRestrictionsFor(t *testing.T) {
	cases := []struct {
		product Product
		want    int
	}{
		{Product{ProductName: "Barley Flakes", Type: "Concentrate"}, 2},
		{Product{ProductName: "Barley", Type: "Fodder"}, 0},
		{Product{ProductName: "Soya Bean Meal", Type: "Concentrate"}, 1},
		{Product{ProductName: "Urea", Type: "Additive"}, 1},
		{Product{ProductName: "Molasses", Type: "Additive"}, 1},
		{Product{ProductName: "Wheat Straw", Type: "Fodder"}, 0},
	}
	for _, tc := range cases {
		if got := restrictionsFor(tc.product); len(got) != tc.want {
			t.Fatalf("restrictionsFor(%s) = %d rules, want %d", tc.product.ProductName, len(got), tc.want)
		}
	}
}

func TestUreaRestrictedToAdultCattle(t *testing.T) {
	rules := restrictionsFor(Product{ProductName: "Urea", Type: "Additive"})
	if len(rules) != 1 {
		t.Fatalf("rules = %d", len(rules))
	}
	r := rules[0]
	if r.Species != "cattle" || r.MinAgeMonths != 12 || r.MaxPercFeed != 1.0 {
		t.Fatalf("rule = %+v", r)
	}
}
