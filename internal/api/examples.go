package api

import "net/http"

type exampleQuery struct {
	English  string `json:"en"`
	Arabic   string `json:"ar"`
	Category string `json:"category"`
}

// exampleQueries backs UI suggestion chips. Kept static so the endpoint
// works before the dataset is seeded.
var exampleQueries = []exampleQuery{
	{
		English:  "Who is selling the cheapest Wheat Straw?",
		Arabic:   "من يبيع أرخص قش القمح؟",
		Category: "price",
	},
	{
		English:  "What is the average price of Barley in UAE?",
		Arabic:   "ما هو متوسط سعر الشعير في الإمارات؟",
		Category: "average",
	},
	{
		English:  "Which suppliers sell Alfalfa hay in Saudi Arabia?",
		Arabic:   "من يبيع تبن البرسيم في السعودية؟",
		Category: "supplier",
	},
	{
		English:  "When is the best time to buy Corn?",
		Arabic:   "ما هو أفضل وقت لشراء الذرة؟",
		Category: "historical",
	},
	{
		English:  "List all concentrates in Egypt",
		Arabic:   "قائمة بجميع المركزات في مصر",
		Category: "list",
	},
	{
		English:  "What restrictions apply to Urea for cattle?",
		Arabic:   "ما هي قيود استخدام اليوريا للماشية؟",
		Category: "restrictions",
	},
}

func handleExamples(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"examples": exampleQueries})
}
