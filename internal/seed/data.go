package seed

// currentPriceTimestamp marks the latest monthly price point. Only rows at
// this timestamp are active; older points are kept for trend queries.
const currentPriceTimestamp int64 = 1767225600 // Jan 2026

// Product is one row of the feed product dataset.
type Product struct {
	ProductName       string
	ProductCode       string
	Type              string
	CostPerKg         float64
	CostCurrency      string
	Supplier          string
	SupplierCountry   string
	SupplierEmail     string
	SupplierPhone     string
	SupplierAddress   string
	IsStandardProduct bool
	CreatedAt         int64
	IsActive          bool
}

// standardProducts are reference prices without supplier details.
var standardProducts = []Product{
	{ProductName: "Alfalfa hay (mid-bloom)", ProductCode: "FP-001", Type: "Fodder", CostPerKg: 1.50, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Wheat Straw", ProductCode: "FP-002", Type: "Fodder", CostPerKg: 0.95, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
	{ProductName: "Oat Hay", ProductCode: "FP-003", Type: "Fodder", CostPerKg: 1.20, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Corn Silage", ProductCode: "FP-004", Type: "Fodder", CostPerKg: 0.70, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
	{ProductName: "Barley", ProductCode: "FP-005", Type: "Fodder", CostPerKg: 11.95, CostCurrency: "EGP", SupplierCountry: "Egypt"},
	{ProductName: "Triticale Silage", ProductCode: "FP-006", Type: "Fodder", CostPerKg: 0.75, CostCurrency: "QAR", SupplierCountry: "Qatar"},
	{ProductName: "Wheat Bran", ProductCode: "FP-007", Type: "Fodder", CostPerKg: 1.05, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Cotton Seed", ProductCode: "FP-008", Type: "Fodder", CostPerKg: 1.85, CostCurrency: "EGP", SupplierCountry: "Egypt"},
	{ProductName: "Beet Pulp", ProductCode: "FP-009", Type: "Fodder", CostPerKg: 1.40, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
	{ProductName: "Barley Flakes", ProductCode: "FP-010", Type: "Concentrate", CostPerKg: 1.65, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Soya Bean Meal", ProductCode: "FP-011", Type: "Concentrate", CostPerKg: 2.30, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
	{ProductName: "Steamed Corn Flake", ProductCode: "FP-012", Type: "Concentrate", CostPerKg: 1.75, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Corn Gluten Meal", ProductCode: "FP-013", Type: "Concentrate", CostPerKg: 2.60, CostCurrency: "QAR", SupplierCountry: "Qatar"},
	{ProductName: "Maize grain", ProductCode: "FP-014", Type: "Concentrate", CostPerKg: 9.80, CostCurrency: "EGP", SupplierCountry: "Egypt"},
	{ProductName: "Molasses", ProductCode: "FP-015", Type: "Additive", CostPerKg: 0.85, CostCurrency: "AED", SupplierCountry: "UAE"},
	{ProductName: "Limestone", ProductCode: "FP-016", Type: "Additive", CostPerKg: 0.30, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
	{ProductName: "Salt", ProductCode: "FP-017", Type: "Additive", CostPerKg: 0.25, CostCurrency: "EGP", SupplierCountry: "Egypt"},
	{ProductName: "Urea", ProductCode: "FP-018", Type: "Additive", CostPerKg: 2.10, CostCurrency: "SAR", SupplierCountry: "Saudi Arabia"},
}

// marketProducts carry supplier contact details and compete on price.
var marketProducts = []Product{
	{ProductName: "Alfalfa hay (mid-bloom)", ProductCode: "MP-UAE-001", Type: "Fodder", CostPerKg: 1.45, CostCurrency: "AED", Supplier: "Gulf Feed Trading LLC", SupplierCountry: "UAE", SupplierEmail: "sales@gulffeed.ae", SupplierPhone: "+971-4-555-0101", SupplierAddress: "Al Quoz Industrial Area, Dubai"},
	{ProductName: "Alfalfa hay (mid-bloom)", ProductCode: "MP-UAE-002", Type: "Fodder", CostPerKg: 1.55, CostCurrency: "AED", Supplier: "Emirates Fodder Co", SupplierCountry: "UAE", SupplierEmail: "info@emiratesfodder.ae", SupplierPhone: "+971-2-555-0140", SupplierAddress: "Mussafah, Abu Dhabi"},
	{ProductName: "Wheat Straw", ProductCode: "MP-KSA-001", Type: "Fodder", CostPerKg: 0.90, CostCurrency: "SAR", Supplier: "Riyadh Agri Supplies", SupplierCountry: "Saudi Arabia", SupplierEmail: "orders@riyadhagri.sa", SupplierPhone: "+966-11-555-0170", SupplierAddress: "Exit 18, Riyadh"},
	{ProductName: "Wheat Straw", ProductCode: "MP-KSA-002", Type: "Fodder", CostPerKg: 0.98, CostCurrency: "SAR", Supplier: "Al Kharj Feed Mills", SupplierCountry: "Saudi Arabia", SupplierEmail: "sales@alkharjfeed.sa", SupplierPhone: "+966-11-555-0185", SupplierAddress: "Al Kharj Industrial City"},
	{ProductName: "Wheat Straw", ProductCode: "MP-UAE-003", Type: "Fodder", CostPerKg: 1.10, CostCurrency: "AED", Supplier: "Gulf Feed Trading LLC", SupplierCountry: "UAE", SupplierEmail: "sales@gulffeed.ae", SupplierPhone: "+971-4-555-0101", SupplierAddress: "Al Quoz Industrial Area, Dubai"},
	{ProductName: "Barley", ProductCode: "MP-EGY-001", Type: "Fodder", CostPerKg: 11.60, CostCurrency: "EGP", Supplier: "Nile Delta Grains", SupplierCountry: "Egypt", SupplierEmail: "export@niledeltagrains.eg", SupplierPhone: "+20-2-555-0220", SupplierAddress: "Tanta, Gharbia"},
	{ProductName: "Barley", ProductCode: "MP-EGY-002", Type: "Fodder", CostPerKg: 12.10, CostCurrency: "EGP", Supplier: "Alexandria Feed Export", SupplierCountry: "Egypt", SupplierEmail: "sales@alexfeed.eg", SupplierPhone: "+20-3-555-0245", SupplierAddress: "El Dekheila Port, Alexandria"},
	{ProductName: "Barley", ProductCode: "MP-KSA-003", Type: "Fodder", CostPerKg: 1.15, CostCurrency: "SAR", Supplier: "Riyadh Agri Supplies", SupplierCountry: "Saudi Arabia", SupplierEmail: "orders@riyadhagri.sa", SupplierPhone: "+966-11-555-0170", SupplierAddress: "Exit 18, Riyadh"},
	{ProductName: "Corn", ProductCode: "MP-QAT-001", Type: "Concentrate", CostPerKg: 1.70, CostCurrency: "QAR", Supplier: "Doha Livestock Supply", SupplierCountry: "Qatar", SupplierEmail: "info@dohalivestock.qa", SupplierPhone: "+974-4-555-0310", SupplierAddress: "Industrial Area, Doha"},
	{ProductName: "Corn", ProductCode: "MP-UAE-004", Type: "Concentrate", CostPerKg: 1.62, CostCurrency: "AED", Supplier: "Emirates Fodder Co", SupplierCountry: "UAE", SupplierEmail: "info@emiratesfodder.ae", SupplierPhone: "+971-2-555-0140", SupplierAddress: "Mussafah, Abu Dhabi"},
	{ProductName: "Soya Bean Meal", ProductCode: "MP-KSA-004", Type: "Concentrate", CostPerKg: 2.25, CostCurrency: "SAR", Supplier: "Al Kharj Feed Mills", SupplierCountry: "Saudi Arabia", SupplierEmail: "sales@alkharjfeed.sa", SupplierPhone: "+966-11-555-0185", SupplierAddress: "Al Kharj Industrial City"},
	{ProductName: "Soya Bean Meal", ProductCode: "MP-EGY-003", Type: "Concentrate", CostPerKg: 19.40, CostCurrency: "EGP", Supplier: "Nile Delta Grains", SupplierCountry: "Egypt", SupplierEmail: "export@niledeltagrains.eg", SupplierPhone: "+20-2-555-0220", SupplierAddress: "Tanta, Gharbia"},
	{ProductName: "Barley Flakes", ProductCode: "MP-UAE-005", Type: "Concentrate", CostPerKg: 1.58, CostCurrency: "AED", Supplier: "Gulf Feed Trading LLC", SupplierCountry: "UAE", SupplierEmail: "sales@gulffeed.ae", SupplierPhone: "+971-4-555-0101", SupplierAddress: "Al Quoz Industrial Area, Dubai"},
	{ProductName: "Corn Gluten Meal", ProductCode: "MP-QAT-002", Type: "Concentrate", CostPerKg: 2.48, CostCurrency: "QAR", Supplier: "Doha Livestock Supply", SupplierCountry: "Qatar", SupplierEmail: "info@dohalivestock.qa", SupplierPhone: "+974-4-555-0310", SupplierAddress: "Industrial Area, Doha"},
	{ProductName: "Oat Hay", ProductCode: "MP-UAE-006", Type: "Fodder", CostPerKg: 1.12, CostCurrency: "AED", Supplier: "Emirates Fodder Co", SupplierCountry: "UAE", SupplierEmail: "info@emiratesfodder.ae", SupplierPhone: "+971-2-555-0140", SupplierAddress: "Mussafah, Abu Dhabi"},
	{ProductName: "Wheat Bran", ProductCode: "MP-EGY-004", Type: "Fodder", CostPerKg: 8.20, CostCurrency: "EGP", Supplier: "Alexandria Feed Export", SupplierCountry: "Egypt", SupplierEmail: "sales@alexfeed.eg", SupplierPhone: "+20-3-555-0245", SupplierAddress: "El Dekheila Port, Alexandria"},
	{ProductName: "Molasses", ProductCode: "MP-KSA-005", Type: "Additive", CostPerKg: 0.80, CostCurrency: "SAR", Supplier: "Riyadh Agri Supplies", SupplierCountry: "Saudi Arabia", SupplierEmail: "orders@riyadhagri.sa", SupplierPhone: "+966-11-555-0170", SupplierAddress: "Exit 18, Riyadh"},
	{ProductName: "Urea", ProductCode: "MP-KSA-006", Type: "Additive", CostPerKg: 2.02, CostCurrency: "SAR", Supplier: "Al Kharj Feed Mills", SupplierCountry: "Saudi Arabia", SupplierEmail: "sales@alkharjfeed.sa", SupplierPhone: "+966-11-555-0185", SupplierAddress: "Al Kharj Industrial City"},
	{ProductName: "Limestone", ProductCode: "MP-EGY-005", Type: "Additive", CostPerKg: 2.90, CostCurrency: "EGP", Supplier: "Nile Delta Grains", SupplierCountry: "Egypt", SupplierEmail: "export@niledeltagrains.eg", SupplierPhone: "+20-2-555-0220", SupplierAddress: "Tanta, Gharbia"},
	{ProductName: "Salt", ProductCode: "MP-UAE-007", Type: "Additive", CostPerKg: 0.22, CostCurrency: "AED", Supplier: "Gulf Feed Trading LLC", SupplierCountry: "UAE", SupplierEmail: "sales@gulffeed.ae", SupplierPhone: "+971-4-555-0101", SupplierAddress: "Al Quoz Industrial Area, Dubai"},
}

type pricePoint struct {
	Timestamp int64
	Price     float64
}

type historicalSeries struct {
	ProductName string
	ProductCode string
	Type        string
	Currency    string
	Country     string
	Points      []pricePoint
}

// historicalData holds 25 monthly price points per series, Jan 2024 through
// Jan 2026. Only the Jan 2026 point is an active price.
var historicalData = []historicalSeries{
	{
		ProductName: "Alfalfa hay (mid-bloom)", ProductCode: "FP-001-HIST", Type: "Fodder",
		Currency: "AED", Country: "UAE",
		Points: []pricePoint{
			{1704067200, 1.40}, {1706745600, 1.42}, {1709251200, 1.45},
			{1711929600, 1.48}, {1714521600, 1.50}, {1717200000, 1.52},
			{1719792000, 1.55}, {1722470400, 1.53}, {1725148800, 1.50},
			{1727740800, 1.48}, {1730419200, 1.46}, {1733011200, 1.47},
			{1735689600, 1.49}, {1738368000, 1.51}, {1740787200, 1.54},
			{1743465600, 1.56}, {1746057600, 1.58}, {1748736000, 1.60},
			{1751328000, 1.62}, {1754006400, 1.60}, {1756684800, 1.58},
			{1759276800, 1.56}, {1761955200, 1.54}, {1764547200, 1.52},
			{1767225600, 1.50},
		},
	},
	{
		ProductName: "Wheat Straw", ProductCode: "FP-002-HIST", Type: "Fodder",
		Currency: "SAR", Country: "Saudi Arabia",
		Points: []pricePoint{
			{1704067200, 0.90}, {1706745600, 0.92}, {1709251200, 0.94},
			{1711929600, 0.96}, {1714521600, 0.98}, {1717200000, 1.00},
			{1719792000, 1.02}, {1722470400, 1.00}, {1725148800, 0.98},
			{1727740800, 0.96}, {1730419200, 0.94}, {1733011200, 0.94},
			{1735689600, 0.95}, {1738368000, 0.97}, {1740787200, 0.99},
			{1743465600, 1.01}, {1746057600, 1.03}, {1748736000, 1.05},
			{1751328000, 1.07}, {1754006400, 1.05}, {1756684800, 1.03},
			{1759276800, 1.01}, {1761955200, 0.99}, {1764547200, 0.97},
			{1767225600, 0.95},
		},
	},
	{
		ProductName: "Barley", ProductCode: "FP-005-HIST", Type: "Fodder",
		Currency: "EGP", Country: "Egypt",
		Points: []pricePoint{
			{1704067200, 11.20}, {1706745600, 11.40}, {1709251200, 11.60},
			{1711929600, 11.80}, {1714521600, 12.00}, {1717200000, 12.20},
			{1719792000, 12.40}, {1722470400, 12.30}, {1725148800, 12.10},
			{1727740800, 11.90}, {1730419200, 11.70}, {1733011200, 11.64},
			{1735689600, 11.80}, {1738368000, 12.00}, {1740787200, 12.20},
			{1743465600, 12.40}, {1746057600, 12.60}, {1748736000, 12.80},
			{1751328000, 13.00}, {1754006400, 12.90}, {1756684800, 12.70},
			{1759276800, 12.50}, {1761955200, 12.30}, {1764547200, 12.10},
			{1767225600, 11.95},
		},
	},
}
