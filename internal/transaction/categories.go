package transaction

// Category lists are fixed per type; the form layer only offers the
// list matching the selected type.
var (
	ExpenseCategories = []string{
		"Seeds", "Fertilizer", "Equipment", "Labor", "Utilities", "Fuel", "Maintenance", "Other",
	}

	IncomeCategories = []string{
		"Crop Sales", "Livestock", "Equipment Rental", "Subsidies", "Other",
	}
)

// CategoriesFor returns the category list valid for the given type.
func CategoriesFor(t Type) []string {
	if t == TypeIncome {
		return IncomeCategories
	}

	return ExpenseCategories
}
