package ledger

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column ("amount" holding "-10.00").
	amountSingle amountMode = iota
	// amountSplit means separate income and expense columns.
	amountSplit
)

// Profile describes the column layout of a ledger CSV format. Column
// names are matched lowercased. Adding a new format is just adding a
// new Profile to the profiles slice.
type Profile struct {
	Name        string
	DateCol     string
	DescCol     string
	CategoryCol string // optional
	FarmCol     string // optional
	AmountMode  amountMode
	AmountCol   string // used when AmountMode == amountSingle
	IncomeCol   string // used when AmountMode == amountSplit
	ExpenseCol  string // used when AmountMode == amountSplit
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.IncomeCol, p.ExpenseCol)
	}

	return cols
}

// profiles is the ordered list of formats to try during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "split",
		DateCol:     "date",
		DescCol:     "description",
		CategoryCol: "category",
		FarmCol:     "farm",
		AmountMode:  amountSplit,
		IncomeCol:   "income",
		ExpenseCol:  "expense",
	},
	{
		Name:        "standard",
		DateCol:     "date",
		DescCol:     "description",
		CategoryCol: "category",
		FarmCol:     "farm",
		AmountMode:  amountSingle,
		AmountCol:   "amount",
	},
}
