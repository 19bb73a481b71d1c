package importer

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Amount" with value "-500.00").
	amountSingle amountMode = iota
	// amountSplit means separate withdrawal and deposit columns.
	amountSplit
)

// Profile describes the column layout of a bank statement export.
// Supporting a new bank is just adding a Profile to the profiles slice.
type Profile struct {
	Name       string
	DateCol    string
	DateFormat string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSingle
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of statement formats to try during
// auto-detection. More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "bank-split",
		DateCol:    "Txn Date",
		DateFormat: "02/01/2006",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Withdrawal Amt",
		CreditCol:  "Deposit Amt",
	},
	{
		Name:       "card",
		DateCol:    "Date",
		DateFormat: "02/01/2006",
		DescCol:    "Narration",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:       "generic",
		DateCol:    "Date",
		DateFormat: "2006-01-02",
		DescCol:    "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}
