package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/ananyadas/finquest/internal/encoding"
	"github.com/ananyadas/finquest/internal/ledger"
)

// Parser reads bank statement CSV exports and produces transaction params.
// It auto-detects the statement layout by matching column headers against
// known profiles, tolerating preamble rows above the header.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.CreateTransactionParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transactions from data rows using the matched profile.
// Rows that do not parse as data (footers, totals, blanks) are skipped.
func parseRows(p *Profile, cols colIndex, rows [][]string) ([]ledger.CreateTransactionParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var params []ledger.CreateTransactionParams

	for _, row := range rows {
		date, ok := parseDate(row, dateIdx, p.DateFormat)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)

		amount, kind, ok := parseAmount(p, cols, row)
		if !ok {
			continue
		}

		params = append(params, ledger.CreateTransactionParams{
			Amount:     amount,
			Kind:       kind,
			OccurredAt: date,
			Note:       desc,
		})
	}

	return params, nil
}

func parseDate(row []string, idx int, format string) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(format, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func parseAmount(p *Profile, cols colIndex, row []string) (int64, ledger.Kind, bool) {
	switch p.AmountMode {
	case amountSingle:
		return parseSingleAmount(row, cols[p.AmountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return 0, "", false
}

// parseSingleAmount handles a single signed amount column.
func parseSingleAmount(row []string, idx int) (int64, ledger.Kind, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseStatementAmount(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, ledger.KindExpense, true
	}

	return cents, ledger.KindIncome, true
}

// parseSplitAmount handles separate withdrawal/deposit columns.
func parseSplitAmount(row []string, debitIdx, creditIdx int) (int64, ledger.Kind, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		cents, err := parseStatementAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), ledger.KindExpense, true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		cents, err := parseStatementAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), ledger.KindIncome, true
		}
	}

	return 0, "", false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
