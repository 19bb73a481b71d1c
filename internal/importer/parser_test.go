package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyadas/finquest/internal/ledger"
)

func TestParseStatementAmount(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Plain", input: "500.00", want: 50000},
		{name: "ThousandsCommas", input: "1,234.56", want: 123456},
		{name: "IndianGrouping", input: "1,00,000.00", want: 10000000},
		{name: "RupeeSymbol", input: "₹500.00", want: 50000},
		{name: "RsPrefix", input: "Rs.250.50", want: 25050},
		{name: "Parenthesized", input: "(250.00)", want: -25000},
		{name: "NegativeSign", input: "-75.25", want: -7525},
		{name: "Whitespace", input: "  42.00  ", want: 4200},
		{name: "Garbage", input: "SALARY", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStatementAmount(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Parse_SplitColumns(t *testing.T) {
	csv := strings.Join([]string{
		"Txn Date,Description,Withdrawal Amt,Deposit Amt",
		"01/04/2025,UPI-SWIGGY,450.00,",
		"03/04/2025,SALARY CREDIT,,\"75,000.00\"",
		"05/04/2025,ATM WDL,\"2,000.00\",",
	}, "\n")

	params, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, int64(45000), params[0].Amount)
	assert.Equal(t, ledger.KindExpense, params[0].Kind)
	assert.Equal(t, "UPI-SWIGGY", params[0].Note)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), params[0].OccurredAt)

	assert.Equal(t, int64(7500000), params[1].Amount)
	assert.Equal(t, ledger.KindIncome, params[1].Kind)

	assert.Equal(t, int64(200000), params[2].Amount)
	assert.Equal(t, ledger.KindExpense, params[2].Kind)
}

func TestParser_Parse_SingleAmountColumn(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Description,Amount",
		"2025-04-01,Coffee,-120.00",
		"2025-04-02,Refund,350.00",
	}, "\n")

	params, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, int64(12000), params[0].Amount)
	assert.Equal(t, ledger.KindExpense, params[0].Kind)

	assert.Equal(t, int64(35000), params[1].Amount)
	assert.Equal(t, ledger.KindIncome, params[1].Kind)
}

func TestParser_Parse_SkipsPreambleAndFooters(t *testing.T) {
	csv := strings.Join([]string{
		"Account Statement for 1234XXXX5678",
		"Period: 01/04/2025 to 30/04/2025",
		"",
		"Date,Narration,Debit,Credit",
		"02/04/2025,POS PURCHASE,899.00,",
		"Closing Balance,,,",
		"Total,899.00,",
	}, "\n")

	params, err := NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, int64(89900), params[0].Amount)
	assert.Equal(t, "POS PURCHASE", params[0].Note)
}

func TestParser_Parse_UnknownFormat(t *testing.T) {
	csv := "Foo,Bar\n1,2\n"

	_, err := NewParser().Parse(strings.NewReader(csv))
	assert.Error(t, err)
}

type captureCreator struct {
	calls []ledger.CreateTransactionParams
	err   error
}

func (c *captureCreator) CreateTransaction(_ context.Context, _ uuid.UUID, params ledger.CreateTransactionParams) (*ledger.Transaction, error) {
	if c.err != nil {
		return nil, c.err
	}

	c.calls = append(c.calls, params)

	return &ledger.Transaction{ID: uuid.New()}, nil
}

func TestService_ImportStatement(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Description,Amount",
		"2025-04-01,Coffee,-120.00",
		"2025-04-02,Salary,50000.00",
	}, "\n")

	creator := &captureCreator{}
	svc := NewService(creator)

	userID := uuid.New()
	accountID := uuid.New()

	count, err := svc.ImportStatement(context.Background(), userID, accountID, strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	require.Len(t, creator.calls, 2)

	// Every imported row lands on the chosen account.
	for _, p := range creator.calls {
		assert.Equal(t, accountID, p.AccountID)
	}
}

func TestService_ImportStatement_CreateFailure(t *testing.T) {
	csv := "Date,Description,Amount\n2025-04-01,Coffee,-120.00\n"

	creator := &captureCreator{err: assert.AnError}
	svc := NewService(creator)

	count, err := svc.ImportStatement(context.Background(), uuid.New(), uuid.New(), strings.NewReader(csv))
	assert.Error(t, err)
	assert.Zero(t, count)
}
