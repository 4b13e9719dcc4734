package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"restaurant-pos/models"
	"restaurant-pos/store"
)

func teaTransaction(date string, qty int) models.Transaction {
	price := decimal.NewFromInt(10)
	total := price.Mul(decimal.NewFromInt(int64(qty)))
	return models.Transaction{
		ID:        "txn_" + date,
		Date:      date,
		Timestamp: time.Now(),
		Items: []models.CartLine{
			{ItemID: 7, Name: "Tea", Price: price, Quantity: qty},
		},
		Subtotal: total,
		Tax:      decimal.Zero,
		Total:    total,
	}
}

func TestMonthlySalesEmptyLog(t *testing.T) {
	ctx := context.Background()
	r := NewReports(store.NewMemory())

	txs, err := r.MonthlySales(ctx, "2024-01")
	if err != nil {
		t.Fatalf("MonthlySales: %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("got %d transactions, want 0", len(txs))
	}

	sum := Summarize(txs)
	if sum.TransactionCount != 0 {
		t.Errorf("count = %d, want 0", sum.TransactionCount)
	}
	if !sum.AverageOrder.IsZero() {
		t.Errorf("average order = %s, want zero (no data)", sum.AverageOrder)
	}
}

func TestMonthlySalesFiltersByCalendarMonth(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	for _, tx := range []models.Transaction{
		teaTransaction("2024-01-01", 1),
		teaTransaction("2024-01-31", 2),
		teaTransaction("2024-02-01", 3),
		teaTransaction("2023-01-15", 4),
	} {
		if err := s.AppendTransaction(ctx, tx); err != nil {
			t.Fatal(err)
		}
	}
	r := NewReports(s)

	txs, err := r.MonthlySales(ctx, "2024-01")
	if err != nil {
		t.Fatalf("MonthlySales: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	// append order preserved
	if txs[0].Date != "2024-01-01" || txs[1].Date != "2024-01-31" {
		t.Errorf("order = %s, %s; want log order", txs[0].Date, txs[1].Date)
	}
}

func TestMonthlySalesInvalidMonth(t *testing.T) {
	ctx := context.Background()
	r := NewReports(store.NewMemory())

	for _, month := range []string{"", "2024", "2024-13", "jan-2024"} {
		if _, err := r.MonthlySales(ctx, month); err == nil {
			t.Errorf("month %q: want error, got nil", month)
		}
	}
}

func TestMonthlySalesSkipsUnparsableDates(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	bad := teaTransaction("2024-01-05", 1)
	bad.Date = "not-a-date"
	_ = s.AppendTransaction(ctx, bad)
	_ = s.AppendTransaction(ctx, teaTransaction("2024-01-06", 1))
	r := NewReports(s)

	txs, err := r.MonthlySales(ctx, "2024-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Errorf("got %d transactions, want 1 (bad date skipped)", len(txs))
	}
}

func TestItemWiseSales(t *testing.T) {
	txs := []models.Transaction{
		teaTransaction("2024-01-01", 2),
		teaTransaction("2024-01-02", 3),
	}
	sales := ItemWiseSales(txs)

	tea, ok := sales["Tea"]
	if !ok {
		t.Fatalf("sales = %v, want Tea entry", sales)
	}
	if tea.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", tea.Quantity)
	}
	if !tea.Revenue.Equal(decimal.NewFromInt(50)) {
		t.Errorf("revenue = %s, want 50", tea.Revenue)
	}
}

// Item-wise sales key on the name, so two distinct menu items sharing a name
// merge into one row.
func TestItemWiseSalesMergesByName(t *testing.T) {
	tx := teaTransaction("2024-01-01", 2)
	tx.Items = append(tx.Items, models.CartLine{
		ItemID: 42, Name: "Tea", Price: decimal.NewFromInt(15), Quantity: 1,
	})
	sales := ItemWiseSales([]models.Transaction{tx})

	tea := sales["Tea"]
	if tea.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", tea.Quantity)
	}
	if !tea.Revenue.Equal(decimal.NewFromInt(35)) {
		t.Errorf("revenue = %s, want 35", tea.Revenue)
	}
}

func TestSummarize(t *testing.T) {
	five := decimal.RequireFromString("0.05")
	taxed := teaTransaction("2024-01-03", 4) // subtotal 40
	taxed.Tax = taxed.Subtotal.Mul(five)
	taxed.TaxEnabled = true
	taxed.Total = taxed.Subtotal.Add(taxed.Tax)

	txs := []models.Transaction{
		teaTransaction("2024-01-01", 2), // total 20
		taxed,                           // total 42
	}
	sum := Summarize(txs)

	if sum.TransactionCount != 2 {
		t.Errorf("count = %d, want 2", sum.TransactionCount)
	}
	if !sum.TotalSales.Equal(decimal.NewFromInt(62)) {
		t.Errorf("totalSales = %s, want 62", sum.TotalSales)
	}
	if !sum.TotalSubtotal.Equal(decimal.NewFromInt(60)) {
		t.Errorf("totalSubtotal = %s, want 60", sum.TotalSubtotal)
	}
	if !sum.TotalTax.Equal(decimal.NewFromInt(2)) {
		t.Errorf("totalTax = %s, want 2", sum.TotalTax)
	}
	if !sum.AverageOrder.Equal(decimal.NewFromInt(31)) {
		t.Errorf("averageOrder = %s, want 31", sum.AverageOrder)
	}
}

// Records from before the subtotal field existed fall back to their total.
func TestSummarizeLegacySubtotalFallback(t *testing.T) {
	legacy := models.Transaction{
		ID:    "txn_legacy",
		Date:  "2023-06-01",
		Total: decimal.NewFromInt(80),
	}
	sum := Summarize([]models.Transaction{legacy})
	if !sum.TotalSubtotal.Equal(decimal.NewFromInt(80)) {
		t.Errorf("totalSubtotal = %s, want fallback to total 80", sum.TotalSubtotal)
	}
}

func TestMonthlyReport(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	_ = s.AppendTransaction(ctx, teaTransaction("2024-01-01", 2))
	r := NewReports(s)

	report, err := r.MonthlyReport(ctx, "2024-01")
	if err != nil {
		t.Fatalf("MonthlyReport: %v", err)
	}
	if report.Month != "2024-01" {
		t.Errorf("month = %q", report.Month)
	}
	if report.Summary.TransactionCount != 1 {
		t.Errorf("count = %d, want 1", report.Summary.TransactionCount)
	}
	if len(report.ItemSales) != 1 || len(report.Transactions) != 1 {
		t.Errorf("report = %+v, want one item row and one transaction", report)
	}
}
