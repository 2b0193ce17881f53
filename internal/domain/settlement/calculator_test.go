package settlement

import (
	"math"
	"reflect"
	"testing"
)

func baseCart() []CartLine {
	return []CartLine{
		{ProductID: 1, Name: "Harina PAN 1kg", UnitPriceUSD: 10.00, Quantity: 2},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeFullPayment(t *testing.T) {
	s, err := Compute(Input{
		Cart:         baseCart(),
		PaymentType:  PaymentTypeFull,
		ExchangeRate: 36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.SubtotalUSD, 20.00) {
		t.Fatalf("expected subtotal 20.00, got %v", s.SubtotalUSD)
	}
	if !almostEqual(s.NetTotalUSD, 20.00) {
		t.Fatalf("expected net total 20.00, got %v", s.NetTotalUSD)
	}
	if !almostEqual(s.AmountPaidUSD, 20.00) {
		t.Fatalf("expected amount paid 20.00, got %v", s.AmountPaidUSD)
	}
	if s.DebtUSD != 0 {
		t.Fatalf("expected zero debt, got %v", s.DebtUSD)
	}
	if !almostEqual(s.TotalVES, 730.00) {
		t.Fatalf("expected total VES 730.00, got %v", s.TotalVES)
	}
	if s.Status != StatusPaid {
		t.Fatalf("expected status paid, got %s", s.Status)
	}
}

func TestComputeCreditWithDiscount(t *testing.T) {
	s, err := Compute(Input{
		Cart:            baseCart(),
		DiscountPercent: 10,
		PaymentType:     PaymentTypeCredit,
		CustomerName:    "Maria Perez",
		ExchangeRate:    36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.NetTotalUSD, 18.00) {
		t.Fatalf("expected net total 18.00, got %v", s.NetTotalUSD)
	}
	if s.AmountPaidUSD != 0 {
		t.Fatalf("expected amount paid 0, got %v", s.AmountPaidUSD)
	}
	if !almostEqual(s.DebtUSD, 18.00) {
		t.Fatalf("expected debt 18.00, got %v", s.DebtUSD)
	}
	if s.Status != StatusPending {
		t.Fatalf("expected status pending, got %s", s.Status)
	}
}

func TestComputePartialWithPoints(t *testing.T) {
	s, err := Compute(Input{
		Cart:            baseCart(),
		PointsRedeemed:  500,
		AvailablePoints: 600,
		PaymentType:     PaymentTypePartial,
		AmountEntered:   10.00,
		CustomerName:    "Jose Rivas",
		ExchangeRate:    36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.PointsValueUSD, 5.00) {
		t.Fatalf("expected points value 5.00, got %v", s.PointsValueUSD)
	}
	if !almostEqual(s.NetTotalUSD, 15.00) {
		t.Fatalf("expected net total 15.00, got %v", s.NetTotalUSD)
	}
	if !almostEqual(s.DebtUSD, 5.00) {
		t.Fatalf("expected debt 5.00, got %v", s.DebtUSD)
	}
	if s.Status != StatusPartial {
		t.Fatalf("expected status partial, got %s", s.Status)
	}
}

func TestComputeMixedBreakdown(t *testing.T) {
	s, err := Compute(Input{
		Cart:         baseCart(),
		PaymentType:  PaymentTypeMixed,
		CustomerName: "Maria Perez",
		Breakdown: []PaymentEntry{
			{Channel: "cash_usd", Currency: CurrencyUSD, Amount: 5.00},
			{Channel: "pago_movil", Currency: CurrencyVES, Amount: 182.50},
		},
		ExchangeRate: 36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.AmountPaidUSD, 10.00) {
		t.Fatalf("expected amount paid 10.00, got %v", s.AmountPaidUSD)
	}
	if !almostEqual(s.DebtUSD, 10.00) {
		t.Fatalf("expected debt 10.00, got %v", s.DebtUSD)
	}
}

func TestComputeMixedOrderIndependent(t *testing.T) {
	entries := []PaymentEntry{
		{Channel: "cash_usd", Currency: CurrencyUSD, Amount: 3.25},
		{Channel: "zelle", Currency: CurrencyUSD, Amount: 7.10},
		{Channel: "pago_movil", Currency: CurrencyVES, Amount: 145.27},
	}
	reversed := []PaymentEntry{entries[2], entries[1], entries[0]}

	a, err := Compute(Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, CustomerName: "A", Breakdown: entries, ExchangeRate: 36.5})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	b, err := Compute(Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, CustomerName: "A", Breakdown: reversed, ExchangeRate: 36.5})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if math.Abs(a.AmountPaidUSD-b.AmountPaidUSD) > 1e-9 {
		t.Fatalf("breakdown order changed the paid amount: %v vs %v", a.AmountPaidUSD, b.AmountPaidUSD)
	}
}

func TestComputeMixedUnderpaidRequiresCustomer(t *testing.T) {
	short := []PaymentEntry{{Channel: "cash_usd", Currency: CurrencyUSD, Amount: 5.00}}

	// 5.00 against a 20.00 cart leaves 15.00 of debt; without a customer
	// nobody would owe it
	_, err := Compute(Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, Breakdown: short, ExchangeRate: 36.5})
	if err == nil {
		t.Fatal("expected validation error for underpaid breakdown without customer")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}

	// The same breakdown with a customer books the remainder as their debt
	s, err := Compute(Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, CustomerName: "Maria Perez", Breakdown: short, ExchangeRate: 36.5})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.DebtUSD, 15.00) {
		t.Fatalf("expected debt 15.00, got %v", s.DebtUSD)
	}
	if s.Status != StatusPartial {
		t.Fatalf("expected status partial, got %s", s.Status)
	}

	// A breakdown that covers the total needs no customer
	full := []PaymentEntry{
		{Channel: "cash_usd", Currency: CurrencyUSD, Amount: 10.00},
		{Channel: "pago_movil", Currency: CurrencyVES, Amount: 365.00},
	}
	s, err = Compute(Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, Breakdown: full, ExchangeRate: 36.5})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if s.DebtUSD != 0 || s.Status != StatusPaid {
		t.Fatalf("expected paid sale without debt, got debt %v status %s", s.DebtUSD, s.Status)
	}
}

func TestComputeNetTotalFlooredAtZero(t *testing.T) {
	s, err := Compute(Input{
		Cart:            []CartLine{{ProductID: 1, UnitPriceUSD: 1.00, Quantity: 1}},
		DiscountPercent: 100,
		PointsRedeemed:  500,
		AvailablePoints: 500,
		PaymentType:     PaymentTypeFull,
		ExchangeRate:    36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if s.NetTotalUSD != 0 {
		t.Fatalf("expected net total floored at 0, got %v", s.NetTotalUSD)
	}
	if s.DebtUSD != 0 {
		t.Fatalf("expected zero debt, got %v", s.DebtUSD)
	}
	if s.Status != StatusPaid {
		t.Fatalf("expected status paid on zero total, got %s", s.Status)
	}
}

func TestComputePartialClampedToNetTotal(t *testing.T) {
	s, err := Compute(Input{
		Cart:          baseCart(),
		PaymentType:   PaymentTypePartial,
		AmountEntered: 50.00,
		CustomerName:  "Maria Perez",
		ExchangeRate:  36.5,
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !almostEqual(s.AmountPaidUSD, s.NetTotalUSD) {
		t.Fatalf("expected amount clamped to net total, got %v vs %v", s.AmountPaidUSD, s.NetTotalUSD)
	}
	if s.DebtUSD != 0 {
		t.Fatalf("expected zero debt after clamping, got %v", s.DebtUSD)
	}
}

func TestComputeDebtInvariant(t *testing.T) {
	inputs := []Input{
		{Cart: baseCart(), PaymentType: PaymentTypeFull, ExchangeRate: 36.5},
		{Cart: baseCart(), PaymentType: PaymentTypeCredit, CustomerName: "A", ExchangeRate: 36.5},
		{Cart: baseCart(), PaymentType: PaymentTypePartial, AmountEntered: 4.2, CustomerName: "A", ExchangeRate: 36.5},
		{Cart: baseCart(), PaymentType: PaymentTypeMixed, ExchangeRate: 36.5, Breakdown: []PaymentEntry{
			{Channel: "cash_usd", Currency: CurrencyUSD, Amount: 30.00},
		}},
	}
	for i, in := range inputs {
		s, err := Compute(in)
		if err != nil {
			t.Fatalf("case %d: compute failed: %v", i, err)
		}
		if s.DebtUSD < 0 {
			t.Fatalf("case %d: negative debt %v", i, s.DebtUSD)
		}
		if s.NetTotalUSD < 0 {
			t.Fatalf("case %d: negative net total %v", i, s.NetTotalUSD)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := Input{
		Cart:            baseCart(),
		DiscountPercent: 7.5,
		PointsRedeemed:  120,
		AvailablePoints: 300,
		PaymentType:     PaymentTypePartial,
		AmountEntered:   9.33,
		CustomerName:    "Maria Perez",
		ExchangeRate:    36.5,
	}
	a, err := Compute(in)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	b, err := Compute(in)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different settlements: %+v vs %+v", a, b)
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	rate := 36.5
	amounts := []float64{0.01, 1, 182.50, 99999.99}
	for _, ves := range amounts {
		usd := PaymentEntry{Currency: CurrencyVES, Amount: ves}.AmountUSD(rate)
		back := usd * rate
		if math.Abs(back-ves) > 1e-6 {
			t.Fatalf("round trip of %v drifted to %v", ves, back)
		}
	}
}

func TestComputeValidation(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{
			name: "empty cart",
			in:   Input{PaymentType: PaymentTypeFull, ExchangeRate: 36.5},
		},
		{
			name: "negative price",
			in: Input{
				Cart:         []CartLine{{ProductID: 1, UnitPriceUSD: -1, Quantity: 1}},
				PaymentType:  PaymentTypeFull,
				ExchangeRate: 36.5,
			},
		},
		{
			name: "discount above 100",
			in:   Input{Cart: baseCart(), DiscountPercent: 101, PaymentType: PaymentTypeFull, ExchangeRate: 36.5},
		},
		{
			name: "insufficient points",
			in:   Input{Cart: baseCart(), PointsRedeemed: 10, AvailablePoints: 5, PaymentType: PaymentTypeFull, ExchangeRate: 36.5},
		},
		{
			name: "credit without customer",
			in:   Input{Cart: baseCart(), PaymentType: PaymentTypeCredit, ExchangeRate: 36.5},
		},
		{
			name: "partial without customer",
			in:   Input{Cart: baseCart(), PaymentType: PaymentTypePartial, AmountEntered: 1, ExchangeRate: 36.5},
		},
		{
			name: "mixed without breakdown",
			in:   Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, ExchangeRate: 36.5},
		},
		{
			name: "zero exchange rate",
			in:   Input{Cart: baseCart(), PaymentType: PaymentTypeFull, ExchangeRate: 0},
		},
		{
			name: "unknown currency tag",
			in: Input{Cart: baseCart(), PaymentType: PaymentTypeMixed, ExchangeRate: 36.5, Breakdown: []PaymentEntry{
				{Channel: "crypto", Currency: "BTC", Amount: 1},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.in)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !IsValidationError(err) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}
