// internal/domain/sale/display_test.go
package sale

import (
	"testing"

	"github.com/your-org/retailpos-backend/internal/domain/settlement"
)

func TestDisplayPaymentsConvertsNothingForUSD(t *testing.T) {
	s := &Sale{
		NetTotalUSD:  20.00,
		ExchangeRate: 36.5,
		Payments: []SalePayment{
			{Channel: "cash", Currency: settlement.CurrencyUSD, Amount: 20.00},
		},
	}

	out := DisplayPayments(s)
	if len(out) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(out))
	}
	if out[0].Currency != settlement.CurrencyUSD || out[0].Amount != 20.00 {
		t.Fatalf("unexpected display payment: %+v", out[0])
	}
}

func TestDisplayPaymentsKeepsGenuineVES(t *testing.T) {
	// 730 VES at rate 36.5 is a real bolivar amount, nowhere near the
	// 20.00 USD net total
	s := &Sale{
		NetTotalUSD:  20.00,
		ExchangeRate: 36.5,
		Payments: []SalePayment{
			{Channel: "pago_movil", Currency: settlement.CurrencyVES, Amount: 730.00},
		},
	}

	out := DisplayPayments(s)
	if out[0].Currency != settlement.CurrencyVES {
		t.Fatalf("genuine VES payment reclassified: %+v", out[0])
	}
	if out[0].Amount != 730.00 {
		t.Fatalf("amount changed: %+v", out[0])
	}
}

func TestDisplayPaymentsReclassifiesMisStoredVES(t *testing.T) {
	// A VES-tagged row holding exactly the USD net total is a known
	// data-quality defect in old records; it is shown as USD
	s := &Sale{
		NetTotalUSD:  20.00,
		ExchangeRate: 36.5,
		Payments: []SalePayment{
			{Channel: "pago_movil", Currency: settlement.CurrencyVES, Amount: 20.00},
		},
	}

	out := DisplayPayments(s)
	if out[0].Currency != settlement.CurrencyUSD {
		t.Fatalf("mis-stored VES payment not reclassified: %+v", out[0])
	}
	if out[0].Amount != 20.00 {
		t.Fatalf("amount changed during reclassification: %+v", out[0])
	}
}

func TestDisplayPaymentsZeroNetTotal(t *testing.T) {
	// Fully discounted sale: nothing is close to a zero net total, so
	// every row keeps its stored tag
	s := &Sale{
		NetTotalUSD:  0,
		ExchangeRate: 36.5,
		Payments: []SalePayment{
			{Channel: "pago_movil", Currency: settlement.CurrencyVES, Amount: 0.005},
		},
	}

	out := DisplayPayments(s)
	if out[0].Currency != settlement.CurrencyVES {
		t.Fatalf("payment reclassified against zero net total: %+v", out[0])
	}
}

func TestDisplayPaymentsNearParityRateKeepsVES(t *testing.T) {
	// At a near-parity rate 20 VES against a 20.00 USD total is a plausible
	// real bolivar amount; the stored tag stands
	s := &Sale{
		NetTotalUSD:  20.00,
		ExchangeRate: 1.0,
		Payments: []SalePayment{
			{Channel: "pago_movil", Currency: settlement.CurrencyVES, Amount: 20.00},
		},
	}

	out := DisplayPayments(s)
	if out[0].Currency != settlement.CurrencyVES {
		t.Fatalf("plausible VES payment reclassified at low rate: %+v", out[0])
	}
}

func TestPaymentsForMixedKeepsBreakdown(t *testing.T) {
	breakdown := []settlement.PaymentEntry{
		{Channel: "cash", Currency: settlement.CurrencyUSD, Amount: 5.00},
		{Channel: "pago_movil", Currency: settlement.CurrencyVES, Amount: 182.50},
	}
	result := &settlement.Settlement{
		PaymentType:   settlement.PaymentTypeMixed,
		AmountPaidUSD: 10.00,
	}

	rows := paymentsFor(result, breakdown)
	if len(rows) != 2 {
		t.Fatalf("expected 2 payment rows, got %d", len(rows))
	}
	if rows[1].Currency != settlement.CurrencyVES || rows[1].Amount != 182.50 {
		t.Fatalf("VES entry not stored as entered: %+v", rows[1])
	}
}

func TestPaymentsForCreditStoresNoRows(t *testing.T) {
	result := &settlement.Settlement{
		PaymentType:   settlement.PaymentTypeCredit,
		AmountPaidUSD: 0,
	}
	if rows := paymentsFor(result, nil); len(rows) != 0 {
		t.Fatalf("credit sale stored payment rows: %+v", rows)
	}
}

func TestPaymentsForFullStoresSingleUSDRow(t *testing.T) {
	result := &settlement.Settlement{
		PaymentType:   settlement.PaymentTypeFull,
		AmountPaidUSD: 18.00,
	}
	rows := paymentsFor(result, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 payment row, got %d", len(rows))
	}
	if rows[0].Currency != settlement.CurrencyUSD || rows[0].Amount != 18.00 {
		t.Fatalf("unexpected payment row: %+v", rows[0])
	}
}
