// internal/domain/sale/service_test.go
package sale

import (
	"testing"

	"github.com/your-org/retailpos-backend/internal/domain/settlement"
)

func checkoutReq() *CheckoutRequest {
	return &CheckoutRequest{
		Items: []CheckoutItem{
			{ProductID: 1, Name: "Harina PAN 1kg", UnitPriceUSD: 10.00, Quantity: 2},
		},
		PaymentType: settlement.PaymentTypeFull,
	}
}

func TestSettleRejectsBadInputBeforePersistence(t *testing.T) {
	// A first-time customer name plus an invalid discount: the settlement
	// has to fail from the request alone, with the customer still unknown
	// (zero points), so checkout never reaches the write path
	req := checkoutReq()
	req.CustomerName = "Nueva Cliente"
	req.DiscountPercent = 150

	_, err := settle(req, 0, 36.5)
	if err == nil {
		t.Fatal("expected validation error for discount above 100")
	}
	if !settlement.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestSettleUnknownCustomerHasNoPoints(t *testing.T) {
	// Point redemption validates against the balance passed in; a customer
	// that does not exist yet contributes zero
	req := checkoutReq()
	req.CustomerName = "Nueva Cliente"
	req.PointsRedeemed = 100

	_, err := settle(req, 0, 36.5)
	if err == nil {
		t.Fatal("expected validation error for redeeming points without a balance")
	}
	if !settlement.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestSettleValidRequest(t *testing.T) {
	s, err := settle(checkoutReq(), 0, 36.5)
	if err != nil {
		t.Fatalf("settle failed: %v", err)
	}
	if s.NetTotalUSD != 20.00 || s.Status != settlement.StatusPaid {
		t.Fatalf("unexpected settlement: %+v", s)
	}
}
