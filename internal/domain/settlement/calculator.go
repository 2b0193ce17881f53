// internal/domain/settlement/calculator.go
package settlement

import (
	"errors"
	"fmt"
)

// Currency tags a payment entry's denomination
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVES Currency = "VES"
)

// PaymentType represents how a sale is paid
type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"    // amount paid equals net total
	PaymentTypeCredit  PaymentType = "credit"  // nothing paid, full debt
	PaymentTypePartial PaymentType = "partial" // entered amount below net total
	PaymentTypeMixed   PaymentType = "mixed"   // amount derived from the breakdown
)

// Status represents the settlement outcome
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPartial Status = "partial"
	StatusPending Status = "pending"
)

const (
	// Epsilon absorbs floating-point noise when deciding whether a sale is fully paid
	Epsilon = 0.01

	// PointsPerDollar is the fixed loyalty conversion: 100 points = $1.00
	PointsPerDollar = 100
)

// CartLine is one product position of the checkout cart
type CartLine struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	UnitPriceUSD float64 `json:"unit_price_usd"`
	Quantity     int     `json:"quantity"`
}

// PaymentEntry is one channel of a mixed payment. The Amount is stored in the
// tagged currency: VES entries hold VES, USD entries hold USD directly.
type PaymentEntry struct {
	Channel  string   `json:"channel"`
	Currency Currency `json:"currency"`
	Amount   float64  `json:"amount"`
}

// AmountUSD converts the entry to USD at the given VES-per-USD rate
func (e PaymentEntry) AmountUSD(rate float64) float64 {
	if e.Currency == CurrencyVES {
		return e.Amount / rate
	}
	return e.Amount
}

// Input carries everything the calculator needs. The exchange rate and the
// customer's available point balance are supplied by the caller; the
// calculator itself never reads ambient state.
type Input struct {
	Cart            []CartLine
	DiscountPercent float64
	PointsRedeemed  int
	AvailablePoints int
	PaymentType     PaymentType
	Breakdown       []PaymentEntry // mixed payments only
	AmountEntered   float64        // partial payments only, in USD
	ExchangeRate    float64        // VES per USD
	CustomerName    string
}

// Settlement is the computed financial outcome of one checkout attempt.
// It is immutable once returned.
type Settlement struct {
	SubtotalUSD     float64     `json:"subtotal_usd"`
	DiscountPercent float64     `json:"discount_percent"`
	DiscountUSD     float64     `json:"discount_usd"`
	PointsRedeemed  int         `json:"points_redeemed"`
	PointsValueUSD  float64     `json:"points_value_usd"`
	NetTotalUSD     float64     `json:"net_total_usd"`
	AmountPaidUSD   float64     `json:"amount_paid_usd"`
	DebtUSD         float64     `json:"debt_usd"`
	TotalVES        float64     `json:"total_ves"`
	AmountPaidVES   float64     `json:"amount_paid_ves"`
	ExchangeRate    float64     `json:"exchange_rate"`
	PaymentType     PaymentType `json:"payment_type"`
	Status          Status      `json:"status"`
}

// ValidationError reports a caller-input problem detected before any
// persistence is attempted
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Compute turns a cart plus a payment arrangement into a Settlement.
// Pure function: identical inputs yield identical results.
func Compute(in Input) (*Settlement, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	var subtotal float64
	for _, line := range in.Cart {
		subtotal += line.UnitPriceUSD * float64(line.Quantity)
	}

	discountAmount := subtotal * in.DiscountPercent / 100
	pointsValue := float64(in.PointsRedeemed) / PointsPerDollar

	netTotal := subtotal - discountAmount - pointsValue
	if netTotal < 0 {
		netTotal = 0
	}

	var amountPaid float64
	switch in.PaymentType {
	case PaymentTypeMixed:
		for _, entry := range in.Breakdown {
			amountPaid += entry.AmountUSD(in.ExchangeRate)
		}
	case PaymentTypeFull:
		amountPaid = netTotal
	case PaymentTypeCredit:
		amountPaid = 0
	case PaymentTypePartial:
		amountPaid = in.AmountEntered
		if amountPaid > netTotal {
			amountPaid = netTotal
		}
	}

	var status Status
	switch {
	case amountPaid >= netTotal-Epsilon:
		status = StatusPaid
	case amountPaid > 0:
		status = StatusPartial
	default:
		status = StatusPending
	}

	debt := netTotal - amountPaid
	if debt < 0 {
		// Mixed overpayment; the remainder is change, not negative debt
		debt = 0
	}

	return &Settlement{
		SubtotalUSD:     subtotal,
		DiscountPercent: in.DiscountPercent,
		DiscountUSD:     discountAmount,
		PointsRedeemed:  in.PointsRedeemed,
		PointsValueUSD:  pointsValue,
		NetTotalUSD:     netTotal,
		AmountPaidUSD:   amountPaid,
		DebtUSD:         debt,
		TotalVES:        netTotal * in.ExchangeRate,
		AmountPaidVES:   amountPaid * in.ExchangeRate,
		ExchangeRate:    in.ExchangeRate,
		PaymentType:     in.PaymentType,
		Status:          status,
	}, nil
}

func validate(in Input) error {
	if len(in.Cart) == 0 {
		return invalid("cart", "empty cart")
	}
	for _, line := range in.Cart {
		if line.UnitPriceUSD < 0 {
			return invalid("cart", fmt.Sprintf("negative unit price for product %d", line.ProductID))
		}
		if line.Quantity < 0 {
			return invalid("cart", fmt.Sprintf("negative quantity for product %d", line.ProductID))
		}
	}

	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return invalid("discount_percent", "discount must be between 0 and 100")
	}

	if in.PointsRedeemed < 0 {
		return invalid("points_redeemed", "points cannot be negative")
	}
	if in.PointsRedeemed > in.AvailablePoints {
		return invalid("points_redeemed", "insufficient points")
	}

	if in.ExchangeRate <= 0 {
		return invalid("exchange_rate", "exchange rate must be positive")
	}

	switch in.PaymentType {
	case PaymentTypeFull:
	case PaymentTypeCredit, PaymentTypePartial:
		if in.CustomerName == "" {
			return invalid("customer", "customer required")
		}
		if in.PaymentType == PaymentTypePartial && in.AmountEntered < 0 {
			return invalid("amount", "amount paid cannot be negative")
		}
	case PaymentTypeMixed:
		if len(in.Breakdown) == 0 {
			return invalid("breakdown", "mixed payment requires at least one entry")
		}
		var paid float64
		for _, entry := range in.Breakdown {
			if entry.Amount < 0 {
				return invalid("breakdown", fmt.Sprintf("negative amount for channel %q", entry.Channel))
			}
			if entry.Currency != CurrencyUSD && entry.Currency != CurrencyVES {
				return invalid("breakdown", fmt.Sprintf("unknown currency %q for channel %q", entry.Currency, entry.Channel))
			}
			paid += entry.AmountUSD(in.ExchangeRate)
		}
		// A breakdown that falls short of the total books debt, and debt
		// needs a customer to owe it
		if in.CustomerName == "" && paid < netTotalFor(in)-Epsilon {
			return invalid("customer", "customer required when the breakdown does not cover the total")
		}
	default:
		return invalid("payment_type", fmt.Sprintf("unknown payment type %q", in.PaymentType))
	}

	return nil
}

// netTotalFor computes the post-discount, post-points total a payment has to
// cover, floored at zero like Compute does
func netTotalFor(in Input) float64 {
	var subtotal float64
	for _, line := range in.Cart {
		subtotal += line.UnitPriceUSD * float64(line.Quantity)
	}
	net := subtotal - subtotal*in.DiscountPercent/100 - float64(in.PointsRedeemed)/PointsPerDollar
	if net < 0 {
		net = 0
	}
	return net
}
