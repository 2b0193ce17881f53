// internal/domain/sale/display.go
package sale

import (
	"math"

	"github.com/your-org/retailpos-backend/internal/domain/settlement"
)

// DisplayPayment is a payment row prepared for receipts and sale detail
// views, with the currency the amount should be presented in
type DisplayPayment struct {
	Channel  string              `json:"channel"`
	Currency settlement.Currency `json:"currency"`
	Amount   float64             `json:"amount"`
}

// DisplayPayments prepares a sale's payment rows for presentation.
//
// Historical records contain VES-tagged rows whose amount was actually
// stored in USD. Those rows are recognizable: a genuine VES amount is on
// the order of the rate times the USD value, so a VES-tagged amount that
// sits right on the sale's USD net total while being far below the VES
// total at the sale's rate cannot be real bolivars. Such rows are shown
// as USD instead of being converted.
func DisplayPayments(s *Sale) []DisplayPayment {
	out := make([]DisplayPayment, 0, len(s.Payments))
	for _, p := range s.Payments {
		out = append(out, displayPayment(p, s.NetTotalUSD, s.ExchangeRate))
	}
	return out
}

func displayPayment(p SalePayment, netTotalUSD, rate float64) DisplayPayment {
	d := DisplayPayment{
		Channel:  p.Channel,
		Currency: p.Currency,
		Amount:   p.Amount,
	}
	if p.Currency == settlement.CurrencyVES && looksMisStoredAsUSD(p.Amount, netTotalUSD, rate) {
		d.Currency = settlement.CurrencyUSD
	}
	return d
}

func looksMisStoredAsUSD(amount, netTotalUSD, rate float64) bool {
	if netTotalUSD <= 0 {
		return false
	}
	if math.Abs(amount-netTotalUSD) > settlement.Epsilon {
		return false
	}
	// Real bolivars covering the total would sit near netTotal*rate; at a
	// near-parity rate the two are indistinguishable and the stored tag wins
	return amount*2 < netTotalUSD*rate
}
