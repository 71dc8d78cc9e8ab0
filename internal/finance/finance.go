package finance

import "math"

// QuoteInput represents the editable fields of a vehicle-financing quote.
type QuoteInput struct {
	Cost         float64 `json:"cost"`
	Profit       float64 `json:"profit"`
	SellingPrice float64 `json:"sellingPrice"`
	Term         float64 `json:"term"`
	Rate         float64 `json:"rate"`
	OutOfPocket  float64 `json:"outOfPocket"`
	TaxRate      float64 `json:"taxRate"`
	QuoteName    string  `json:"quoteName"`
}

// QuoteResult contains the computed financing values, each rounded to cents.
type QuoteResult struct {
	Taxes           float64 `json:"taxes"`
	BaseLoanAmount  float64 `json:"baseLoanAmount"`
	Interest        float64 `json:"interest"`
	TotalLoanAmount float64 `json:"totalLoanAmount"`
	Payment         float64 `json:"payment"`
}

// Calculate computes taxes, financed principal, the amortizing monthly payment,
// total repayment, and total interest from the quote inputs.
//
// It is a total function: NaN and infinite inputs are treated as 0, a term or
// principal of zero or less yields a zero payment, and a zero rate falls back
// to a straight principal/term split. Every intermediate value is rounded to
// cents before the next step. Values are binary float64; inputs far outside
// normal financing ranges may differ in the last cent from a decimal
// fixed-point calculation.
func Calculate(in QuoteInput) QuoteResult {
	sellingPrice := sanitize(in.SellingPrice)
	term := sanitize(in.Term)
	rate := sanitize(in.Rate)
	outOfPocket := sanitize(in.OutOfPocket)
	taxRate := sanitize(in.TaxRate)

	taxes := round2(sellingPrice * (taxRate / 100))
	baseLoanAmount := round2(sellingPrice + taxes - outOfPocket)
	monthlyRate := (rate / 100) / 12

	var payment float64
	switch {
	case term <= 0 || baseLoanAmount <= 0:
		payment = 0
	case monthlyRate == 0:
		payment = round2(baseLoanAmount / term)
	default:
		factor := math.Pow(1+monthlyRate, -term)
		payment = round2(baseLoanAmount * monthlyRate / (1 - factor))
	}

	totalLoanAmount := round2(payment * term)
	interest := round2(totalLoanAmount - baseLoanAmount)

	return QuoteResult{
		Taxes:           taxes,
		BaseLoanAmount:  baseLoanAmount,
		Interest:        interest,
		TotalLoanAmount: totalLoanAmount,
		Payment:         payment,
	}
}

// round2 rounds to the nearest cent, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
