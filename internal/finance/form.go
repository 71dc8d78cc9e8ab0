package finance

// Form is the state of one quote editing session: the input fields being
// edited and the most recently applied result. Construct one per session;
// nothing here is shared process-wide.
type Form struct {
	Input  QuoteInput
	Result QuoteResult
}

// NewForm returns a session initialized with the default example quote.
func NewForm() *Form {
	input := DefaultInput()
	return &Form{
		Input:  input,
		Result: Calculate(input),
	}
}

// DefaultInput returns the input values a fresh editing session starts from.
func DefaultInput() QuoteInput {
	return QuoteInput{
		Cost:         26906,
		Profit:       1500,
		SellingPrice: 28406,
		Term:         36,
		Rate:         5.7,
		OutOfPocket:  2000,
		TaxRate:      7.5,
	}
}

// SyncFromCost recomputes the selling price after an edit to cost or profit.
// Selling price is the only field it touches.
func (f *Form) SyncFromCost() {
	f.Input.SellingPrice = round2(f.Input.Cost + f.Input.Profit)
}

// SyncFromPrice recomputes profit after an edit to the selling price; cost is
// never adjusted.
func (f *Form) SyncFromPrice() {
	f.Input.Profit = round2(f.Input.SellingPrice - f.Input.Cost)
}

// Apply runs the calculation over the current inputs and records the result
// on the session.
func (f *Form) Apply() QuoteResult {
	f.Result = Calculate(f.Input)
	return f.Result
}
