package runner

import (
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/mat"
)

// Knot is one curve knot: a time from valuation and the zero or hazard
// rate at it.
type Knot struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// RateNodeOutput is the calibrated state of one discount node.
type RateNodeOutput struct {
	Label      string  `json:"label"`
	QuoteID    string  `json:"quote_id"`
	Kind       string  `json:"kind"`
	Pillar     string  `json:"pillar"`
	Time       float64 `json:"time"`
	Quote      float64 `json:"quote"`
	Rate       float64 `json:"rate"`
	ParRate    float64 `json:"par_rate"`
	Iterations int     `json:"iterations"`
	LowRate    bool    `json:"low_rate,omitempty"`
}

// DiscountSample is the curve read at one sample time.
type DiscountSample struct {
	Time           float64 `json:"time"`
	ZeroRate       float64 `json:"zero_rate"`
	DiscountFactor float64 `json:"discount_factor"`
}

// DiscountOutput is the JSON rendering of a discount calibration.
type DiscountOutput struct {
	Kind      string           `json:"kind"`
	Name      string           `json:"name"`
	Currency  string           `json:"currency"`
	Snapshot  string           `json:"snapshot_date"`
	Spot      string           `json:"spot_date"`
	Valuation string           `json:"valuation_date"`
	Knots     []Knot           `json:"knots"`
	Nodes     []RateNodeOutput `json:"nodes"`
	Samples   []DiscountSample `json:"samples"`
	// QuoteIDs label the Jacobian columns, in definition order.
	QuoteIDs []string    `json:"quote_ids"`
	Jacobian [][]float64 `json:"jacobian"`
}

// CdsNodeOutput is the calibrated state of one credit node.
type CdsNodeOutput struct {
	Label           string  `json:"label"`
	QuoteID         string  `json:"quote_id"`
	QuoteConvention string  `json:"quote_convention"`
	Maturity        string  `json:"maturity"`
	Time            float64 `json:"time"`
	Quote           float64 `json:"quote"`
	Coupon          float64 `json:"coupon"`
	Upfront         float64 `json:"upfront"`
	Hazard          float64 `json:"hazard_rate"`
	ParSpread       float64 `json:"par_spread"`
	Iterations      int     `json:"iterations"`
}

// CreditSample is the survival curve read at one sample time.
type CreditSample struct {
	Time                float64 `json:"time"`
	HazardRate          float64 `json:"hazard_rate"`
	SurvivalProbability float64 `json:"survival_probability"`
}

// CreditOutput is the JSON rendering of a credit calibration.
type CreditOutput struct {
	Kind         string          `json:"kind"`
	Name         string          `json:"name"`
	Entity       string          `json:"entity"`
	Currency     string          `json:"currency"`
	Valuation    string          `json:"valuation_date"`
	Formula      string          `json:"accrual_on_default"`
	RecoveryRate float64         `json:"recovery_rate"`
	Discount     DiscountOutput  `json:"discount"`
	Knots        []Knot          `json:"knots"`
	Nodes        []CdsNodeOutput `json:"nodes"`
	Samples      []CreditSample  `json:"samples"`
	QuoteIDs     []string        `json:"quote_ids"`
	Jacobian     [][]float64     `json:"jacobian"`
}

// DocumentOutput is the result of one definition file.
type DocumentOutput struct {
	Path     string          `json:"path,omitempty"`
	Discount *DiscountOutput `json:"discount,omitempty"`
	Credit   *CreditOutput   `json:"credit,omitempty"`
}

// BatchOutput collects the results of a batch in input order.
type BatchOutput struct {
	RunID   string           `json:"run_id"`
	Results []DocumentOutput `json:"results"`
}

// ErrorOutput is written instead of a result when a command fails.
type ErrorOutput struct {
	RunID string `json:"run_id,omitempty"`
	Error string `json:"error"`
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func rows(m *mat.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(make([]float64, c), i, m)
	}
	return out
}

func knots(times, values []float64) []Knot {
	out := make([]Knot, len(times))
	for i, t := range times {
		out[i] = Knot{Time: t, Value: values[i]}
	}
	return out
}
