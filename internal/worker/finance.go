package worker

import (
	"context"
	"math"
	"strings"
	"time"
)

// PricePoint is one day in a synthetic price series.
type PricePoint struct {
	// Date is the trading day.
	Date time.Time `json:"date"`
	// Close is the synthetic closing price.
	Close float64 `json:"close"`
}

// PriceSeries is a synthetic daily price history for one symbol.
type PriceSeries struct {
	// Symbol is the ticker the series was generated for.
	Symbol string `json:"symbol"`
	// Points lists the daily closes, oldest first.
	Points []PricePoint `json:"points"`
	// Change is the fractional move from first to last close.
	Change float64 `json:"change"`
}

// FinanceAgent generates deterministic synthetic market data. It stands
// in for a live market-data feed behind the same operation contract.
type FinanceAgent struct {
	// Days is the default series length.
	Days int
}

// NewFinanceAgent creates a market-data agent with a 30-day default.
func NewFinanceAgent() *FinanceAgent {
	return &FinanceAgent{Days: 30}
}

// Series generates a deterministic sinusoidal daily price series for the
// symbol. The same symbol always yields the same shape, which keeps
// downstream analysis reproducible.
func (a *FinanceAgent) Series(symbol string, days int) *PriceSeries {
	if days <= 0 {
		days = a.Days
	}
	symbol = strings.ToUpper(symbol)

	// Seed the base price from the symbol so distinct tickers differ.
	var seed float64
	for _, r := range symbol {
		seed += float64(r)
	}
	base := 50 + math.Mod(seed, 200)

	series := &PriceSeries{Symbol: symbol}
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -days)
	for i := 0; i < days; i++ {
		price := base * (1 + 0.05*math.Sin(float64(i)/5+seed))
		series.Points = append(series.Points, PricePoint{
			Date:  start.AddDate(0, 0, i),
			Close: math.Round(price*100) / 100,
		})
	}
	first := series.Points[0].Close
	last := series.Points[len(series.Points)-1].Close
	series.Change = (last - first) / first
	return series
}

// Table returns the agent's operation declaration. The finance operation
// uses the first all-uppercase token of the task as the ticker symbol,
// defaulting to INDEX when none is present.
func (a *FinanceAgent) Table(name string) *Table {
	return NewTable().
		Register(KindFinance, func(_ context.Context, task string) (any, error) {
			symbol := "INDEX"
			for _, field := range strings.Fields(task) {
				if len(field) >= 2 && field == strings.ToUpper(field) && field != strings.ToLower(field) {
					symbol = field
					break
				}
			}
			return a.Series(symbol, a.Days), nil
		}).
		Register(KindGeneric, Echo(name))
}
