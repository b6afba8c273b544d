package tax

import (
	"context"
	"sort"
	"time"

	"github.com/taxfolio/backend/internal/model"
)

// lot is an open purchase: a remaining quantity acquired at a unit cost
// (already in TRY) on a specific date. Lots are owned exclusively by their
// symbol's queue and removed once fully consumed.
type lot struct {
	quantity float64
	price    float64
	date     time.Time
}

// lotQueue is a FIFO queue of open lots ordered by purchase date. Popping
// advances a head index instead of reslicing from the front, so symbols
// with many small lots do not degrade quadratically.
type lotQueue struct {
	lots []lot
	head int
}

func (q *lotQueue) push(l lot) {
	q.lots = append(q.lots, l)
}

func (q *lotQueue) peek() *lot {
	return &q.lots[q.head]
}

func (q *lotQueue) pop() {
	q.lots[q.head] = lot{}
	q.head++
	if q.head == len(q.lots) {
		q.lots = q.lots[:0]
		q.head = 0
	}
}

func (q *lotQueue) empty() bool {
	return q.head == len(q.lots)
}

// symbolOutcome is the per-symbol contribution to the yearly report.
// netProfit and netLoss are accumulated per sale event, so one symbol with
// both winning and losing sales contributes to both buckets.
type symbolOutcome struct {
	symbol     string
	profitLoss float64
	netProfit  float64
	netLoss    float64
	counted    bool
	missingBuy bool
}

// processSymbol replays one symbol's full transaction history in
// chronological order, consuming lots oldest-first on every sale.
//
// Profit and loss are only realized for sales dated inside the tax-year
// window; earlier or later sales still consume lots so that the queue is
// correct for the years around this one. The inflation adjustment is
// likewise only queried for tax-year sales.
func (e *Engine) processSymbol(ctx context.Context, symbol string, transactions []model.Transaction, start, end time.Time) (symbolOutcome, error) {
	// Stable sort: same-date fills keep their original statement order.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	out := symbolOutcome{symbol: symbol}
	var queue lotQueue

	for _, t := range transactions {
		if t.ExecutedQuantity <= 0 {
			continue
		}

		price, err := e.normalize(ctx, t.AveragePrice, t.Currency, t.Date)
		if err != nil {
			return symbolOutcome{}, err
		}

		switch t.OperationType {
		case model.OperationBuy:
			queue.push(lot{quantity: t.ExecutedQuantity, price: price, date: t.Date})

		case model.OperationSell:
			if queue.empty() {
				out.missingBuy = true
				e.log.Warn().
					Str("symbol", symbol).
					Time("date", t.Date).
					Msg("sell with no matching buy lots")
				continue
			}

			inTaxYear := !t.Date.Before(start) && !t.Date.After(end)
			remaining := t.ExecutedQuantity
			var saleProfit float64

			for remaining > 0 && !queue.empty() {
				open := queue.peek()

				cost := open.price
				if inTaxYear {
					cost, err = e.adjustedCost(ctx, open, t.Date)
					if err != nil {
						return symbolOutcome{}, err
					}
				}

				consumed := remaining
				if open.quantity < consumed {
					consumed = open.quantity
				}
				if inTaxYear {
					saleProfit += (price - cost) * consumed
				}

				remaining -= consumed
				open.quantity -= consumed
				if open.quantity <= 0 {
					queue.pop()
				}
			}

			if remaining > 0 {
				// Queue exhausted mid-sale: the consumed portion is
				// realized above, the remainder has no cost basis.
				out.missingBuy = true
				e.log.Warn().
					Str("symbol", symbol).
					Float64("unmatchedQuantity", remaining).
					Time("date", t.Date).
					Msg("sell quantity exceeds open buy lots")
			}

			if inTaxYear {
				out.counted = true
				out.profitLoss += saleProfit
				if saleProfit > 0 {
					out.netProfit += saleProfit
				} else {
					out.netLoss += -saleProfit
				}
			}
		}
	}

	return out, nil
}
