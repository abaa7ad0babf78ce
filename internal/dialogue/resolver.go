package dialogue

import "github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/nlu"

// resolveSlots applies this turn's candidates to the session and returns
// acknowledgment fragments in the fixed order exchange, trading pair,
// quantity, price.
//
// Corrections always win: any non-empty candidate overwrites its slot, set
// or not. Ordinary input only fills gaps; a set slot is never silently
// overwritten.
func resolveSlots(sess *Session, cand nlu.Candidates, isCorrection bool) []string {
	var updated []string
	if isCorrection {
		if cand.Exchange != "" {
			sess.Exchange = cand.Exchange
			updated = append(updated, "exchange to "+exchangeDisplayName(cand.Exchange))
		}
		if cand.Pair != "" {
			sess.TradingPair = cand.Pair
			updated = append(updated, "trading pair to "+cand.Pair)
		}
		if cand.Quantity != nil {
			sess.Quantity = cand.Quantity
			updated = append(updated, "quantity to "+formatAmount(*cand.Quantity))
		}
		if cand.Price != nil {
			sess.Price = cand.Price
			updated = append(updated, "price to "+formatAmount(*cand.Price))
		}
		return updated
	}

	if sess.Exchange == "" && cand.Exchange != "" {
		sess.Exchange = cand.Exchange
		updated = append(updated, "exchange to "+exchangeDisplayName(cand.Exchange))
	}
	if sess.TradingPair == "" && cand.Pair != "" {
		sess.TradingPair = cand.Pair
		updated = append(updated, "trading pair to "+cand.Pair)
	}
	if sess.Quantity == nil && cand.Quantity != nil {
		sess.Quantity = cand.Quantity
		updated = append(updated, "quantity to "+formatAmount(*cand.Quantity))
	}
	if sess.Price == nil && cand.Price != nil {
		sess.Price = cand.Price
		updated = append(updated, "price to "+formatAmount(*cand.Price))
	}
	return updated
}
