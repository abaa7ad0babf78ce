package nlu

// Candidates holds every slot value one utterance may carry. Empty string /
// nil means the extractor found nothing for that slot.
type Candidates struct {
	Exchange string
	Pair     string
	Quantity *float64
	Price    *float64
}

// ExtractCandidates runs all extractors over one utterance. quantityKnown
// feeds the quantity/price disambiguation heuristic.
func ExtractCandidates(utterance string, quantityKnown bool) Candidates {
	var c Candidates
	if exc, ok := ExtractExchange(utterance); ok {
		c.Exchange = exc
	}
	if pair, ok := ExtractPair(utterance); ok {
		c.Pair = pair
	}
	c.Quantity, c.Price = ExtractAmounts(utterance, quantityKnown)
	return c
}
