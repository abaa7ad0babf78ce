package nlu

import "strings"

// Spoken-form variants per exchange, including likely phonetic confusions
// from speech transcription. Table order is the tie-break when variants of
// different exchanges overlap in one utterance.
var exchangeTable = []struct {
	id       string
	variants []string
}{
	{id: "okx", variants: []string{"okx", "okay ex", "okay x", "o k x", "ok ex", "ok x"}},
	{id: "bybit", variants: []string{"bybit", "buy bit", "by bit"}},
	{id: "deribit", variants: []string{"deribit", "dairy bit", "deri bit"}},
	{id: "binance", variants: []string{"binance", "finance", "by nance"}},
}

// ExtractExchange finds an exchange id in a free-form utterance by
// case-insensitive substring match. The first matching variant in table
// order wins.
func ExtractExchange(utterance string) (string, bool) {
	lowered := strings.ToLower(utterance)
	for _, exc := range exchangeTable {
		for _, variant := range exc.variants {
			if strings.Contains(lowered, variant) {
				return exc.id, true
			}
		}
	}
	return "", false
}
