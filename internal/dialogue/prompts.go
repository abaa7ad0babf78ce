package dialogue

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	greetingMessage = "Hello! Welcome to Voice Trading Assistant. Please choose an exchange: OKX, Bybit, Deribit, or Binance."
	fallbackMessage = "Sorry, I didn't catch that. Please try again."

	priceLookupFailureReason = "failed to fetch price"
)

var exchangeDisplayNames = map[string]string{
	"okx":     "OKX",
	"bybit":   "Bybit",
	"deribit": "Deribit",
	"binance": "Binance",
}

// Escalation tables: three phrasings per step, increasingly terse. Index is
// capped at the table size, so retries beyond the second repeat the final
// phrasing indefinitely.
var (
	exchangePrompts = [3]string{
		"Please choose an exchange: OKX, Bybit, Deribit, or Binance.",
		"Which exchange? Say OKX, Bybit, Deribit, or Binance.",
		"Exchange name, please (e.g., OKX).",
	}
	tradingPairPrompts = [3]string{
		"What trading pair would you like? (e.g., BTC/USDT)",
		"Please specify the trading pair, like ETH/USDT.",
		"Trading pair? (e.g., BTC/USDT)",
	}
	quantityPrompts = [3]string{
		"How many units of %s?",
		"Number of %s units, please.",
		"Quantity for %s?",
	}
	pricePrompts = [3]string{
		"At what price for %s? Just say the number.",
		"Please say the price for %s (e.g., 2000).",
		"Price for %s?",
	}
)

func exchangeDisplayName(id string) string {
	if name, ok := exchangeDisplayNames[id]; ok {
		return name
	}
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

func promptFor(step Step, tradingPair string, retryCount int) string {
	idx := min(retryCount, 2)
	switch step {
	case StepExchange:
		return exchangePrompts[idx]
	case StepTradingPair:
		return tradingPairPrompts[idx]
	case StepQuantity:
		return fmt.Sprintf(quantityPrompts[idx], tradingPair)
	case StepPrice:
		return fmt.Sprintf(pricePrompts[idx], tradingPair)
	}
	return fallbackMessage
}

func acknowledgment(updated []string) string {
	if len(updated) == 0 {
		return ""
	}
	return "Got it, updated " + strings.Join(updated, " and ") + "."
}

func confirmationMessage(sess *Session, marketPrice float64, lookupFailed bool) string {
	priceMsg := fmt.Sprintf("Current market price is $%.2f.", marketPrice)
	if lookupFailed {
		priceMsg = fmt.Sprintf("⚠️ Couldn't fetch price: %s.", priceLookupFailureReason)
	}
	return fmt.Sprintf("✅ Order confirmed: Trading %s %s on %s at $%.2f. %s Goodbye!",
		formatAmount(*sess.Quantity), sess.TradingPair, exchangeDisplayName(sess.Exchange), *sess.Price, priceMsg)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
