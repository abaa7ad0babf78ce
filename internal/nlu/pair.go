package nlu

import (
	"regexp"
	"strings"
)

var (
	spokenSlash  = regexp.MustCompile(`\bSLASH\b`)
	spokenDash   = regexp.MustCompile(`\bDASH\b`)
	spokenHyphen = regexp.MustCompile(`\bHYPHEN\b`)
)

// Mispronunciation fixes applied to the uppercased utterance before pattern
// matching. Order matters: "U S D T" must rewrite before "U S D".
var mispronunciations = []struct {
	spoken    string
	corrected string
}{
	{"E T H", "ETH"},
	{"B T C", "BTC"},
	{"U S D T", "USDT"},
	{"U S D", "USD"},
	{"BIT COIN", "BTC"},
	{"ETHER", "ETH"},
}

// Pair patterns in priority order. Patterns without an explicit symbol
// separator additionally require both tokens to be known asset codes, so
// that ordinary prose ("I WANT TO TRADE") never parses as a pair.
var pairPatterns = []struct {
	re      *regexp.Regexp
	guarded bool
}{
	{re: regexp.MustCompile(`\b([A-Z0-9]{2,6})\s*[/\-]\s*([A-Z0-9]{2,6})\b`)},
	{re: regexp.MustCompile(`\b([A-Z0-9]{2,6})\s+([A-Z0-9]{2,6})\b`), guarded: true},
	{re: regexp.MustCompile(`TRADE\s+([A-Z0-9]{2,6})\s+WITH\s+([A-Z0-9]{2,6})`), guarded: true},
	{re: regexp.MustCompile(`TRADE\s+([A-Z0-9]{2,6})\s+AGAINST\s+([A-Z0-9]{2,6})`), guarded: true},
	{re: regexp.MustCompile(`\b([A-Z0-9]{2,6})\s+TO\s+([A-Z0-9]{2,6})\b`), guarded: true},
	{re: regexp.MustCompile(`\b([A-Z0-9]{2,6})\s+VERSUS\s+([A-Z0-9]{2,6})\b`), guarded: true},
}

var knownAssets = map[string]struct{}{
	"BTC": {}, "ETH": {}, "USDT": {}, "USD": {}, "USDC": {}, "EUR": {},
	"SOL": {}, "XRP": {}, "ADA": {}, "DOGE": {}, "BNB": {}, "LTC": {},
	"DOT": {}, "AVAX": {}, "MATIC": {}, "TRX": {}, "LINK": {}, "SHIB": {},
}

// ExtractPair finds a trading pair in a free-form utterance and normalizes
// it to BASE/QUOTE. It rewrites spoken separator words ("slash", "dash",
// "hyphen") to their symbols and fixes common mispronunciations first.
func ExtractPair(utterance string) (string, bool) {
	text := strings.ToUpper(utterance)
	text = spokenSlash.ReplaceAllString(text, "/")
	text = spokenDash.ReplaceAllString(text, "-")
	text = spokenHyphen.ReplaceAllString(text, "-")
	for _, fix := range mispronunciations {
		text = strings.ReplaceAll(text, fix.spoken, fix.corrected)
	}

	for _, pattern := range pairPatterns {
		for _, match := range pattern.re.FindAllStringSubmatch(text, -1) {
			base, quote := match[1], match[2]
			if pattern.guarded && !(isKnownAsset(base) && isKnownAsset(quote)) {
				continue
			}
			return base + "/" + quote, true
		}
	}
	return "", false
}

func isKnownAsset(token string) bool {
	_, ok := knownAssets[token]
	return ok
}
