package nlu

import "testing"

func TestExtractPair(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		wantPair  string
		wantOK    bool
	}{
		{name: "slash separator", utterance: "BTC/USDT", wantPair: "BTC/USDT", wantOK: true},
		{name: "lowercase input", utterance: "btc/usdt please", wantPair: "BTC/USDT", wantOK: true},
		{name: "dash separator", utterance: "ETH-USDT", wantPair: "ETH/USDT", wantOK: true},
		{name: "spoken slash", utterance: "BTC slash USDT", wantPair: "BTC/USDT", wantOK: true},
		{name: "spoken dash", utterance: "eth dash usdt", wantPair: "ETH/USDT", wantOK: true},
		{name: "spelled letters", utterance: "e t h slash u s d t", wantPair: "ETH/USDT", wantOK: true},
		{name: "bit coin rewrite", utterance: "bit coin to usdt", wantPair: "BTC/USDT", wantOK: true},
		{name: "ether rewrite", utterance: "ether to usdt", wantPair: "ETH/USDT", wantOK: true},
		{name: "trade with", utterance: "trade BTC with USDT", wantPair: "BTC/USDT", wantOK: true},
		{name: "trade against", utterance: "trade SOL against USDC", wantPair: "SOL/USDC", wantOK: true},
		{name: "versus", utterance: "BTC versus USDT", wantPair: "BTC/USDT", wantOK: true},
		{name: "known tokens space separated", utterance: "ETH USDT", wantPair: "ETH/USDT", wantOK: true},
		{name: "prose does not parse", utterance: "I want to trade on OKX", wantOK: false},
		{name: "price utterance does not parse", utterance: "at 65000", wantOK: false},
		{name: "bare number", utterance: "0.5", wantOK: false},
		{name: "empty", utterance: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := ExtractPair(tt.utterance)
			if ok != tt.wantOK {
				t.Fatalf("ExtractPair(%q) ok = %v, want %v", tt.utterance, ok, tt.wantOK)
			}
			if ok && pair != tt.wantPair {
				t.Fatalf("ExtractPair(%q) = %q, want %q", tt.utterance, pair, tt.wantPair)
			}
		})
	}
}

func TestExtractPair_ExplicitSeparatorAcceptsAnyTokens(t *testing.T) {
	pair, ok := ExtractPair("ABC/XYZ")
	if !ok || pair != "ABC/XYZ" {
		t.Fatalf("expected explicit separator to accept unknown tokens, got (%q, %v)", pair, ok)
	}
}

func TestExtractPair_FirstPatternWins(t *testing.T) {
	// Explicit separator outranks the linking-word patterns.
	pair, ok := ExtractPair("swap BTC to USDT or maybe ETH/USDC")
	if !ok || pair != "ETH/USDC" {
		t.Fatalf("expected explicit-separator pair to win, got (%q, %v)", pair, ok)
	}
}
