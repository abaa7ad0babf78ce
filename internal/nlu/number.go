package nlu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyStripper = strings.NewReplacer(",", "", "$", "", "€", "", "£", "", "¥", "")
	decimalPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	atWordPattern    = regexp.MustCompile(`(?i)\bat\b`)
)

// ExtractNumber finds a single numeric value in an utterance. Digits win;
// spelled-out number words ("one hundred") are the fallback. Absence of a
// number is a normal result, not an error.
func ExtractNumber(utterance string) (float64, bool) {
	clean := currencyStripper.Replace(utterance)
	if literal := decimalPattern.FindString(clean); literal != "" {
		if v, err := strconv.ParseFloat(literal, 64); err == nil {
			return v, true
		}
	}
	return parseNumberWords(clean)
}

// ExtractAmounts turns the numeric mentions of one utterance into a quantity
// candidate, a price candidate, or neither. The heuristic is deliberately
// simple and order-sensitive:
//
//   - the word "at" marks a price: the literal nearest it (the last one)
//     becomes the price candidate and no quantity is taken from this turn;
//   - otherwise, with a quantity already known, a lone number is a price;
//   - otherwise it is the quantity.
func ExtractAmounts(utterance string, quantityKnown bool) (qty, price *float64) {
	clean := currencyStripper.Replace(strings.ToLower(utterance))
	values := make([]float64, 0, 2)
	for _, literal := range decimalPattern.FindAllString(clean, -1) {
		if v, err := strconv.ParseFloat(literal, 64); err == nil {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		if v, ok := ExtractNumber(utterance); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, nil
	}

	switch {
	case atWordPattern.MatchString(utterance):
		p := values[len(values)-1]
		return nil, &p
	case quantityKnown:
		p := values[0]
		return nil, &p
	default:
		q := values[0]
		return &q, nil
	}
}

var unitWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tenWords = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scaleWords = map[string]float64{
	"hundred": 100, "thousand": 1000, "million": 1e6, "billion": 1e9,
}

var wordSplitter = regexp.MustCompile(`[^a-z]+`)

// parseNumberWords converts spelled-out numbers ("two hundred fifty",
// "zero point five") to a value, ignoring surrounding non-number words.
func parseNumberWords(utterance string) (float64, bool) {
	words := wordSplitter.Split(strings.ToLower(utterance), -1)

	var total, current float64
	var fraction strings.Builder
	found := false
	inFraction := false

	for _, word := range words {
		switch {
		case word == "" || word == "and":
			continue
		case word == "point":
			inFraction = true
		case inFraction:
			if v, ok := unitWords[word]; ok && v < 10 {
				fraction.WriteByte(byte('0' + int(v)))
				found = true
			}
		default:
			if v, ok := unitWords[word]; ok {
				current += v
				found = true
			} else if v, ok := tenWords[word]; ok {
				current += v
				found = true
			} else if scale, ok := scaleWords[word]; ok {
				if current == 0 {
					current = 1
				}
				current *= scale
				if scale >= 1000 {
					total += current
					current = 0
				}
				found = true
			}
		}
	}
	if !found {
		return 0, false
	}
	value := total + current
	if fraction.Len() > 0 {
		frac, err := strconv.ParseFloat("0."+fraction.String(), 64)
		if err == nil {
			value += frac
		}
	}
	return value, true
}
