package nlu

import "strings"

// Keywords that mark an utterance as a correction of earlier input. The
// flag is global for the turn; there is no negation handling and no scoping
// to a particular parameter.
var correctionKeywords = []string{
	"i meant", "actually", "instead", "change to", "correct to",
	"no,", "not", "mistake", "wrong",
}

func IsCorrection(utterance string) bool {
	lowered := strings.ToLower(utterance)
	for _, keyword := range correctionKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
