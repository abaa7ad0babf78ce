package dialogue

import "time"

type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Step names the next trading parameter to collect.
type Step string

const (
	StepExchange    Step = "exchange"
	StepTradingPair Step = "trading_pair"
	StepQuantity    Step = "quantity"
	StepPrice       Step = "price"
)

// stepOrder is the fixed resolution priority for missing parameters.
var stepOrder = []Step{StepExchange, StepTradingPair, StepQuantity, StepPrice}

// Session is one conversation instance. String slots use "" for unset,
// numeric slots use nil. Messages is the append-only transcript of record.
type Session struct {
	ID          string
	Exchange    string
	TradingPair string
	Quantity    *float64
	Price       *float64
	Messages    []Message
	Ended       bool
	CreatedAt   time.Time
	CurrentStep Step
	RetryCount  int
}

func (s *Session) stepFilled(step Step) bool {
	switch step {
	case StepExchange:
		return s.Exchange != ""
	case StepTradingPair:
		return s.TradingPair != ""
	case StepQuantity:
		return s.Quantity != nil
	case StepPrice:
		return s.Price != nil
	}
	return false
}

func (s *Session) missingSteps() []Step {
	var missing []Step
	for _, step := range stepOrder {
		if !s.stepFilled(step) {
			missing = append(missing, step)
		}
	}
	return missing
}

// snapshot returns a copy safe to hand out after the store lock is released.
func (s *Session) snapshot() Session {
	copied := *s
	copied.Messages = make([]Message, len(s.Messages))
	copy(copied.Messages, s.Messages)
	if s.Quantity != nil {
		q := *s.Quantity
		copied.Quantity = &q
	}
	if s.Price != nil {
		p := *s.Price
		copied.Price = &p
	}
	return copied
}
