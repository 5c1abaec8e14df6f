package signal

import "fmt"

// Signal is a discrete trading decision.
type Signal int

const (
	Sell Signal = -1
	Hold Signal = 0
	Buy  Signal = 1

	// Wider conviction codes, used by the Awesome Oscillator evaluator.
	StrongSell Signal = -100
	StrongBuy  Signal = 100
)

// String returns a human-readable name for the signal code.
func (s Signal) String() string {
	switch s {
	case Sell:
		return "sell"
	case Hold:
		return "hold"
	case Buy:
		return "buy"
	case StrongSell:
		return "strong_sell"
	case StrongBuy:
		return "strong_buy"
	default:
		return fmt.Sprintf("Signal(%d)", int(s))
	}
}
