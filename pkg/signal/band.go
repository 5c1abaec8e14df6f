package signal

// Direction fixes which side of a band sells.
type Direction int

const (
	// Contrarian reads a high value as overbought: at or above High sells,
	// at or below Low buys.
	Contrarian Direction = iota
	// Confirming reads a high value as strength: at or above High buys,
	// at or below Low sells.
	Confirming
)

// Band is a low/high threshold pair classifying an indicator reading as
// oversold, overbought, or neutral.
type Band struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// zero reports whether the band was left unset.
func (b Band) zero() bool {
	return b.Low == 0 && b.High == 0
}

// Or returns b, or def when b was left unset.
func (b Band) Or(def Band) Band {
	if b.zero() {
		return def
	}
	return b
}

// Default bands per indicator. RSI, Stochastic, and CCI are the classic
// call-site defaults; the rest are the conventional levels for each
// oscillator's scale.
var (
	RSIBand      = Band{Low: 40, High: 70}
	StochBand    = Band{Low: 10, High: 90}
	CCIBand      = Band{Low: -100, High: 100}
	MFIBand      = Band{Low: 20, High: 80}
	CMOBand      = Band{Low: -50, High: 50}
	WillRBand    = Band{Low: -80, High: -20}
	UltOscBand   = Band{Low: 30, High: 70}
	StochRSIBand = Band{Low: 0.2, High: 0.8}
	ROCBand      = Band{Low: -10, High: 10}
	AroonBand    = Band{Low: -50, High: 50}
	HLIBand      = Band{Low: 30, High: 70}

	// ADX carries trend strength but no direction, so only the
	// overextension fade is mechanical; the buy side is disabled (ADX is
	// never negative).
	ADXBand = Band{Low: -1, High: 50}
)

// MMIThreshold is the default regime cutoff for the Market Meanness Index.
const MMIThreshold = 75.0
