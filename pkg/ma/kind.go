package ma

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind reports a moving-average kind outside the supported set.
var ErrUnknownKind = errors.New("unknown moving average kind")

// Kind identifies a moving-average algorithm.
type Kind int

const (
	KindSMA Kind = iota
	KindEMA
	KindWMA
	KindDEMA
	KindTEMA
	KindTRIMA
	KindKAMA
	KindMAMA
	KindT3
)

var kindNames = map[Kind]string{
	KindSMA:   "SMA",
	KindEMA:   "EMA",
	KindWMA:   "WMA",
	KindDEMA:  "DEMA",
	KindTEMA:  "TEMA",
	KindTRIMA: "TRIMA",
	KindKAMA:  "KAMA",
	KindMAMA:  "MAMA",
	KindT3:    "T3",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind by name (case-insensitive). Unknown names are
// rejected here, at the construction boundary; the backward-compatible SMA
// fallback lives on the indicator engine and is opt-in.
func ParseKind(name string) (Kind, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == upper {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
