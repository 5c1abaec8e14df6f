package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/quantward/tasignal/pkg/indicator"
	"github.com/quantward/tasignal/pkg/ma"
	"github.com/quantward/tasignal/pkg/signal"
)

// Config holds the default parameters for every indicator family. Engine
// methods take their parameters per call; a Config is where callers keep
// the defaults, loaded from code, environment, or a YAML file.
type Config struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`

	MA             MAConfig         `yaml:"ma"`
	RSI            OscillatorConfig `yaml:"rsi"`
	StochRSI       OscillatorConfig `yaml:"stochrsi"`
	CCI            OscillatorConfig `yaml:"cci"`
	CMO            OscillatorConfig `yaml:"cmo"`
	MFI            OscillatorConfig `yaml:"mfi"`
	WillR          OscillatorConfig `yaml:"willr"`
	ROC            OscillatorConfig `yaml:"roc"`
	ADX            OscillatorConfig `yaml:"adx"`
	AroonOsc       OscillatorConfig `yaml:"aroonosc"`
	ATR            ATRConfig        `yaml:"atr"`
	UltOsc         UltOscConfig     `yaml:"ultosc"`
	Stochastic     StochasticConfig `yaml:"stochastic"`
	FastStochastic FastStochConfig  `yaml:"fast_stochastic"`
	Bollinger      BollingerConfig  `yaml:"bollinger"`
	MACD           MACDConfig       `yaml:"macd"`
	SAR            SARConfig        `yaml:"sar"`
	SARExt         SARExtConfig     `yaml:"sarext"`
	Awesome        AwesomeConfig    `yaml:"awesome"`
	ElderRay       ElderRayConfig   `yaml:"elder_ray"`
	HighLow        HighLowConfig    `yaml:"highlow"`
	MMI            MMIConfig        `yaml:"mmi"`
	EMACross       EMACrossConfig   `yaml:"ema_cross"`
	TripleEMA      TripleEMAConfig  `yaml:"triple_ema"`
}

// MAConfig holds moving-average engine defaults.
type MAConfig struct {
	Kind        string  `yaml:"kind"`
	Period      int     `yaml:"period"`
	SMAFallback bool    `yaml:"sma_fallback"`
	T3Volume    float64 `yaml:"t3_volume"`
	MAMAFast    float64 `yaml:"mama_fast"`
	MAMASlow    float64 `yaml:"mama_slow"`
}

// OscillatorConfig is the shared period-plus-band shape of the single-line
// oscillators.
type OscillatorConfig struct {
	Period int         `yaml:"period"`
	Band   signal.Band `yaml:"band"`
}

// ATRConfig holds the average-true-range period.
type ATRConfig struct {
	Period int `yaml:"period"`
}

// UltOscConfig holds the ultimate oscillator windows and band.
type UltOscConfig struct {
	P1   int         `yaml:"p1"`
	P2   int         `yaml:"p2"`
	P3   int         `yaml:"p3"`
	Band signal.Band `yaml:"band"`
}

// StochasticConfig holds the slow stochastic parameters and band.
type StochasticConfig struct {
	FastK int         `yaml:"fast_k"`
	SlowK int         `yaml:"slow_k"`
	KKind string      `yaml:"k_kind"`
	SlowD int         `yaml:"slow_d"`
	DKind string      `yaml:"d_kind"`
	Band  signal.Band `yaml:"band"`
}

// FastStochConfig holds the fast stochastic parameters and band.
type FastStochConfig struct {
	FastK int         `yaml:"fast_k"`
	FastD int         `yaml:"fast_d"`
	DKind string      `yaml:"d_kind"`
	Band  signal.Band `yaml:"band"`
}

// BollingerConfig holds the Bollinger band parameters.
type BollingerConfig struct {
	Period  int     `yaml:"period"`
	DevUp   float64 `yaml:"dev_up"`
	DevDown float64 `yaml:"dev_down"`
	Kind    string  `yaml:"kind"`
}

// MACDConfig holds the MACD periods and the per-leg kinds of the extended
// variant.
type MACDConfig struct {
	Fast       int    `yaml:"fast"`
	Slow       int    `yaml:"slow"`
	Signal     int    `yaml:"signal"`
	FastKind   string `yaml:"fast_kind"`
	SlowKind   string `yaml:"slow_kind"`
	SignalKind string `yaml:"signal_kind"`
}

// SARConfig holds the parabolic SAR acceleration schedule.
type SARConfig struct {
	Accel float64 `yaml:"accel"`
	Max   float64 `yaml:"max"`
}

// SARExtConfig holds the extended SAR schedule.
type SARExtConfig struct {
	Start           float64 `yaml:"start"`
	OffsetOnReverse float64 `yaml:"offset_on_reverse"`
	AccelInitLong   float64 `yaml:"accel_init_long"`
	AccelLong       float64 `yaml:"accel_long"`
	AccelMaxLong    float64 `yaml:"accel_max_long"`
	AccelInitShort  float64 `yaml:"accel_init_short"`
	AccelShort      float64 `yaml:"accel_short"`
	AccelMaxShort   float64 `yaml:"accel_max_short"`
}

// AwesomeConfig holds the awesome oscillator windows.
type AwesomeConfig struct {
	Short int `yaml:"short"`
	Long  int `yaml:"long"`
}

// ElderRayConfig holds the elder-ray EMA anchor period.
type ElderRayConfig struct {
	EMAPeriod int `yaml:"ema_period"`
}

// HighLowConfig holds the high-low index window, smoothing, and band.
type HighLowConfig struct {
	Period   int         `yaml:"period"`
	MAPeriod int         `yaml:"ma_period"`
	Band     signal.Band `yaml:"band"`
}

// MMIConfig holds the market meanness regime cutoff.
type MMIConfig struct {
	Threshold float64 `yaml:"threshold"`
}

// EMACrossConfig holds the two crossover periods.
type EMACrossConfig struct {
	Short int `yaml:"short"`
	Long  int `yaml:"long"`
}

// TripleEMAConfig holds the three alignment periods.
type TripleEMAConfig struct {
	Short int `yaml:"short"`
	Mid   int `yaml:"mid"`
	Long  int `yaml:"long"`
}

// Default returns the conventional parameter set for every family.
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		MA: MAConfig{
			Kind:     "SMA",
			Period:   20,
			T3Volume: ma.DefaultVolumeFactor,
			MAMAFast: ma.DefaultFastLimit,
			MAMASlow: ma.DefaultSlowLimit,
		},
		RSI:      OscillatorConfig{Period: 14, Band: signal.RSIBand},
		StochRSI: OscillatorConfig{Period: 14, Band: signal.StochRSIBand},
		CCI:      OscillatorConfig{Period: 20, Band: signal.CCIBand},
		CMO:      OscillatorConfig{Period: 14, Band: signal.CMOBand},
		MFI:      OscillatorConfig{Period: 14, Band: signal.MFIBand},
		WillR:    OscillatorConfig{Period: 14, Band: signal.WillRBand},
		ROC:      OscillatorConfig{Period: 10, Band: signal.ROCBand},
		ADX:      OscillatorConfig{Period: 14, Band: signal.ADXBand},
		AroonOsc: OscillatorConfig{Period: 25, Band: signal.AroonBand},
		ATR:      ATRConfig{Period: 14},
		UltOsc:   UltOscConfig{P1: 7, P2: 14, P3: 28, Band: signal.UltOscBand},
		Stochastic: StochasticConfig{
			FastK: 5, SlowK: 3, KKind: "SMA", SlowD: 3, DKind: "SMA",
			Band: signal.StochBand,
		},
		FastStochastic: FastStochConfig{
			FastK: 5, FastD: 3, DKind: "SMA",
			Band: signal.StochBand,
		},
		Bollinger: BollingerConfig{Period: 20, DevUp: 2, DevDown: 2, Kind: "SMA"},
		MACD: MACDConfig{
			Fast: 12, Slow: 26, Signal: 9,
			FastKind: "SMA", SlowKind: "SMA", SignalKind: "SMA",
		},
		SAR: SARConfig{Accel: 0.02, Max: 0.2},
		SARExt: SARExtConfig{
			AccelInitLong: 0.02, AccelLong: 0.02, AccelMaxLong: 0.2,
			AccelInitShort: 0.02, AccelShort: 0.02, AccelMaxShort: 0.2,
		},
		Awesome:   AwesomeConfig{Short: 5, Long: 34},
		ElderRay:  ElderRayConfig{EMAPeriod: 13},
		HighLow:   HighLowConfig{Period: 10, MAPeriod: 10, Band: signal.HLIBand},
		MMI:       MMIConfig{Threshold: signal.MMIThreshold},
		EMACross:  EMACrossConfig{Short: 12, Long: 26},
		TripleEMA: TripleEMAConfig{Short: 4, Mid: 9, Long: 18},
	}
}

// Load builds the configuration from environment variables over the code
// defaults. It automatically loads a .env file if one exists.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := Default()
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.MA.Kind = getEnv("MA_KIND", cfg.MA.Kind)
	cfg.MA.Period = getEnvAsInt("MA_PERIOD", cfg.MA.Period)
	cfg.MA.SMAFallback = getEnvAsBool("MA_SMA_FALLBACK", cfg.MA.SMAFallback)
	cfg.MA.T3Volume = getEnvAsFloat("MA_T3_VOLUME", cfg.MA.T3Volume)
	cfg.MA.MAMAFast = getEnvAsFloat("MA_MAMA_FAST", cfg.MA.MAMAFast)
	cfg.MA.MAMASlow = getEnvAsFloat("MA_MAMA_SLOW", cfg.MA.MAMASlow)

	loadOscillator("RSI", &cfg.RSI)
	loadOscillator("STOCHRSI", &cfg.StochRSI)
	loadOscillator("CCI", &cfg.CCI)
	loadOscillator("CMO", &cfg.CMO)
	loadOscillator("MFI", &cfg.MFI)
	loadOscillator("WILLR", &cfg.WillR)
	loadOscillator("ROC", &cfg.ROC)
	loadOscillator("ADX", &cfg.ADX)
	loadOscillator("AROONOSC", &cfg.AroonOsc)

	cfg.ATR.Period = getEnvAsInt("ATR_PERIOD", cfg.ATR.Period)

	cfg.UltOsc.P1 = getEnvAsInt("ULTOSC_P1", cfg.UltOsc.P1)
	cfg.UltOsc.P2 = getEnvAsInt("ULTOSC_P2", cfg.UltOsc.P2)
	cfg.UltOsc.P3 = getEnvAsInt("ULTOSC_P3", cfg.UltOsc.P3)
	loadBand("ULTOSC", &cfg.UltOsc.Band)

	cfg.Stochastic.FastK = getEnvAsInt("STOCH_FAST_K", cfg.Stochastic.FastK)
	cfg.Stochastic.SlowK = getEnvAsInt("STOCH_SLOW_K", cfg.Stochastic.SlowK)
	cfg.Stochastic.KKind = getEnv("STOCH_K_KIND", cfg.Stochastic.KKind)
	cfg.Stochastic.SlowD = getEnvAsInt("STOCH_SLOW_D", cfg.Stochastic.SlowD)
	cfg.Stochastic.DKind = getEnv("STOCH_D_KIND", cfg.Stochastic.DKind)
	loadBand("STOCH", &cfg.Stochastic.Band)

	cfg.FastStochastic.FastK = getEnvAsInt("FAST_STOCH_FAST_K", cfg.FastStochastic.FastK)
	cfg.FastStochastic.FastD = getEnvAsInt("FAST_STOCH_FAST_D", cfg.FastStochastic.FastD)
	cfg.FastStochastic.DKind = getEnv("FAST_STOCH_D_KIND", cfg.FastStochastic.DKind)
	loadBand("FAST_STOCH", &cfg.FastStochastic.Band)

	cfg.Bollinger.Period = getEnvAsInt("BB_PERIOD", cfg.Bollinger.Period)
	cfg.Bollinger.DevUp = getEnvAsFloat("BB_DEV_UP", cfg.Bollinger.DevUp)
	cfg.Bollinger.DevDown = getEnvAsFloat("BB_DEV_DOWN", cfg.Bollinger.DevDown)
	cfg.Bollinger.Kind = getEnv("BB_KIND", cfg.Bollinger.Kind)

	cfg.MACD.Fast = getEnvAsInt("MACD_FAST", cfg.MACD.Fast)
	cfg.MACD.Slow = getEnvAsInt("MACD_SLOW", cfg.MACD.Slow)
	cfg.MACD.Signal = getEnvAsInt("MACD_SIGNAL", cfg.MACD.Signal)
	cfg.MACD.FastKind = getEnv("MACD_FAST_KIND", cfg.MACD.FastKind)
	cfg.MACD.SlowKind = getEnv("MACD_SLOW_KIND", cfg.MACD.SlowKind)
	cfg.MACD.SignalKind = getEnv("MACD_SIGNAL_KIND", cfg.MACD.SignalKind)

	cfg.SAR.Accel = getEnvAsFloat("SAR_ACCEL", cfg.SAR.Accel)
	cfg.SAR.Max = getEnvAsFloat("SAR_MAX", cfg.SAR.Max)

	cfg.Awesome.Short = getEnvAsInt("AO_SHORT", cfg.Awesome.Short)
	cfg.Awesome.Long = getEnvAsInt("AO_LONG", cfg.Awesome.Long)

	cfg.ElderRay.EMAPeriod = getEnvAsInt("ELDER_RAY_EMA_PERIOD", cfg.ElderRay.EMAPeriod)

	cfg.HighLow.Period = getEnvAsInt("HLI_PERIOD", cfg.HighLow.Period)
	cfg.HighLow.MAPeriod = getEnvAsInt("HLI_MA_PERIOD", cfg.HighLow.MAPeriod)
	loadBand("HLI", &cfg.HighLow.Band)

	cfg.MMI.Threshold = getEnvAsFloat("MMI_THRESHOLD", cfg.MMI.Threshold)

	cfg.EMACross.Short = getEnvAsInt("EMA_CROSS_SHORT", cfg.EMACross.Short)
	cfg.EMACross.Long = getEnvAsInt("EMA_CROSS_LONG", cfg.EMACross.Long)

	cfg.TripleEMA.Short = getEnvAsInt("TRIPLE_EMA_SHORT", cfg.TripleEMA.Short)
	cfg.TripleEMA.Mid = getEnvAsInt("TRIPLE_EMA_MID", cfg.TripleEMA.Mid)
	cfg.TripleEMA.Long = getEnvAsInt("TRIPLE_EMA_LONG", cfg.TripleEMA.Long)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile builds the configuration from a YAML file over the code
// defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks periods, orderings, schedules, and kind names.
func (c *Config) Validate() error {
	oscillators := []struct {
		name string
		cfg  OscillatorConfig
	}{
		{"rsi", c.RSI},
		{"stochrsi", c.StochRSI},
		{"cci", c.CCI},
		{"cmo", c.CMO},
		{"mfi", c.MFI},
		{"willr", c.WillR},
		{"roc", c.ROC},
		{"adx", c.ADX},
		{"aroonosc", c.AroonOsc},
	}
	for _, o := range oscillators {
		if o.cfg.Period < 1 {
			return fmt.Errorf("%s: period must be at least 1, got %d", o.name, o.cfg.Period)
		}
		if o.cfg.Band.Low > o.cfg.Band.High {
			return fmt.Errorf("%s: band low %v above high %v", o.name, o.cfg.Band.Low, o.cfg.Band.High)
		}
	}

	if c.MA.Period < 1 {
		return fmt.Errorf("ma: period must be at least 1, got %d", c.MA.Period)
	}
	if _, err := ma.ParseKind(c.MA.Kind); err != nil {
		return fmt.Errorf("ma: %w", err)
	}
	if c.MA.MAMASlow <= 0 || c.MA.MAMAFast <= c.MA.MAMASlow {
		return fmt.Errorf("ma: mama limits need 0 < slow < fast, got fast=%v slow=%v", c.MA.MAMAFast, c.MA.MAMASlow)
	}

	if c.ATR.Period < 1 {
		return fmt.Errorf("atr: period must be at least 1, got %d", c.ATR.Period)
	}
	if c.UltOsc.P1 < 1 || c.UltOsc.P2 < 1 || c.UltOsc.P3 < 1 {
		return fmt.Errorf("ultosc: periods must be at least 1, got %d/%d/%d", c.UltOsc.P1, c.UltOsc.P2, c.UltOsc.P3)
	}

	if _, err := c.Stochastic.Params(); err != nil {
		return err
	}
	if c.Stochastic.FastK < 1 || c.Stochastic.SlowK < 1 || c.Stochastic.SlowD < 1 {
		return fmt.Errorf("stochastic: periods must be at least 1, got %d/%d/%d", c.Stochastic.FastK, c.Stochastic.SlowK, c.Stochastic.SlowD)
	}
	if _, err := c.FastStochastic.Params(); err != nil {
		return err
	}
	if c.FastStochastic.FastK < 1 || c.FastStochastic.FastD < 1 {
		return fmt.Errorf("fast_stochastic: periods must be at least 1, got %d/%d", c.FastStochastic.FastK, c.FastStochastic.FastD)
	}
	if _, err := c.Bollinger.Params(); err != nil {
		return err
	}
	if c.Bollinger.Period < 1 {
		return fmt.Errorf("bollinger: period must be at least 1, got %d", c.Bollinger.Period)
	}
	if c.Bollinger.DevUp <= 0 || c.Bollinger.DevDown <= 0 {
		return fmt.Errorf("bollinger: deviations must be positive, got up=%v down=%v", c.Bollinger.DevUp, c.Bollinger.DevDown)
	}

	if c.MACD.Fast < 1 || c.MACD.Fast >= c.MACD.Slow || c.MACD.Signal < 1 {
		return fmt.Errorf("macd: need 1 <= fast < slow and signal >= 1, got %d/%d/%d", c.MACD.Fast, c.MACD.Slow, c.MACD.Signal)
	}
	if _, err := c.MACD.ExtParams(); err != nil {
		return err
	}

	if c.SAR.Accel <= 0 || c.SAR.Max < c.SAR.Accel {
		return fmt.Errorf("sar: need 0 < accel <= max, got accel=%v max=%v", c.SAR.Accel, c.SAR.Max)
	}

	if c.Awesome.Short < 1 || c.Awesome.Short >= c.Awesome.Long {
		return fmt.Errorf("awesome: need 1 <= short < long, got %d/%d", c.Awesome.Short, c.Awesome.Long)
	}
	if c.ElderRay.EMAPeriod < 1 {
		return fmt.Errorf("elder_ray: ema period must be at least 1, got %d", c.ElderRay.EMAPeriod)
	}
	if c.HighLow.Period < 1 || c.HighLow.MAPeriod < 1 {
		return fmt.Errorf("highlow: periods must be at least 1, got period=%d ma_period=%d", c.HighLow.Period, c.HighLow.MAPeriod)
	}
	if c.MMI.Threshold <= 0 {
		return fmt.Errorf("mmi: threshold must be positive, got %v", c.MMI.Threshold)
	}
	if c.EMACross.Short < 1 || c.EMACross.Short >= c.EMACross.Long {
		return fmt.Errorf("ema_cross: need 1 <= short < long, got %d/%d", c.EMACross.Short, c.EMACross.Long)
	}
	if c.TripleEMA.Short < 1 || c.TripleEMA.Short >= c.TripleEMA.Mid || c.TripleEMA.Mid >= c.TripleEMA.Long {
		return fmt.Errorf("triple_ema: periods must be strictly increasing, got %d/%d/%d", c.TripleEMA.Short, c.TripleEMA.Mid, c.TripleEMA.Long)
	}
	return nil
}

// ParsedKind parses the configured default moving-average kind.
func (c MAConfig) ParsedKind() (ma.Kind, error) {
	return ma.ParseKind(c.Kind)
}

// Params converts to the engine's slow stochastic parameters.
func (c StochasticConfig) Params() (indicator.StochParams, error) {
	kKind, err := ma.ParseKind(c.KKind)
	if err != nil {
		return indicator.StochParams{}, fmt.Errorf("stochastic k: %w", err)
	}
	dKind, err := ma.ParseKind(c.DKind)
	if err != nil {
		return indicator.StochParams{}, fmt.Errorf("stochastic d: %w", err)
	}
	return indicator.StochParams{
		FastK: c.FastK, SlowK: c.SlowK, SlowKKind: kKind,
		SlowD: c.SlowD, SlowDKind: dKind,
	}, nil
}

// Params converts to the engine's fast stochastic parameters.
func (c FastStochConfig) Params() (indicator.FastStochParams, error) {
	dKind, err := ma.ParseKind(c.DKind)
	if err != nil {
		return indicator.FastStochParams{}, fmt.Errorf("fast stochastic d: %w", err)
	}
	return indicator.FastStochParams{FastK: c.FastK, FastD: c.FastD, FastDKind: dKind}, nil
}

// Params converts to the engine's Bollinger parameters.
func (c BollingerConfig) Params() (indicator.BollingerParams, error) {
	kind, err := ma.ParseKind(c.Kind)
	if err != nil {
		return indicator.BollingerParams{}, fmt.Errorf("bollinger: %w", err)
	}
	return indicator.BollingerParams{
		Period: c.Period, DevUp: c.DevUp, DevDown: c.DevDown, Kind: kind,
	}, nil
}

// Params converts to the engine's MACD parameters.
func (c MACDConfig) Params() indicator.MACDParams {
	return indicator.MACDParams{Fast: c.Fast, Slow: c.Slow, Signal: c.Signal}
}

// ExtParams converts to the engine's extended MACD parameters.
func (c MACDConfig) ExtParams() (indicator.MACDExtParams, error) {
	fastKind, err := ma.ParseKind(c.FastKind)
	if err != nil {
		return indicator.MACDExtParams{}, fmt.Errorf("macd fast: %w", err)
	}
	slowKind, err := ma.ParseKind(c.SlowKind)
	if err != nil {
		return indicator.MACDExtParams{}, fmt.Errorf("macd slow: %w", err)
	}
	signalKind, err := ma.ParseKind(c.SignalKind)
	if err != nil {
		return indicator.MACDExtParams{}, fmt.Errorf("macd signal: %w", err)
	}
	return indicator.MACDExtParams{
		Fast: c.Fast, FastKind: fastKind,
		Slow: c.Slow, SlowKind: slowKind,
		Signal: c.Signal, SignalKind: signalKind,
	}, nil
}

// Params converts to the engine's SAR parameters.
func (c SARConfig) Params() indicator.SARParams {
	return indicator.SARParams{Accel: c.Accel, Max: c.Max}
}

// Params converts to the engine's extended SAR parameters.
func (c SARExtConfig) Params() indicator.SARExtParams {
	return indicator.SARExtParams{
		Start:           c.Start,
		OffsetOnReverse: c.OffsetOnReverse,
		AccelInitLong:   c.AccelInitLong,
		AccelLong:       c.AccelLong,
		AccelMaxLong:    c.AccelMaxLong,
		AccelInitShort:  c.AccelInitShort,
		AccelShort:      c.AccelShort,
		AccelMaxShort:   c.AccelMaxShort,
	}
}

// Params converts to the engine's ultimate oscillator parameters.
func (c UltOscConfig) Params() indicator.UltOscParams {
	return indicator.UltOscParams{P1: c.P1, P2: c.P2, P3: c.P3}
}

// Helper functions

func loadOscillator(prefix string, cfg *OscillatorConfig) {
	cfg.Period = getEnvAsInt(prefix+"_PERIOD", cfg.Period)
	loadBand(prefix, &cfg.Band)
}

func loadBand(prefix string, b *signal.Band) {
	b.Low = getEnvAsFloat(prefix+"_BAND_LOW", b.Low)
	b.High = getEnvAsFloat(prefix+"_BAND_HIGH", b.High)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}
