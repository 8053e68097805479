package guardrail

// #region config

// Config holds the guardrail thresholds.
type Config struct {
	QualifyingSecs    float64 // watches shorter than this are noise and ignored
	HardLimitMinutes  float64 // session length that always triggers a break
	DoomscrollMinutes float64 // session length past which low attention triggers a break
	AttentionFloor    float64 // average attention below this counts as doomscrolling
	BaseBreakMinutes  float64 // break length at hour 0
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		QualifyingSecs:    7.0,
		HardLimitMinutes:  20.0,
		DoomscrollMinutes: 8.0,
		AttentionFloor:    0.25,
		BaseBreakMinutes:  5.0,
	}
}

// #endregion config
