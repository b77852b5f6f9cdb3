package entropy

// Level is a coarse entropy band.
type Level uint8

const (
	LevelLow    Level = 0x1 // LevelLow is typical of text, padding and sparse tables.
	LevelMedium Level = 0x2 // LevelMedium is typical of machine code and structured data.
	LevelHigh   Level = 0x3 // LevelHigh is typical of compressed or encrypted content.
)

// Band thresholds in bits per byte.
const (
	MediumThreshold = 5.0
	HighThreshold   = 7.2
)

// Classify maps an entropy value to its band.
func Classify(h float64) Level {
	switch {
	case h >= HighThreshold:
		return LevelHigh
	case h >= MediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}
