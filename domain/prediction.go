package domain

// Season selects the seasonal multiplier applied last in the formula.
type Season string

const (
	SeasonSpringFall Season = "봄/가을"
	SeasonSummer     Season = "여름"
	SeasonWinter     Season = "겨울"
)

// ParseSeason accepts the Korean labels used by the web page as well as
// the lowercase English aliases. Matching is exact; anything else is
// spring/fall.
func ParseSeason(s string) Season {
	switch s {
	case string(SeasonSummer), "summer":
		return SeasonSummer
	case string(SeasonWinter), "winter":
		return SeasonWinter
	default:
		return SeasonSpringFall
	}
}

type PolicyMode string

const (
	PolicyEco     PolicyMode = "eco"
	PolicyNeutral PolicyMode = "neutral"
	PolicyNonEco  PolicyMode = "non_eco"
)

// PolicyModes lists every mode in display order.
var PolicyModes = []PolicyMode{PolicyEco, PolicyNeutral, PolicyNonEco}

// ParsePolicyMode matches the wire values exactly and falls back to
// neutral for anything else, including "ECO" or " eco ".
func ParsePolicyMode(s string) PolicyMode {
	switch PolicyMode(s) {
	case PolicyEco:
		return PolicyEco
	case PolicyNonEco:
		return PolicyNonEco
	default:
		return PolicyNeutral
	}
}

type PredictionInput struct {
	InterestRate   float64
	Season         Season
	GDPGrowth      float64
	OilPrice       float64
	TechInvestment float64
	PolicyMode     PolicyMode
}

// PolicyWeights is the weight tuple selected by a policy mode.
type PolicyWeights struct {
	Interest   float64
	GDP        float64
	Oil        float64
	Tech       float64
	Green      float64
	Efficiency float64
}
