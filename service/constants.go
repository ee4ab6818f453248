package service

import "energy-predictor/domain"

const (
	BaseProduction = 1000.0 // TOE before any adjustment

	oilReferencePrice  = 60.0
	techReferenceIndex = 100.0

	SummerMultiplier = 1.15
	WinterMultiplier = 0.85

	// Defaults applied at the HTTP boundary
	DefaultInterestRate   = 3.5
	DefaultGDPGrowth      = 2.5
	DefaultOilPrice       = 60.0
	DefaultTechInvestment = 100.0
)

var (
	ecoWeights = domain.PolicyWeights{
		Interest: 0.015, GDP: 0.04, Oil: 0.7, Tech: 0.5, Green: 1.2, Efficiency: 1.1,
	}
	nonEcoWeights = domain.PolicyWeights{
		Interest: 0.025, GDP: 0.02, Oil: 0.3, Tech: 0.2, Green: 0.8, Efficiency: 0.9,
	}
	neutralWeights = domain.PolicyWeights{
		Interest: 0.02, GDP: 0.03, Oil: 0.5, Tech: 0.3, Green: 1.0, Efficiency: 1.0,
	}
)

// WeightsFor returns the weight tuple for mode. Unknown modes get the
// neutral weights.
func WeightsFor(mode domain.PolicyMode) domain.PolicyWeights {
	switch mode {
	case domain.PolicyEco:
		return ecoWeights
	case domain.PolicyNonEco:
		return nonEcoWeights
	default:
		return neutralWeights
	}
}

// DefaultInput is the baseline scenario shown by both front ends.
func DefaultInput() domain.PredictionInput {
	return domain.PredictionInput{
		InterestRate:   DefaultInterestRate,
		Season:         domain.SeasonSpringFall,
		GDPGrowth:      DefaultGDPGrowth,
		OilPrice:       DefaultOilPrice,
		TechInvestment: DefaultTechInvestment,
		PolicyMode:     domain.PolicyNeutral,
	}
}
