package service

import (
	"context"
	"sort"

	"energy-predictor/domain"
)

type PolicyComparisonService struct {
	predictionService *PredictionService
}

func NewPolicyComparisonService(predictionService *PredictionService) *PolicyComparisonService {
	return &PolicyComparisonService{predictionService: predictionService}
}

// ComparePolicies runs input under every policy mode and recommends the
// one with the highest estimate. The policy mode of input is ignored.
func (s *PolicyComparisonService) ComparePolicies(
	ctx context.Context,
	input domain.PredictionInput,
) domain.PolicyComparison {

	scenarios := make([]domain.PolicyScenario, 0, len(domain.PolicyModes))
	for _, mode := range domain.PolicyModes {
		scenario := input
		scenario.PolicyMode = mode

		scenarios = append(scenarios, domain.PolicyScenario{
			PolicyMode: mode,
			Value:      s.predictionService.Predict(scenario),
			Prediction: s.predictionService.Describe(ctx, scenario),
		})
	}

	// Stable so ties keep display order.
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Value > scenarios[j].Value
	})

	return domain.PolicyComparison{
		RecommendedMode: scenarios[0].PolicyMode,
		Scenarios:       scenarios,
	}
}
