package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"energy-predictor/domain"
	"energy-predictor/repository"
)

const cacheKeyPrefix = "prediction:"

type PredictionService struct {
	cache repository.CacheRepository
}

// NewPredictionService creates a PredictionService. cache may be nil, in
// which case rendered results are not memoised.
func NewPredictionService(cache repository.CacheRepository) *PredictionService {
	return &PredictionService{cache: cache}
}

// Predict estimates renewable-energy production in TOE. It is a pure
// function of input and never fails; the result is floored at zero.
func (s *PredictionService) Predict(input domain.PredictionInput) float64 {
	w := WeightsFor(input.PolicyMode)

	production := BaseProduction

	// The float64 conversions force rounding of each product so the
	// compiler cannot fuse it with the following add on FMA targets.
	production *= (1 - float64(w.Interest*input.InterestRate))
	production *= (1 + float64(w.GDP*input.GDPGrowth))

	oilEffect := float64((input.OilPrice - oilReferencePrice) / oilReferencePrice * w.Oil)
	production *= (1 + oilEffect)

	techEffect := float64((input.TechInvestment - techReferenceIndex) / techReferenceIndex * w.Tech)
	production *= (1 + techEffect)

	production *= w.Green
	production *= w.Efficiency

	switch input.Season {
	case domain.SeasonSummer:
		production *= SummerMultiplier
	case domain.SeasonWinter:
		production *= WinterMultiplier
	}

	// NaN compares false and lands on zero too.
	if !(production > 0) {
		return 0
	}
	return production
}

// Describe renders the prediction as "<value> TOE" with one decimal. It
// never returns an error: failures come back as a "simulation error"
// message in place of the number.
func (s *PredictionService) Describe(ctx context.Context, input domain.PredictionInput) string {
	key := CacheKey(input)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached
		}
	}

	text, err := s.render(input)
	if err != nil {
		log.Printf("Warning: simulation failed for %s: %v", key, err)
		return "simulation error: " + err.Error()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text); err != nil {
			log.Printf("Warning: failed to cache prediction: %v", err)
		}
	}
	return text
}

func (s *PredictionService) render(input domain.PredictionInput) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	value := s.Predict(input)
	if math.IsInf(value, 0) {
		return "", fmt.Errorf("non-finite result %v", value)
	}
	return FormatTOE(value), nil
}

// FormatTOE formats a production estimate the way both front ends show it.
func FormatTOE(value float64) string {
	return fmt.Sprintf("%.1f TOE", value)
}

// CacheKey renders every input field, so two inputs share a key only if
// they produce the same prediction.
func CacheKey(input domain.PredictionInput) string {
	parts := []string{
		formatFloat(input.InterestRate),
		string(input.Season),
		formatFloat(input.GDPGrowth),
		formatFloat(input.OilPrice),
		formatFloat(input.TechInvestment),
		string(input.PolicyMode),
	}
	return cacheKeyPrefix + strings.Join(parts, "|")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
