package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/url"
	"strconv"

	"energy-predictor/domain"
	"energy-predictor/service"
)

// decodePredictionInput reads an optional JSON object. Missing, null or
// mistyped fields keep their defaults; an empty body means all defaults.
func decodePredictionInput(body io.Reader) (domain.PredictionInput, error) {
	input := service.DefaultInput()

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return input, nil
		}
		return input, err
	}

	numbers := map[string]*float64{
		"interest_rate":   &input.InterestRate,
		"gdp_growth":      &input.GDPGrowth,
		"oil_price":       &input.OilPrice,
		"tech_investment": &input.TechInvestment,
	}
	for name, dst := range numbers {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var v *float64
		if err := json.Unmarshal(raw, &v); err != nil {
			log.Printf("Ignoring invalid %s: %s", name, raw)
			continue
		}
		if v != nil {
			*dst = *v
		}
	}

	if s, ok := stringField(fields, "season"); ok {
		input.Season = domain.ParseSeason(s)
	}
	if s, ok := stringField(fields, "policy_mode"); ok {
		input.PolicyMode = domain.ParsePolicyMode(s)
	}

	return input, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok {
		return "", false
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}

// formPredictionInput is the panel's counterpart of decodePredictionInput.
func formPredictionInput(form url.Values) domain.PredictionInput {
	input := service.DefaultInput()

	input.InterestRate = formFloat(form, "interest_rate", input.InterestRate)
	input.GDPGrowth = formFloat(form, "gdp_growth", input.GDPGrowth)
	input.OilPrice = formFloat(form, "oil_price", input.OilPrice)
	input.TechInvestment = formFloat(form, "tech_investment", input.TechInvestment)

	if form.Has("season") {
		input.Season = domain.ParseSeason(form.Get("season"))
	}
	if form.Has("policy_mode") {
		input.PolicyMode = domain.ParsePolicyMode(form.Get("policy_mode"))
	}
	return input
}

func formFloat(form url.Values, name string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(form.Get(name), 64)
	if err != nil {
		return defaultValue
	}
	return v
}
