package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeason(t *testing.T) {
	cases := []struct {
		in   string
		want Season
	}{
		{"봄/가을", SeasonSpringFall},
		{"여름", SeasonSummer},
		{"겨울", SeasonWinter},
		{"summer", SeasonSummer},
		{"winter", SeasonWinter},
		{"spring_fall", SeasonSpringFall},
		{"monsoon", SeasonSpringFall},
		{"", SeasonSpringFall},
		// Matching is exact, like the original labels.
		{"SUMMER", SeasonSpringFall},
		{" Winter ", SeasonSpringFall},
		{" 여름", SeasonSpringFall},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseSeason(tc.in), "ParseSeason(%q)", tc.in)
	}
}

func TestParsePolicyMode(t *testing.T) {
	cases := []struct {
		in   string
		want PolicyMode
	}{
		{"eco", PolicyEco},
		{"non_eco", PolicyNonEco},
		{"neutral", PolicyNeutral},
		{"green", PolicyNeutral},
		{"", PolicyNeutral},
		{"non-eco", PolicyNeutral},
		{"ECO", PolicyNeutral},
		{" eco ", PolicyNeutral},
		{"Non_Eco", PolicyNeutral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePolicyMode(tc.in), "ParsePolicyMode(%q)", tc.in)
	}
}
