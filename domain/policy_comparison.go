package domain

type PolicyScenario struct {
	PolicyMode PolicyMode `json:"policy_mode"`
	Value      float64    `json:"value"`
	Prediction string     `json:"prediction"`
}

type PolicyComparison struct {
	RecommendedMode PolicyMode       `json:"recommended_mode"`
	Scenarios       []PolicyScenario `json:"scenarios"`
}
