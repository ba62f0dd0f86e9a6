package domain

// Prediction is the outcome of one processed gesture.
type Prediction struct {
	Class  int    `json:"class"`
	Scores []int8 `json:"scores,omitempty"`
	Points int    `json:"points"`
	Image  *Image `json:"-"`
}

// Decided reports whether the classifier produced a class.
func (p *Prediction) Decided() bool {
	return p.Class != NoDecision
}

// PredictionRequest is a gesture submitted over HTTP.
type PredictionRequest struct {
	Points []Point `json:"points"`
}

// PredictionResult is the HTTP response for a gesture.
type PredictionResult struct {
	Class   int    `json:"class"`
	Decided bool   `json:"decided"`
	Points  int    `json:"points"`
	Scores  []int8 `json:"scores,omitempty"`
	Message string `json:"message,omitempty"`
}
