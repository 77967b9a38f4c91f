package models

// Hole is static course reference data, immutable for the session.
// StrokeIndex is the hole's handicap rating (1 = hardest), serialized
// as "handicap" to match what scorecard clients expect.
type Hole struct {
	Number      int `json:"hole_number" db:"hole_number"`
	Par         int `json:"par" db:"par"`
	StrokeIndex int `json:"handicap" db:"stroke_index"`
}
