package model

import "time"

// ClassificationResult is the stable client-facing shape every recognition
// operation produces, independent of backend field naming.
type ClassificationResult struct {
	Name        string        `json:"name"`
	Type        Category      `json:"type"`
	TypeClass   DisplayClass  `json:"typeClass"`
	Description string        `json:"description"`
	Tips        string        `json:"tips"`
	Similar     []SimilarItem `json:"similar,omitempty"`
	Confidence  int           `json:"confidence,omitempty"`
}

// NewClassificationResult derives the display metadata for a recognized item
// from its category.
func NewClassificationResult(name string, category Category) ClassificationResult {
	return ClassificationResult{
		Name:        name,
		Type:        category,
		TypeClass:   category.DisplayClass(),
		Description: category.Description(),
		Tips:        category.Tips(),
	}
}

// RecognitionRecord is one saved entry in the user's recognition history.
type RecognitionRecord struct {
	RecognizedAt time.Time `json:"recognized_at"`
	Name         string    `json:"name"`
	Type         Category  `json:"type"`
	Source       string    `json:"source"`
	ID           int       `json:"id,omitempty"`
}
