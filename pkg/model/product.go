// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package model

// QuestionAnswer is one answered transparency question attached to a product.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProductSnapshot is the read-only view of a product consumed by report
// generation. It is resolved once per request and never mutated afterwards.
type ProductSnapshot struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description"`
	Category             string           `json:"category"`
	Ingredients          string           `json:"ingredients"`
	ManufacturingProcess string           `json:"manufacturingProcess"`
	CountryOfOrigin      string           `json:"countryOfOrigin"`
	Certifications       []string         `json:"certifications"`
	TransparencyScore    *float64         `json:"transparencyScore,omitempty"`
	QuestionsAnswers     []QuestionAnswer `json:"questionsAnswers"`
}
