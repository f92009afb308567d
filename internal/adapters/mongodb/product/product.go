// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package product

import (
	"time"

	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/google/uuid"
)

// ProductMongoDBModel represents the MongoDB model for a product. The
// collection is owned by the product subsystem; this adapter only reads the
// snapshot consumed by report generation.
type ProductMongoDBModel struct {
	ID                   uuid.UUID              `bson:"_id"`
	Name                 string                 `bson:"name"`
	Description          string                 `bson:"description"`
	Category             string                 `bson:"category"`
	Ingredients          string                 `bson:"ingredients"`
	ManufacturingProcess string                 `bson:"manufacturing_process"`
	CountryOfOrigin      string                 `bson:"country_of_origin"`
	Certifications       []string               `bson:"certifications"`
	TransparencyScore    *float64               `bson:"transparency_score"`
	QuestionsAnswers     []QuestionAnswerModel  `bson:"questions_answers"`
	CreatedAt            time.Time              `bson:"created_at"`
	UpdatedAt            time.Time              `bson:"updated_at"`
}

// QuestionAnswerModel is one answered transparency question on the product
// document.
type QuestionAnswerModel struct {
	Question string `bson:"question"`
	Answer   string `bson:"answer"`
}

// ToSnapshot converts the MongoDB model to the read-only snapshot consumed
// by report generation. Pair order is preserved.
func (pm *ProductMongoDBModel) ToSnapshot() *model.ProductSnapshot {
	pairs := make([]model.QuestionAnswer, 0, len(pm.QuestionsAnswers))
	for _, qa := range pm.QuestionsAnswers {
		pairs = append(pairs, model.QuestionAnswer{Question: qa.Question, Answer: qa.Answer})
	}

	return &model.ProductSnapshot{
		ID:                   pm.ID.String(),
		Name:                 pm.Name,
		Description:          pm.Description,
		Category:             pm.Category,
		Ingredients:          pm.Ingredients,
		ManufacturingProcess: pm.ManufacturingProcess,
		CountryOfOrigin:      pm.CountryOfOrigin,
		Certifications:       pm.Certifications,
		TransparencyScore:    pm.TransparencyScore,
		QuestionsAnswers:     pairs,
	}
}
