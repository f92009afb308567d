// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionTitles(sections []model.Section) []string {
	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}

	return titles
}

func fullProduct() model.ProductSnapshot {
	score := 8.0

	return model.ProductSnapshot{
		ID:                   "0194f168-bd27-7b4c-b9a9-5d2f3a1c8e11",
		Name:                 "Organic Honey",
		Description:          "Raw honey from certified organic apiaries.",
		Category:             "Food",
		Ingredients:          "100% raw honey",
		ManufacturingProcess: "Cold extracted and coarse filtered.",
		CountryOfOrigin:      "New Zealand",
		Certifications:       []string{"Organic", "Non-GMO"},
		TransparencyScore:    &score,
		QuestionsAnswers: []model.QuestionAnswer{
			{Question: "Is the honey pasteurized?", Answer: "No, it is raw."},
			{Question: "Are the hives treated with antibiotics?", Answer: "No."},
		},
	}
}

func TestRenderAlwaysBracketsWithHeaderAndFooter(t *testing.T) {
	variants := []string{
		constant.VariantProductDetails,
		constant.VariantTransparency,
		constant.VariantCertification,
		constant.VariantCustom,
	}

	for _, variant := range variants {
		t.Run(variant, func(t *testing.T) {
			sections := Render(fullProduct(), variant, nil)

			require.GreaterOrEqual(t, len(sections), 2)
			assert.Equal(t, model.SectionHeader, sections[0].Kind)
			assert.Equal(t, constant.ReportHeaderTitle, sections[0].Title)
			assert.Equal(t, "Organic Honey", sections[0].Body)
			assert.Equal(t, model.SectionFooter, sections[len(sections)-1].Kind)
			assert.Equal(t, constant.ReportFooterText, sections[len(sections)-1].Body)
		})
	}
}

func TestRenderProductDetails(t *testing.T) {
	sections := Render(fullProduct(), constant.VariantProductDetails, nil)

	assert.Equal(t, []string{
		constant.ReportHeaderTitle,
		TitleDescription,
		TitleCategory,
		TitleIngredients,
		TitleManufacturingProcess,
		TitleCountryOfOrigin,
		TitleFAQ,
		"",
	}, sectionTitles(sections))

	faq := sections[6]
	assert.Equal(t, model.SectionQA, faq.Kind)
	require.Len(t, faq.Pairs, 2)
	assert.Equal(t, "Is the honey pasteurized?", faq.Pairs[0].Question)
	assert.Equal(t, "No.", faq.Pairs[1].Answer)
}

func TestRenderProductDetailsOmitsEmptyFields(t *testing.T) {
	product := model.ProductSnapshot{Name: "Bare Product", Category: "Food"}

	sections := Render(product, constant.VariantProductDetails, nil)

	assert.Equal(t, []string{constant.ReportHeaderTitle, TitleCategory, ""}, sectionTitles(sections))

	for _, s := range sections {
		if s.Kind == model.SectionText {
			assert.NotEmpty(t, s.Body, "empty optional fields must be omitted, not rendered blank")
		}
	}
}

func TestRenderTransparency(t *testing.T) {
	sections := Render(fullProduct(), constant.VariantTransparency, nil)

	assert.Equal(t, []string{
		constant.ReportHeaderTitle,
		TitleTransparencyScore,
		TitleManufacturingProcess,
		TitleIngredientsTransparency,
		TitleCommitment,
		"",
	}, sectionTitles(sections))

	assert.Equal(t, "8/10", sections[1].Body)
	assert.Equal(t, model.SectionNotice, sections[4].Kind)
	assert.Equal(t, constant.TransparencyCommitmentText, sections[4].Body)
}

func TestRenderTransparencyOmitsAbsentScore(t *testing.T) {
	product := fullProduct()
	product.TransparencyScore = nil

	sections := Render(product, constant.VariantTransparency, nil)

	assert.NotContains(t, sectionTitles(sections), TitleTransparencyScore)
}

func TestRenderTransparencyFractionalScore(t *testing.T) {
	product := fullProduct()
	score := 7.5
	product.TransparencyScore = &score

	sections := Render(product, constant.VariantTransparency, nil)

	assert.Equal(t, "7.5/10", sections[1].Body)
}

func TestRenderCertification(t *testing.T) {
	sections := Render(fullProduct(), constant.VariantCertification, nil)

	assert.Equal(t, []string{
		constant.ReportHeaderTitle,
		TitleCertifications,
		TitleVerification,
		"",
	}, sectionTitles(sections))

	certs := sections[1]
	assert.Equal(t, model.SectionList, certs.Kind)
	assert.Equal(t, []string{"Organic", "Non-GMO"}, certs.Items)

	// Transparency score is irrelevant to this variant even when present.
	assert.NotContains(t, sectionTitles(sections), TitleTransparencyScore)
}

func TestRenderCertificationEmptyList(t *testing.T) {
	product := fullProduct()
	product.Certifications = nil

	sections := Render(product, constant.VariantCertification, nil)

	certs := sections[1]
	assert.Equal(t, model.SectionNotice, certs.Kind)
	assert.Equal(t, constant.NoCertificationsText, certs.Body)
	assert.Empty(t, certs.Items, "an empty bullet list must never be emitted")
}

func TestRenderCustomWithSections(t *testing.T) {
	metadata := map[string]any{
		"sections": []any{
			map[string]any{"title": "Sourcing", "content": "Local farms only."},
			map[string]any{"title": "Packaging", "content": "Recycled glass."},
		},
	}

	sections := Render(fullProduct(), constant.VariantCustom, metadata)

	assert.Equal(t, []string{
		constant.ReportHeaderTitle,
		"Sourcing",
		"Packaging",
		"",
	}, sectionTitles(sections))

	assert.Equal(t, "Local farms only.", sections[1].Body)
	assert.Equal(t, "Recycled glass.", sections[2].Body)
}

func TestRenderCustomFallback(t *testing.T) {
	product := fullProduct()

	details := Render(product, constant.VariantProductDetails, nil)
	custom := Render(product, constant.VariantCustom, map[string]any{})

	// Fallback equals product_details plus one notice right after the header.
	require.Len(t, custom, len(details)+1)
	assert.Equal(t, model.SectionNotice, custom[1].Kind)
	assert.Equal(t, constant.NoCustomContentText, custom[1].Body)
	assert.Equal(t, details[0], custom[0])
	assert.Equal(t, details[1:], custom[2:])
}

func TestRenderCustomMalformedMetadataFallsBack(t *testing.T) {
	malformed := []map[string]any{
		nil,
		{"sections": "nope"},
	}

	for _, metadata := range malformed {
		sections := Render(fullProduct(), constant.VariantCustom, metadata)

		assert.Equal(t, model.SectionNotice, sections[1].Kind)
		assert.Equal(t, constant.NoCustomContentText, sections[1].Body)
	}
}

func TestRenderCustomAllEntriesSkippedRendersNoFallback(t *testing.T) {
	metadata := map[string]any{
		"sections": []any{map[string]any{"title": "x"}},
	}

	sections := Render(fullProduct(), constant.VariantCustom, metadata)

	// A well-formed sections array with no surviving entries keeps the
	// custom rendering: header and footer only, no notice, no details.
	require.Len(t, sections, 2)
	assert.Equal(t, model.SectionHeader, sections[0].Kind)
	assert.Equal(t, model.SectionFooter, sections[1].Kind)
}

func TestRenderIsDeterministic(t *testing.T) {
	first := Render(fullProduct(), constant.VariantProductDetails, nil)
	second := Render(fullProduct(), constant.VariantProductDetails, nil)

	assert.Equal(t, first, second)
}
