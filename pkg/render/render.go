// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package render builds the ordered section sequence for a report. It is
// pure: no I/O, no clock, no randomness, and it never fails for well-typed
// input. Absent optional product fields are omitted rather than rendered as
// empty sections.
package render

import (
	"strconv"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"
)

// Section titles shared with the renderer tests.
const (
	TitleDescription             = "Description"
	TitleCategory                = "Category"
	TitleIngredients             = "Ingredients"
	TitleIngredientsTransparency = "Ingredients Transparency"
	TitleManufacturingProcess    = "Manufacturing Process"
	TitleCountryOfOrigin         = "Country of Origin"
	TitleFAQ                     = "Frequently Asked Questions"
	TitleTransparencyScore       = "Transparency Score"
	TitleCommitment              = "Our Transparency Commitment"
	TitleCertifications          = "Certifications"
	TitleVerification            = "Certification Verification"
)

// Render converts a product snapshot into the ordered section sequence for
// the given report variant. Every variant starts with the fixed header
// section and ends with the fixed footer section. An unrecognized variant is
// rendered as product_details; variant validation is the caller's concern.
func Render(product model.ProductSnapshot, variant string, metadata map[string]any) []model.Section {
	sections := []model.Section{{
		Title: constant.ReportHeaderTitle,
		Kind:  model.SectionHeader,
		Body:  product.Name,
	}}

	switch variant {
	case constant.VariantTransparency:
		sections = append(sections, transparencySections(product)...)
	case constant.VariantCertification:
		sections = append(sections, certificationSections(product)...)
	case constant.VariantCustom:
		sections = append(sections, customSections(product, metadata)...)
	default:
		sections = append(sections, productDetailSections(product)...)
	}

	return append(sections, model.Section{
		Kind: model.SectionFooter,
		Body: constant.ReportFooterText,
	})
}

func productDetailSections(product model.ProductSnapshot) []model.Section {
	var sections []model.Section

	appendText := func(title, body string) {
		if body == "" {
			return
		}

		sections = append(sections, model.Section{Title: title, Kind: model.SectionText, Body: body})
	}

	appendText(TitleDescription, product.Description)
	appendText(TitleCategory, product.Category)
	appendText(TitleIngredients, product.Ingredients)
	appendText(TitleManufacturingProcess, product.ManufacturingProcess)
	appendText(TitleCountryOfOrigin, product.CountryOfOrigin)

	if len(product.QuestionsAnswers) > 0 {
		sections = append(sections, model.Section{
			Title: TitleFAQ,
			Kind:  model.SectionQA,
			Pairs: product.QuestionsAnswers,
		})
	}

	return sections
}

func transparencySections(product model.ProductSnapshot) []model.Section {
	var sections []model.Section

	if product.TransparencyScore != nil {
		sections = append(sections, model.Section{
			Title: TitleTransparencyScore,
			Kind:  model.SectionText,
			Body:  strconv.FormatFloat(*product.TransparencyScore, 'f', -1, 64) + "/10",
		})
	}

	if product.ManufacturingProcess != "" {
		sections = append(sections, model.Section{
			Title: TitleManufacturingProcess,
			Kind:  model.SectionText,
			Body:  product.ManufacturingProcess,
		})
	}

	if product.Ingredients != "" {
		sections = append(sections, model.Section{
			Title: TitleIngredientsTransparency,
			Kind:  model.SectionText,
			Body:  product.Ingredients,
		})
	}

	return append(sections, model.Section{
		Title: TitleCommitment,
		Kind:  model.SectionNotice,
		Body:  constant.TransparencyCommitmentText,
	})
}

func certificationSections(product model.ProductSnapshot) []model.Section {
	var sections []model.Section

	if len(product.Certifications) > 0 {
		sections = append(sections, model.Section{
			Title: TitleCertifications,
			Kind:  model.SectionList,
			Items: product.Certifications,
		})
	} else {
		sections = append(sections, model.Section{
			Title: TitleCertifications,
			Kind:  model.SectionNotice,
			Body:  constant.NoCertificationsText,
		})
	}

	return append(sections, model.Section{
		Title: TitleVerification,
		Kind:  model.SectionText,
		Body:  constant.CertificationVerifyText,
	})
}

func customSections(product model.ProductSnapshot, metadata map[string]any) []model.Section {
	supplied, ok := model.CustomSectionsFromMetadata(metadata)
	if !ok {
		notice := model.Section{Kind: model.SectionNotice, Body: constant.NoCustomContentText}

		return append([]model.Section{notice}, productDetailSections(product)...)
	}

	sections := make([]model.Section, 0, len(supplied))
	for _, s := range supplied {
		sections = append(sections, model.Section{Title: s.Title, Kind: model.SectionText, Body: s.Content})
	}

	return sections
}
