// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkg

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/google/uuid"
)

// GetMapNumKinds get the map of numeric kinds to use in validations and conversions.
func GetMapNumKinds() map[reflect.Kind]bool {
	return map[reflect.Kind]bool{
		reflect.Int:     true,
		reflect.Int8:    true,
		reflect.Int16:   true,
		reflect.Int32:   true,
		reflect.Int64:   true,
		reflect.Float32: true,
		reflect.Float64: true,
	}
}

// IsValidReportVariant returns a boolean indicating whether the value belongs to
// the closed report variant enumeration.
func IsValidReportVariant(variant string) bool {
	switch variant {
	case constant.VariantProductDetails, constant.VariantTransparency, constant.VariantCertification, constant.VariantCustom:
		return true
	}

	return false
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// SlugifyFilenamePart makes a string safe for use inside a publicly addressable
// filename: whitespace becomes underscores and any character outside
// [A-Za-z0-9_.-] is removed, which also strips path separators and traversal
// sequences. An input that reduces to nothing yields "report".
func SlugifyFilenamePart(s string) string {
	out := whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "_")
	out = unsafeRe.ReplaceAllString(out, "")
	out = strings.Trim(out, ".")

	if out == "" {
		return "report"
	}

	return out
}

// NewReportFilename allocates a collision-resistant report filename from the
// product name, the report variant and a random unique token. Collisions are made
// negligible by the token, not prevented by a lock.
func NewReportFilename(productName, variant string) string {
	return SlugifyFilenamePart(productName) + "_" + variant + "_" + uuid.New().String() + constant.ReportFileExtension
}

// ValidateServerAddress checks if the value matches the pattern <some-address>:<some-port>
// and returns the value if it does.
func ValidateServerAddress(value string) string {
	matched, _ := regexp.MatchString(`^[^:]+:\d+$`, value)
	if !matched {
		return ""
	}

	return value
}
