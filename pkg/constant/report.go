// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

// Report variant identifiers. The set is closed; unrecognized values are
// rejected during validation, never silently coerced.
const (
	VariantProductDetails = "product_details"
	VariantTransparency   = "transparency"
	VariantCertification  = "certification"
	VariantCustom         = "custom"
)

// Fixed rendered strings shared by the content renderer and its tests.
const (
	ReportHeaderTitle = "Product Transparency Portal"
	ReportFooterText  = "This report is generated by Product Transparency Portal"

	TransparencyCommitmentText = "This product follows our commitment to transparency in manufacturing and sourcing."
	NoCertificationsText       = "No certifications available for this product."
	CertificationVerifyText    = "All certifications can be verified through our official website or by contacting the certification authorities directly."
	NoCustomContentText        = "Custom sections were not supplied; showing the standard product details instead."
)

// ReportFileExtension is appended to every generated report filename.
const ReportFileExtension = ".pdf"
