// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package model

// SectionKind discriminates how a section body is laid out in the rendered
// document.
type SectionKind string

const (
	// SectionText is a titled paragraph of prose.
	SectionText SectionKind = "text"
	// SectionList is a titled bulleted list.
	SectionList SectionKind = "list"
	// SectionNotice is a highlighted informational block.
	SectionNotice SectionKind = "notice"
	// SectionQA is a titled run of question/answer pairs.
	SectionQA SectionKind = "qa"
	// SectionHeader is the fixed document header block.
	SectionHeader SectionKind = "header"
	// SectionFooter is the fixed document footer block.
	SectionFooter SectionKind = "footer"
)

// Section is the unit of rendered report content. The renderer emits an
// ordered sequence of sections and the document writer serializes them in
// that exact order. Exactly one of Body, Items or Pairs carries the content,
// selected by Kind.
type Section struct {
	Title string           `json:"title"`
	Kind  SectionKind      `json:"kind"`
	Body  string           `json:"body,omitempty"`
	Items []string         `json:"items,omitempty"`
	Pairs []QuestionAnswer `json:"pairs,omitempty"`
}
