// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pongo

import (
	"context"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/flosch/pongo2/v6"
)

// documentTemplate lays out an ordered sequence of report sections as a
// print-oriented HTML page. Section titles are wrapped in
// <h2 class="section-title"> so structural boundaries stay machine-checkable.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{ documentTitle }}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 0; }
  header { border-bottom: 2px solid #2c7a4b; padding: 24px 32px 16px; }
  header h1 { margin: 0 0 4px; font-size: 22px; color: #2c7a4b; }
  header p { margin: 0; font-size: 16px; }
  main { padding: 16px 32px; }
  section.report-section { margin-bottom: 18px; page-break-inside: avoid; }
  h2.section-title { font-size: 14px; text-transform: uppercase; letter-spacing: 0.04em; color: #2c7a4b; margin: 0 0 6px; }
  p.section-body { font-size: 12px; line-height: 1.5; margin: 0; }
  ul.section-list { font-size: 12px; line-height: 1.5; margin: 0; padding-left: 18px; }
  div.notice { background: #f2f7f4; border-left: 3px solid #2c7a4b; padding: 8px 12px; font-size: 12px; }
  div.qa-pair { margin-bottom: 8px; }
  p.question { font-weight: bold; font-size: 12px; margin: 0; }
  p.answer { font-size: 12px; margin: 0 0 4px; }
  footer { border-top: 1px solid #cccccc; margin-top: 24px; padding: 12px 32px; font-size: 10px; color: #666666; }
</style>
</head>
<body>
{% for section in sections %}{% if section.kind == "header" %}<header>
<h1>{{ section.title }}</h1>
<p>{{ section.body }}</p>
</header>
<main>
{% elif section.kind == "footer" %}</main>
<footer>{{ section.body }}</footer>
{% elif section.kind == "list" %}<section class="report-section">
<h2 class="section-title">{{ section.title }}</h2>
<ul class="section-list">{% for item in section.items %}
<li>{{ item }}</li>{% endfor %}
</ul>
</section>
{% elif section.kind == "qa" %}<section class="report-section">
<h2 class="section-title">{{ section.title }}</h2>
{% for pair in section.pairs %}<div class="qa-pair">
<p class="question">{{ pair.question }}</p>
<p class="answer">{{ pair.answer }}</p>
</div>
{% endfor %}</section>
{% elif section.kind == "notice" %}<section class="report-section">
{% if section.title %}<h2 class="section-title">{{ section.title }}</h2>
{% endif %}<div class="notice">{{ section.body }}</div>
</section>
{% else %}<section class="report-section">
<h2 class="section-title">{{ section.title }}</h2>
<p class="section-body">{{ section.body|nl2br }}</p>
</section>
{% endif %}{% endfor %}</body>
</html>
`

// DocumentComposer turns rendered sections into the HTML document handed to
// the PDF engine.
type DocumentComposer struct{}

// NewDocumentComposer creates a new DocumentComposer.
func NewDocumentComposer() *DocumentComposer {
	return &DocumentComposer{}
}

// Compose executes the document template over the given sections and returns
// the resulting HTML. Section order is preserved exactly.
func (c *DocumentComposer) Compose(ctx context.Context, sections []model.Section, logger log.Logger) (string, error) {
	tpl, err := pongo2.FromString(documentTemplate)
	if err != nil {
		logger.Errorf("Error parsing document template: %s", err.Error())
		return "", err
	}

	documentTitle := ""
	rows := make([]map[string]any, 0, len(sections))

	for _, s := range sections {
		if s.Kind == model.SectionHeader && documentTitle == "" {
			documentTitle = s.Title
		}

		pairs := make([]map[string]any, 0, len(s.Pairs))
		for _, p := range s.Pairs {
			pairs = append(pairs, map[string]any{"question": p.Question, "answer": p.Answer})
		}

		rows = append(rows, map[string]any{
			"title": s.Title,
			"kind":  string(s.Kind),
			"body":  s.Body,
			"items": s.Items,
			"pairs": pairs,
		})
	}

	out, err := tpl.Execute(pongo2.Context{
		"documentTitle": documentTitle,
		"sections":      rows,
	})
	if err != nil {
		logger.Errorf("Error executing document template: %s", err.Error())
		return "", err
	}

	return out, nil
}
