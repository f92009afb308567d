// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pongo

import (
	"html"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// nl2brFilter escapes the input and converts newlines into <br/> tags so that
// multi-line product text keeps its line breaks in the rendered document.
func nl2brFilter(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	escaped := html.EscapeString(in.String())
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")

	return pongo2.AsSafeValue(escaped), nil
}
