// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pongo

import (
	"github.com/flosch/pongo2/v6"
)

// init registers the custom filters used by the report document template.
func init() {
	if err := pongo2.RegisterFilter("nl2br", nl2brFilter); err != nil {
		panic("Failed to register nl2br filter: " + err.Error())
	}
}
