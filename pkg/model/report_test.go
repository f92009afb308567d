// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomSectionsFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		expected []CustomSection
		ok       bool
	}{
		{
			name:     "nil metadata",
			metadata: nil,
			ok:       false,
		},
		{
			name:     "empty metadata",
			metadata: map[string]any{},
			ok:       false,
		},
		{
			name:     "sections not a list",
			metadata: map[string]any{"sections": "not-a-list"},
			ok:       false,
		},
		{
			name:     "empty sections list is well formed",
			metadata: map[string]any{"sections": []any{}},
			expected: []CustomSection{},
			ok:       true,
		},
		{
			name: "well formed sections keep order",
			metadata: map[string]any{
				"sections": []any{
					map[string]any{"title": "Sourcing", "content": "Local farms only."},
					map[string]any{"title": "Packaging", "content": "Recycled glass."},
				},
			},
			expected: []CustomSection{
				{Title: "Sourcing", Content: "Local farms only."},
				{Title: "Packaging", Content: "Recycled glass."},
			},
			ok: true,
		},
		{
			name: "entries missing a field are skipped",
			metadata: map[string]any{
				"sections": []any{
					map[string]any{"title": "Sourcing"},
					map[string]any{"content": "orphan content"},
					map[string]any{"title": "Packaging", "content": "Recycled glass."},
					"not-an-object",
				},
			},
			expected: []CustomSection{
				{Title: "Packaging", Content: "Recycled glass."},
			},
			ok: true,
		},
		{
			name: "title without content is skipped, array stays well formed",
			metadata: map[string]any{
				"sections": []any{
					map[string]any{"title": "x"},
				},
			},
			expected: []CustomSection{},
			ok:       true,
		},
		{
			name: "blank fields count as missing",
			metadata: map[string]any{
				"sections": []any{
					map[string]any{"title": "   ", "content": "body"},
					map[string]any{"title": "Title", "content": ""},
				},
			},
			expected: []CustomSection{},
			ok:       true,
		},
		{
			name: "non string fields are skipped",
			metadata: map[string]any{
				"sections": []any{
					map[string]any{"title": 42, "content": "body"},
				},
			},
			expected: []CustomSection{},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, ok := CustomSectionsFromMetadata(tt.metadata)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, sections)
		})
	}
}
