/*
 * Copyright 2024 NexusDB, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nexusdb

// Column is a user-supplied column specification for relation creation.
// Only Name is required; the remaining attributes are filled in by the
// client before the request is sent.
type Column struct {
	// Name is the column name.
	Name string
	// Type is the NexusDB column type, e.g. "Int?" or "Array(String)?".
	// Empty means "Any?".
	Type string
	// Default is the default value for the column. Nil means null.
	Default any
	// IsPrimary marks the column as part of the primary key. Nil means
	// unspecified: when no column in the sequence is explicitly marked,
	// the first column becomes primary.
	IsPrimary *bool
}

// Bool returns a pointer to b, for use in Column.IsPrimary.
func Bool(b bool) *bool {
	return &b
}

// relationField is the fully-populated wire form of a column.
type relationField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Default   any    `json:"default"`
	IsPrimary bool   `json:"is_primary"`
}

// resolveColumns fills in missing type/default/primary attributes.
//
// Exactly the explicitly-marked primary columns remain primary. When no
// column is explicitly marked, index 0 becomes primary. Multiple explicit
// primaries pass through as-is; the server is the arbiter of validity.
func resolveColumns(columns []Column) []relationField {
	primarySeen := false
	for _, c := range columns {
		if c.IsPrimary != nil && *c.IsPrimary {
			primarySeen = true
		}
	}

	fields := make([]relationField, 0, len(columns))
	for i, c := range columns {
		typ := c.Type
		if typ == "" {
			typ = "Any?"
		}

		var isPrimary bool
		if c.IsPrimary != nil {
			isPrimary = *c.IsPrimary
		} else {
			isPrimary = !primarySeen && i == 0
			if isPrimary {
				primarySeen = true
			}
		}

		fields = append(fields, relationField{
			Name:      c.Name,
			Type:      typ,
			Default:   c.Default,
			IsPrimary: isPrimary,
		})
	}
	return fields
}
