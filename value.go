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

import (
	"encoding/json"
	"fmt"
)

// Value stores the contents of a single cell from a NexusDB query result.
type Value any

// DataType is the type label of a decoded cell.
type DataType string

const (
	// IntDataType is an int data type.
	IntDataType DataType = "Int"
	// FloatDataType is a float data type.
	FloatDataType DataType = "Float"
	// StrDataType is a string data type.
	StrDataType DataType = "Str"
	// BoolDataType is a bool data type.
	BoolDataType DataType = "Bool"
	// UuidDataType is a UUID data type, carried as its string form.
	UuidDataType DataType = "Uuid"
	// JsonDataType is an arbitrary JSON value, passed through unmodified.
	JsonDataType DataType = "Json"
	// ListDataType is a list of cells, decoded recursively.
	ListDataType DataType = "List"
	// UnknownDataType labels any cell that matches no recognized tag.
	UnknownDataType DataType = "Unknown"
)

// DecodeCell converts one wire-encoded cell into its plain value and type
// label. Cells arrive as a one-key object whose key names the type tag,
// e.g. {"Num": {"Int": 5}} or {"Str": "x"}.
//
// Decoding is total: unrecognized shapes degrade to their string
// representation under Unknown, and a non-object cell passes through
// untouched. List elements are decoded recursively but keep only their
// values; the per-element labels are discarded.
func DecodeCell(cell any) (Value, DataType) {
	m, ok := cell.(map[string]any)
	if !ok {
		return cell, UnknownDataType
	}

	if num, ok := m["Num"].(map[string]any); ok {
		if v, ok := num["Int"]; ok {
			return toInt64(v), IntDataType
		}
		if v, ok := num["Float"]; ok {
			return v, FloatDataType
		}
	}
	if v, ok := m["Str"]; ok {
		return v, StrDataType
	}
	if v, ok := m["Bool"]; ok {
		return v, BoolDataType
	}
	if v, ok := m["Uuid"]; ok {
		return v, UuidDataType
	}
	if v, ok := m["Json"]; ok {
		return v, JsonDataType
	}
	if items, ok := m["List"].([]any); ok {
		values := make([]Value, 0, len(items))
		for _, item := range items {
			v, _ := DecodeCell(item)
			values = append(values, v)
		}
		return values, ListDataType
	}

	return stringify(m), UnknownDataType
}

// toInt64 narrows a JSON number to int64. encoding/json unmarshals numbers
// into float64 by default; json.Number shows up when a caller decodes with
// UseNumber.
func toInt64(v any) any {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		return n.String()
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return v
	}
}

func stringify(cell any) string {
	if data, err := json.Marshal(cell); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", cell)
}
