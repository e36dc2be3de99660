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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// emptyResponseError is returned by the shaper when the server sends an
// empty body.
const emptyResponseError = "Error: Empty response from server"

// RenderOptions controls how a tabular response body is reshaped before it
// is returned to the caller.
type RenderOptions struct {
	// Table renders the result as an aligned text table instead of JSON.
	Table bool
	// IncludeTypes annotates column headers with the type label inferred
	// from the first row, e.g. "age (Int)". In JSON mode the original
	// tagged cells are kept instead of being decoded.
	IncludeTypes bool
}

// ResultSet stores a parsed tabular query response.
type ResultSet struct {
	// Headers are the column names.
	Headers []string
	// Rows are the raw tagged cells, row-major.
	Rows [][]any

	doc map[string]any
}

// ParseResultSet parses a tabular response body.
//
// It fails if the body is empty, is not a JSON object, or lacks the headers
// and rows fields carried by tabular responses.
func ParseResultSet(body string) (*ResultSet, error) {
	if body == "" {
		return nil, errors.New("empty response body")
	}
	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, err
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return nil, errors.New("response is not a JSON object")
	}
	rs, ok := newResultSet(doc)
	if !ok {
		return nil, errors.New("response is not tabular")
	}
	return rs, nil
}

func newResultSet(doc map[string]any) (*ResultSet, bool) {
	rawHeaders, ok := doc["headers"].([]any)
	if !ok {
		return nil, false
	}
	rawRows, ok := doc["rows"].([]any)
	if !ok {
		return nil, false
	}

	headers := make([]string, 0, len(rawHeaders))
	for _, h := range rawHeaders {
		if s, ok := h.(string); ok {
			headers = append(headers, s)
		} else {
			headers = append(headers, stringify(h))
		}
	}

	rows := make([][]any, 0, len(rawRows))
	for _, r := range rawRows {
		if cells, ok := r.([]any); ok {
			rows = append(rows, cells)
		} else {
			rows = append(rows, []any{r})
		}
	}

	return &ResultSet{Headers: headers, Rows: rows, doc: doc}, true
}

// DecodedRows decodes every cell in every row, discarding type labels.
func (rs *ResultSet) DecodedRows() [][]Value {
	rows := make([][]Value, 0, len(rs.Rows))
	for _, r := range rs.Rows {
		values := make([]Value, 0, len(r))
		for _, cell := range r {
			v, _ := DecodeCell(cell)
			values = append(values, v)
		}
		rows = append(rows, values)
	}
	return rows
}

// ColumnTypes infers the type label of each column from the first row.
// The result is empty when there are no rows.
//
// A column's declared type is not independently available here, only a
// sample from the first observed row; later rows carrying a different tag
// for the same column are not detected.
func (rs *ResultSet) ColumnTypes() []DataType {
	if len(rs.Rows) == 0 {
		return nil
	}
	types := make([]DataType, 0, len(rs.Rows[0]))
	for _, cell := range rs.Rows[0] {
		_, typ := DecodeCell(cell)
		types = append(types, typ)
	}
	return types
}

// TypedHeaders returns the headers annotated with first-row type labels,
// e.g. "age (Int)". With zero rows the headers are returned unmodified.
func (rs *ResultSet) TypedHeaders() []string {
	types := rs.ColumnTypes()
	if types == nil {
		return rs.Headers
	}
	headers := make([]string, len(rs.Headers))
	for i, h := range rs.Headers {
		if i < len(types) {
			headers[i] = fmt.Sprintf("%s (%s)", h, types[i])
		} else {
			headers[i] = h
		}
	}
	return headers
}

// Table renders the decoded rows as an aligned text table.
func (rs *ResultSet) Table(includeTypes bool) string {
	headers := rs.Headers
	if includeTypes {
		headers = rs.TypedHeaders()
	}
	return renderTable(headers, rs.DecodedRows())
}

// formatResponse reshapes a raw response body per the render options.
//
// It never fails: an empty body and an undecodable body yield literal error
// strings, and a body without tabular fields passes through unchanged, so
// acknowledgements from create/delete and friends survive intact.
func formatResponse(body string, opts RenderOptions) string {
	if body == "" {
		return emptyResponseError
	}

	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return fmt.Sprintf("Error: Response: %s could not be decoded as JSON", body)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return body
	}
	rs, ok := newResultSet(doc)
	if !ok {
		return body
	}

	if opts.Table {
		return rs.Table(opts.IncludeTypes)
	}

	if !opts.IncludeTypes {
		// Strip the type tags from the document before re-serializing.
		doc["rows"] = rs.DecodedRows()
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return fmt.Sprintf("Error: Response: %s could not be decoded as JSON", body)
	}
	return string(out)
}

func renderTable(headers []string, rows [][]Value) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("-")
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, formatCell(v))
		}
		table.Append(cells)
	}
	table.Render()
	return buf.String()
}

func formatCell(v Value) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []Value, map[string]any:
		return stringify(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
