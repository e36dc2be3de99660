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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const tabularBody = `{
	"headers": ["name", "age", "tags"],
	"rows": [
		[{"Str": "Ada"}, {"Num": {"Int": 36}}, {"List": [{"Str": "math"}]}],
		[{"Str": "Grace"}, {"Num": {"Int": 85}}, {"List": []}]
	],
	"took": 0.004
}`

func TestFormatResponseEmptyBody(t *testing.T) {
	for _, opts := range []RenderOptions{
		{},
		{Table: true},
		{IncludeTypes: true},
		{Table: true, IncludeTypes: true},
	} {
		require.Equal(t, "Error: Empty response from server", formatResponse("", opts))
	}
}

func TestFormatResponseMalformedBody(t *testing.T) {
	out := formatResponse("<html>busy</html>", RenderOptions{})
	require.Equal(t, "Error: Response: <html>busy</html> could not be decoded as JSON", out)
}

func TestFormatResponseAcknowledgementPassthrough(t *testing.T) {
	// Create/delete acknowledgements carry no headers/rows and must pass
	// through unchanged.
	body := `{"status":"OK","relation":"users"}`
	require.Equal(t, body, formatResponse(body, RenderOptions{Table: true, IncludeTypes: true}))
}

func TestFormatResponseNonObjectPassthrough(t *testing.T) {
	body := `[1,2,3]`
	require.Equal(t, body, formatResponse(body, RenderOptions{}))
}

func TestFormatResponseJSONKeepsTags(t *testing.T) {
	out := formatResponse(tabularBody, RenderOptions{IncludeTypes: true})

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(tabularBody), &want))
	require.Equal(t, want, doc)
}

func TestFormatResponseJSONDecodesRows(t *testing.T) {
	out := formatResponse(tabularBody, RenderOptions{})

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, []any{"name", "age", "tags"}, doc["headers"])
	require.Equal(t, 0.004, doc["took"])
	require.Equal(t, []any{
		[]any{"Ada", 36.0, []any{"math"}},
		[]any{"Grace", 85.0, []any{}},
	}, doc["rows"])
}

func TestFormatResponseTable(t *testing.T) {
	out := formatResponse(tabularBody, RenderOptions{Table: true})
	require.Contains(t, out, "name")
	require.Contains(t, out, "age")
	require.Contains(t, out, "Ada")
	require.Contains(t, out, "36")
	require.NotContains(t, out, "(Int)")
}

func TestFormatResponseTableWithTypes(t *testing.T) {
	out := formatResponse(tabularBody, RenderOptions{Table: true, IncludeTypes: true})
	require.Contains(t, out, "name (Str)")
	require.Contains(t, out, "age (Int)")
	require.Contains(t, out, "tags (List)")
	require.Contains(t, out, "Grace")
}

func TestFormatResponseZeroRowsKeepsHeaders(t *testing.T) {
	body := `{"headers": ["a", "b"], "rows": []}`
	out := formatResponse(body, RenderOptions{Table: true, IncludeTypes: true})
	require.Contains(t, out, "a")
	require.Contains(t, out, "b")
	require.NotContains(t, out, "(")
}

func TestParseResultSet(t *testing.T) {
	rs, err := ParseResultSet(tabularBody)
	require.NoError(t, err)
	require.Equal(t, []string{"name", "age", "tags"}, rs.Headers)
	require.Len(t, rs.Rows, 2)

	require.Equal(t, [][]Value{
		{"Ada", int64(36), []Value{"math"}},
		{"Grace", int64(85), []Value{}},
	}, rs.DecodedRows())

	require.Equal(t, []DataType{StrDataType, IntDataType, ListDataType}, rs.ColumnTypes())
	require.Equal(t, []string{"name (Str)", "age (Int)", "tags (List)"}, rs.TypedHeaders())
}

func TestParseResultSetErrors(t *testing.T) {
	_, err := ParseResultSet("")
	require.Error(t, err)

	_, err = ParseResultSet("nope")
	require.Error(t, err)

	_, err = ParseResultSet(`{"status":"OK"}`)
	require.Error(t, err)
}

func TestTypedHeadersRowShorterThanHeaders(t *testing.T) {
	rs, err := ParseResultSet(`{"headers": ["a", "b"], "rows": [[{"Num": {"Int": 1}}]]}`)
	require.NoError(t, err)
	require.Equal(t, []string{"a (Int)", "b"}, rs.TypedHeaders())
}

func TestRenderTableAlignment(t *testing.T) {
	out := formatResponse(tabularBody, RenderOptions{Table: true})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header, separator, two data rows
	require.GreaterOrEqual(t, len(lines), 4)
}
