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

package itcases

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	nexusdb "github.com/nexusdb/nexusdb-sdk/go"
	"github.com/stretchr/testify/require"
)

func TestCreateInsertLookup(t *testing.T) {
	c := NewClient(t)
	defer c.Close()

	ctx := context.Background()
	relation := RandomName(t)
	t.Logf("With relation: %s", relation)

	_, err := c.Create(ctx, relation, []nexusdb.Column{
		{Name: "id", Type: "String?"},
		{Name: "name", Type: "String?"},
		{Name: "age", Type: "Int?"},
	})
	require.NoError(t, err)

	id := uuid.NewString()
	name := gofakeit.Name()
	_, err = c.Insert(ctx, &nexusdb.WriteRequest{
		Relation: relation,
		Fields:   []string{"id", "name", "age"},
		Values:   [][]any{{id, name, gofakeit.Number(18, 90)}},
	})
	require.NoError(t, err)

	out, err := c.Lookup(ctx, &nexusdb.LookupRequest{
		Relation: relation,
		Render:   nexusdb.RenderOptions{Table: true, IncludeTypes: true},
	})
	require.NoError(t, err)
	require.Contains(t, out, name)
	require.Contains(t, out, "age (Int)")

	_, err = c.Delete(ctx, &nexusdb.DeleteRequest{
		Relation:  relation,
		Condition: "id = '" + id + "'",
	})
	require.NoError(t, err)
}

func TestLookupTypedResult(t *testing.T) {
	c := NewClient(t)
	defer c.Close()

	ctx := context.Background()
	relation := RandomName(t)

	_, err := c.Create(ctx, relation, []nexusdb.Column{
		{Name: "id"},
		{Name: "score", Type: "Float?"},
	})
	require.NoError(t, err)

	_, err = c.Insert(ctx, &nexusdb.WriteRequest{
		Relation: relation,
		Fields:   []string{"id", "score"},
		Values:   [][]any{{1, 0.75}},
	})
	require.NoError(t, err)

	body, err := c.Lookup(ctx, &nexusdb.LookupRequest{
		Relation: relation,
		Render:   nexusdb.RenderOptions{IncludeTypes: true},
	})
	require.NoError(t, err)

	rs, err := nexusdb.ParseResultSet(body)
	require.NoError(t, err)
	require.Len(t, rs.DecodedRows(), 1)

	record, err := rs.ToArrowRecord()
	require.NoError(t, err)
	defer record.Release()
	require.EqualValues(t, 1, record.NumRows())
}
