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
	"context"
)

type createPayload struct {
	QueryType    QueryType       `json:"query_type"`
	RelationName string          `json:"relation_name"`
	Fields       []relationField `json:"fields"`
}

// Create creates a new relation with the specified columns.
//
// Missing column attributes are filled in before the request is sent: the
// type defaults to "Any?", the default value to null, and when no column is
// explicitly marked primary the first one becomes primary.
func (c *Client) Create(ctx context.Context, relation string, columns []Column) (string, error) {
	return c.submitQuery(ctx, QueryTypeCreate, &createPayload{
		QueryType:    QueryTypeCreate,
		RelationName: relation,
		Fields:       resolveColumns(columns),
	})
}

// DeleteRequest deletes rows from a relation, selected either by a
// condition or by explicit primary keys.
type DeleteRequest struct {
	// Relation is the name of the relation to delete from.
	Relation string
	// Condition selects the rows to delete, e.g. "id = 1".
	Condition string
	// PrimaryKeys selects rows by primary key instead of a condition.
	// Ignored when Condition is set.
	PrimaryKeys []any
}

type deletePayload struct {
	QueryType    QueryType `json:"query_type"`
	RelationName string    `json:"relation_name"`
	Condition    string    `json:"condition,omitempty"`
	PrimaryKeys  []any     `json:"primary_keys,omitempty"`
}

// Delete deletes rows from the specified relation.
func (c *Client) Delete(ctx context.Context, req *DeleteRequest) (string, error) {
	payload := &deletePayload{
		QueryType:    QueryTypeDelete,
		RelationName: req.Relation,
	}
	if req.Condition != "" || len(req.PrimaryKeys) == 0 {
		payload.Condition = req.Condition
	} else {
		payload.PrimaryKeys = req.PrimaryKeys
	}
	return c.submitQuery(ctx, QueryTypeDelete, payload)
}

// ColumnEditorRequest edits columns in a relation, optionally adding new
// ones.
type ColumnEditorRequest struct {
	// Relation is the name of the relation to edit.
	Relation string
	// Fields lists the fields involved in the edit.
	Fields []string
	// AddColumns defines new columns to add.
	AddColumns any
	// Condition restricts which rows the edit applies to.
	Condition string
	// AccessKeys authorize the edit.
	AccessKeys []string
}

type columnEditorPayload struct {
	QueryType    QueryType `json:"query_type"`
	RelationName string    `json:"relation_name"`
	Fields       []string  `json:"fields"`
	AddColumns   any       `json:"add_columns"`
	Condition    string    `json:"condition"`
	AccessKeys   []string  `json:"access_keys"`
}

// EditColumns edits columns in the specified relation.
func (c *Client) EditColumns(ctx context.Context, req *ColumnEditorRequest) (string, error) {
	fields := req.Fields
	if fields == nil {
		fields = []string{}
	}
	accessKeys := req.AccessKeys
	if accessKeys == nil {
		accessKeys = []string{}
	}
	return c.submitQuery(ctx, QueryTypeColumnEditor, &columnEditorPayload{
		QueryType:    QueryTypeColumnEditor,
		RelationName: req.Relation,
		Fields:       fields,
		AddColumns:   req.AddColumns,
		Condition:    req.Condition,
		AccessKeys:   accessKeys,
	})
}
