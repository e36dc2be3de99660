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

// SearchableContent carries vector content for a write, indexed by the
// server for vector search.
type SearchableContent struct {
	// Text is the raw text content.
	Text string `json:"text"`
	// Embeddings is the vector for the text.
	Embeddings []float64 `json:"embeddings"`
	// Metadata is attached to the content verbatim.
	Metadata any `json:"metadata,omitempty"`
	// Reference links the content to other rows.
	Reference any `json:"reference,omitempty"`
}

// WriteRequest describes an Insert, Upsert, or Update. A write carries
// tabular data (Fields and Values together), searchable vector content, or
// both.
type WriteRequest struct {
	// Relation is the name of the relation to write to.
	Relation string
	// Fields lists the columns being written. Must be set together with
	// Values.
	Fields []string
	// Values holds one row per entry, aligned with Fields.
	Values [][]any
	// Searchable is optional vector content. Text and Embeddings must be
	// set together.
	Searchable *SearchableContent
	// AccessKeys authorize the write.
	AccessKeys []string
}

type writePayload struct {
	QueryType         QueryType          `json:"query_type"`
	RelationName      string             `json:"relation_name"`
	Fields            []string           `json:"fields,omitempty"`
	Values            [][]any            `json:"values,omitempty"`
	SearchableContent *SearchableContent `json:"searchable_content,omitempty"`
	AccessKeys        []string           `json:"access_keys,omitempty"`
}

// Insert inserts rows into the specified relation.
func (c *Client) Insert(ctx context.Context, req *WriteRequest) (string, error) {
	return c.write(ctx, QueryTypeInsert, req)
}

// Upsert inserts rows into the specified relation, replacing rows whose
// primary key already exists.
func (c *Client) Upsert(ctx context.Context, req *WriteRequest) (string, error) {
	return c.write(ctx, QueryTypeUpsert, req)
}

// Update updates existing rows in the specified relation.
func (c *Client) Update(ctx context.Context, req *WriteRequest) (string, error) {
	return c.write(ctx, QueryTypeUpdate, req)
}

func (c *Client) write(ctx context.Context, queryType QueryType, req *WriteRequest) (string, error) {
	if err := validateWrite(req); err != nil {
		return "", err
	}

	payload := &writePayload{
		QueryType:         queryType,
		RelationName:      req.Relation,
		Fields:            req.Fields,
		Values:            req.Values,
		SearchableContent: req.Searchable,
		AccessKeys:        req.AccessKeys,
	}
	return c.submitQuery(ctx, queryType, payload)
}

// validateWrite rejects malformed writes before any network call.
func validateWrite(req *WriteRequest) error {
	if (req.Fields == nil) != (req.Values == nil) {
		return ErrFieldsValues
	}
	if req.Searchable != nil && (req.Searchable.Text == "") != (req.Searchable.Embeddings == nil) {
		return ErrTextEmbeddings
	}
	if req.Fields == nil && req.Searchable == nil {
		return ErrEmptyWrite
	}
	return nil
}
