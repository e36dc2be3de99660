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

// LookupRequest reads rows from a single relation.
type LookupRequest struct {
	// Relation is the name of the relation to read.
	Relation string
	// Fields restricts the returned columns. Empty means all columns.
	Fields []string
	// Condition filters the rows, e.g. "age > 30".
	Condition string
	// Render controls how the response body is reshaped.
	Render RenderOptions
}

type lookupPayload struct {
	QueryType    QueryType `json:"query_type"`
	RelationName string    `json:"relation_name"`
	Fields       []string  `json:"fields"`
	Condition    string    `json:"condition"`
}

// Lookup reads rows from the specified relation.
func (c *Client) Lookup(ctx context.Context, req *LookupRequest) (string, error) {
	fields := req.Fields
	if fields == nil {
		fields = []string{}
	}
	body, err := c.submitQuery(ctx, QueryTypeLookup, &lookupPayload{
		QueryType:    QueryTypeLookup,
		RelationName: req.Relation,
		Fields:       fields,
		Condition:    req.Condition,
	})
	if err != nil {
		return "", err
	}
	return formatResponse(body, req.Render), nil
}

// JoinRelation names one relation participating in a join.
type JoinRelation struct {
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	Defaults     any      `json:"defaults,omitempty"`
}

// JoinRequest joins two or more relations.
type JoinRequest struct {
	// JoinType is the kind of join, e.g. "Inner" or "Outer".
	JoinType string
	// Relations are the relations participating in the join.
	Relations []JoinRelation
	// ReturnFields are the fields to return from the joined rows.
	ReturnFields []string
	// Option is an additional option for the join, e.g. a limit clause.
	Option any
	// Render controls how the response body is reshaped.
	Render RenderOptions
}

type joinReturn struct {
	Fields []string `json:"fields"`
	Option any      `json:"option,omitempty"`
}

type joinPayload struct {
	QueryType QueryType      `json:"query_type"`
	JoinType  string         `json:"join_type"`
	Relations []JoinRelation `json:"relations"`
	Return    joinReturn     `json:"return"`
}

// Join executes a join query over the specified relations.
func (c *Client) Join(ctx context.Context, req *JoinRequest) (string, error) {
	body, err := c.submitQuery(ctx, QueryTypeJoin, &joinPayload{
		QueryType: QueryTypeJoin,
		JoinType:  req.JoinType,
		Relations: req.Relations,
		Return: joinReturn{
			Fields: req.ReturnFields,
			Option: req.Option,
		},
	})
	if err != nil {
		return "", err
	}
	return formatResponse(body, req.Render), nil
}

// VectorSearchRequest searches for rows whose embeddings are close to the
// query vector.
type VectorSearchRequest struct {
	// QueryVector is the vector to search around.
	QueryVector []float64
	// AccessKeys authorize the search.
	AccessKeys []string
	// SearchRadius bounds the distance of returned rows. Zero means the
	// server default.
	SearchRadius float64
	// NumberOfResults caps the number of returned rows. Zero means the
	// server default.
	NumberOfResults int
	// FilterStatement filters the candidate rows, e.g. "category = 'news'".
	FilterStatement string
	// Render controls how the response body is reshaped.
	Render RenderOptions
}

type vectorSearchPayload struct {
	QueryType       QueryType `json:"query_type"`
	QueryVector     []float64 `json:"query_vector"`
	AccessKeys      []string  `json:"access_keys,omitempty"`
	SearchRadius    float64   `json:"search_radius,omitempty"`
	NumberOfResults int       `json:"number_of_results,omitempty"`
	FilterStatement string    `json:"filter_statement,omitempty"`
}

// VectorSearch searches the database by vector similarity.
func (c *Client) VectorSearch(ctx context.Context, req *VectorSearchRequest) (string, error) {
	body, err := c.submitQuery(ctx, QueryTypeVectorSearch, &vectorSearchPayload{
		QueryType:       QueryTypeVectorSearch,
		QueryVector:     req.QueryVector,
		AccessKeys:      req.AccessKeys,
		SearchRadius:    req.SearchRadius,
		NumberOfResults: req.NumberOfResults,
		FilterStatement: req.FilterStatement,
	})
	if err != nil {
		return "", err
	}
	return formatResponse(body, req.Render), nil
}

// RecursionRequest walks a graph stored in a relation, following edges from
// Source to Target starting from the rows matched by StartingCondition.
type RecursionRequest struct {
	// Relation is the name of the relation holding the edges.
	Relation string
	// Source is the source field of an edge.
	Source string
	// Target is the target field of an edge.
	Target string
	// StartingCondition selects the rows the recursion starts from,
	// e.g. "targetId = 'emailmessage_3'".
	StartingCondition string
	// Render controls how the response body is reshaped.
	Render RenderOptions
}

type recursionRelation struct {
	RelationName string   `json:"relation_name"`
	Fields       []string `json:"fields"`
	Condition    string   `json:"condition"`
	Defaults     any      `json:"defaults"`
	AccessKeys   any      `json:"access_keys"`
}

type recursionPayload struct {
	QueryType QueryType         `json:"query_type"`
	Relation  recursionRelation `json:"relation"`
	Source    string            `json:"source"`
	Target    string            `json:"target"`
}

// RecursiveQuery executes a recursive graph query on the specified relation.
func (c *Client) RecursiveQuery(ctx context.Context, req *RecursionRequest) (string, error) {
	body, err := c.submitQuery(ctx, QueryTypeRecursion, &recursionPayload{
		QueryType: QueryTypeRecursion,
		Relation: recursionRelation{
			RelationName: req.Relation,
			// Fields are populated by the server.
			Fields:     []string{},
			Condition:  req.StartingCondition,
			Defaults:   nil,
			AccessKeys: nil,
		},
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		return "", err
	}
	return formatResponse(body, req.Render), nil
}
