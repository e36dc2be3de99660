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
	"encoding/json"
	"io"
	"net/url"
)

// QueryType tags every request payload with the operation kind.
type QueryType string

const (
	QueryTypeCreate       QueryType = "Create"
	QueryTypeInsert       QueryType = "Insert"
	QueryTypeUpsert       QueryType = "Upsert"
	QueryTypeUpdate       QueryType = "Update"
	QueryTypeLookup       QueryType = "Lookup"
	QueryTypeJoin         QueryType = "Join"
	QueryTypeDelete       QueryType = "Delete"
	QueryTypeColumnEditor QueryType = "ColumnEditor"
	QueryTypeVectorSearch QueryType = "VectorSearch"
	QueryTypeRecursion    QueryType = "Recursion"
)

// submitQuery marshals the payload, POSTs it to the configured endpoint with
// the static header set, and returns the raw response body.
//
// Every operation goes through here: one synchronous request per call, no
// retries. Transport errors propagate to the caller unmodified.
func (c *Client) submitQuery(ctx context.Context, queryType QueryType, payload any) (string, error) {
	u, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	c.logger.Debug().Str("query_type", string(queryType)).RawJSON("payload", body).Msg("submit query")

	resp, err := c.http.Post(ctx, u, c.headers(), body)
	if err != nil {
		return "", err
	}
	defer sneakyBodyClose(resp.Body)
	if err := checkStatusCodeOK(resp); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	c.logger.Debug().Str("query_type", string(queryType)).Str("response", string(data)).Msg("query response")
	return string(data), nil
}
