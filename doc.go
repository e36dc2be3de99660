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

/*
Package nexusdb provides a lightweight and easy-to-use client for interacting with a NexusDB service.

# Client

Use NewClient to create a client struct. This is the major entrance to construct structs for interacting with NexusDB:

	client := nexusdb.NewClient(&nexusdb.Config{
		Endpoint: "https://api.nexusdb.io/query",
		APIKey:   "<your-api-key>",
	})

Or pick up the endpoint and key from the BASE_URL and NEXUSDB_API_KEY environment variables:

	client := nexusdb.NewClient(nexusdb.ConfigFromEnv())

# Write Data

Create a relation and insert rows into it:

	_, err := client.Create(ctx, "users", []nexusdb.Column{
		{Name: "id"},
		{Name: "name"},
	})

	_, err = client.Insert(ctx, &nexusdb.WriteRequest{
		Relation: "users",
		Fields:   []string{"id", "name"},
		Values:   [][]any{{1, "Ada"}, {2, "Grace"}},
	})

# Query Data

Look up rows and render the result, either as a JSON document or as an
aligned text table with type annotations:

	out, err := client.Lookup(ctx, &nexusdb.LookupRequest{
		Relation:  "users",
		Condition: "id = 1",
		Render:    nexusdb.RenderOptions{Table: true, IncludeTypes: true},
	})

For typed access, parse the tabular body instead:

	rs, err := nexusdb.ParseResultSet(out)
	values := rs.DecodedRows()
*/
package nexusdb
