// Package finder provides an HTTP client for the Evidence Finder API.
//
// # Overview
//
// This package defines the API client for communicating with the Evidence
// Finder service. It handles HTTP communication, JSON serialization, and
// type-safe representation of evidence cards, source-type options, and
// search payloads.
//
// # Client Usage
//
// Create a client using the api_base address from configuration:
//
//	client, err := finder.NewClient("127.0.0.1:8000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	options, err := client.FetchSourceTypes(ctx)
//	result, err := client.Search(ctx, finder.SearchRequest{Query: "Is coffee healthy?"})
//
// # API Endpoints
//
//   - GET /api/health: Service reachability check
//   - GET /api/source-types: Catalog of selectable source-type filters
//   - POST /api/search: Evidence search for a claim or question
//
// # Request Handling
//
// All requests use context for cancellation, send Accept and User-Agent
// headers, and return wrapped errors describing what failed. Search requests
// carry a JSON body whose source_types field is null (not an empty array)
// when no filters are selected; Go's encoding/json produces exactly that for
// a nil slice, so callers pass nil to mean "no filter".
//
// # Error Handling
//
// Non-2xx responses become *APIError values. The service wraps failures in
// FastAPI-style bodies ({"detail": "..."}), and the detail text is captured
// when present so callers can show the server's own message. Transport and
// decode failures are wrapped with fmt.Errorf context instead.
package finder
