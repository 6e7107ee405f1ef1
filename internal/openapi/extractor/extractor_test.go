package extractor

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-apicatalog/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-apicatalog/pkg/openapi"
)

func newTestExtractor(options ...catalog.ExtractorOption) catalog.Extractor {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolved := append([]catalog.ExtractorOption{catalog.WithLogger(quiet)}, options...)
	return New(catalog.NewExtractorOptions(resolved...))
}

func testDocument(t *testing.T, raw string) pkgopenapi.Document {
	t.Helper()
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("contract.json"), []byte(raw))
}

func TestExtractUsersByID(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Users", "version": "1.0.0" },
  "paths": {
    "/users/{id}": {
      "get": {
        "responses": {
          "200": {
            "description": "a user",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "id": { "type": "integer" },
                    "name": { "type": "string" }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if !result.Complete() {
		t.Fatalf("expected complete result, got %q (err: %v)", result.Outcome, result.Err)
	}

	want := []catalog.Endpoint{
		{
			Method:          "GET",
			Path:            "/users/{id}",
			Parameters:      []catalog.Parameter{},
			ResponseExample: "{\n  \"id\" : 0,\n  \"name\" : \"\"\n}",
		},
	}
	if diff := cmp.Diff(want, result.Endpoints); diff != "" {
		t.Fatalf("unexpected endpoints (-want +got):\n%s", diff)
	}
}

func TestExtractOnlyDefinedMethods(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Articles", "version": "1.0.0" },
  "paths": {
    "/articles": {
      "post": {
        "summary": "Create an article",
        "responses": { "201": { "description": "created" } }
      },
      "head": {
        "responses": { "200": { "description": "headers only" } }
      },
      "options": {
        "responses": { "200": { "description": "cors" } }
      }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if len(result.Endpoints) != 1 {
		t.Fatalf("expected exactly one endpoint, got %d", len(result.Endpoints))
	}
	endpoint := result.Endpoints[0]
	if endpoint.Method != "POST" {
		t.Fatalf("expected POST record, got %q", endpoint.Method)
	}
	if endpoint.Summary != "Create an article" {
		t.Fatalf("unexpected summary %q", endpoint.Summary)
	}
}

func TestExtractMethodOrderPerPath(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Articles", "version": "1.0.0" },
  "paths": {
    "/articles": {
      "delete": { "responses": { "204": { "description": "gone" } } },
      "get": { "responses": { "200": { "description": "ok" } } },
      "post": { "responses": { "201": { "description": "created" } } }
    },
    "/authors": {
      "get": { "responses": { "200": { "description": "ok" } } }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))

	var got []string
	for _, endpoint := range result.Endpoints {
		got = append(got, endpoint.Method+" "+endpoint.Path)
	}
	// Paths follow document order; methods follow the fixed check order.
	want := []string{"GET /articles", "POST /articles", "DELETE /articles", "GET /authors"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected walk order (-want +got):\n%s", diff)
	}
}

func TestExtractParameters(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Search", "version": "1.0.0" },
  "paths": {
    "/search": {
      "get": {
        "parameters": [
          {
            "name": "limit",
            "in": "query",
            "schema": { "type": "integer", "example": 25 }
          },
          {
            "name": "X-Trace",
            "in": "header",
            "example": "abc123",
            "schema": { "type": "string", "example": "shadowed" }
          },
          {
            "name": "term",
            "in": "path",
            "required": true,
            "description": "search term"
          }
        ],
        "responses": { "200": { "description": "ok" } }
      }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if len(result.Endpoints) != 1 {
		t.Fatalf("expected one endpoint, got %d", len(result.Endpoints))
	}

	want := []catalog.Parameter{
		{Name: "limit", In: "query", Required: false, Type: "integer", Example: "25"},
		{Name: "X-Trace", In: "header", Required: false, Type: "string", Example: "abc123"},
		{Name: "term", In: "path", Required: true, Type: "string", Description: "search term"},
	}
	if diff := cmp.Diff(want, result.Endpoints[0].Parameters); diff != "" {
		t.Fatalf("unexpected parameters (-want +got):\n%s", diff)
	}
}

func TestExtractRequestBodyJSONOnly(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Uploads", "version": "1.0.0" },
  "paths": {
    "/uploads": {
      "post": {
        "requestBody": {
          "content": {
            "text/plain": { "schema": { "type": "string" } }
          }
        },
        "responses": { "201": { "description": "created" } }
      },
      "put": {
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": { "label": { "type": "string" } }
              }
            }
          }
        },
        "responses": { "200": { "description": "ok" } }
      }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if len(result.Endpoints) != 2 {
		t.Fatalf("expected two endpoints, got %d", len(result.Endpoints))
	}

	post, put := result.Endpoints[0], result.Endpoints[1]
	if post.RequestBodyExample != "" {
		t.Fatalf("text/plain body must be ignored, got %q", post.RequestBodyExample)
	}
	if want := "{\n  \"label\" : \"\"\n}"; put.RequestBodyExample != want {
		t.Fatalf("unexpected body example %q, want %q", put.RequestBodyExample, want)
	}
}

func TestExtractResponseCodePriority(t *testing.T) {
	t.Parallel()

	// 200 without JSON content is skipped in favour of the 201 that has it.
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Jobs", "version": "1.0.0" },
  "paths": {
    "/jobs": {
      "post": {
        "responses": {
          "200": {
            "description": "legacy",
            "content": { "text/plain": { "schema": { "type": "string" } } }
          },
          "201": {
            "description": "created",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": { "accepted": { "type": "boolean" } }
                }
              }
            }
          }
        }
      }
    }
  }
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if len(result.Endpoints) != 1 {
		t.Fatalf("expected one endpoint, got %d", len(result.Endpoints))
	}
	if want := "{\n  \"accepted\" : false\n}"; result.Endpoints[0].ResponseExample != want {
		t.Fatalf("unexpected response example %q, want %q", result.Endpoints[0].ResponseExample, want)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	t.Parallel()

	result := newTestExtractor().Extract(context.Background(), pkgopenapi.Document{})
	if result.Outcome != catalog.OutcomeEmpty {
		t.Fatalf("expected empty outcome, got %q", result.Outcome)
	}
	if len(result.Endpoints) != 0 {
		t.Fatalf("expected no endpoints, got %d", len(result.Endpoints))
	}
}

func TestExtractContractWithoutPaths(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Bare", "version": "1.0.0" },
  "paths": {}
}`

	result := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if result.Outcome != catalog.OutcomeEmpty {
		t.Fatalf("expected empty outcome, got %q", result.Outcome)
	}
	if len(result.Endpoints) != 0 {
		t.Fatalf("expected no endpoints, got %d", len(result.Endpoints))
	}
}

func TestExtractMalformedContractDegrades(t *testing.T) {
	t.Parallel()

	result := newTestExtractor().Extract(context.Background(), testDocument(t, "{{{ not a contract"))
	if result.Outcome != catalog.OutcomeDegraded {
		t.Fatalf("expected degraded outcome, got %q", result.Outcome)
	}
	if result.Err == nil {
		t.Fatal("expected failure detail on degraded result")
	}
	if len(result.Endpoints) != 0 {
		t.Fatalf("expected no endpoints, got %d", len(result.Endpoints))
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Pets", "version": "1.0.0" },
  "paths": {
    "/pets": {
      "get": {
        "responses": {
          "200": {
            "description": "pets",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "name": { "type": "string" },
                    "age": { "type": "integer" },
                    "tags": { "type": "array" }
                  }
                }
              }
            }
          }
        }
      },
      "post": {
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": { "name": { "type": "string" } }
              }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      }
    }
  }
}`

	extractor := newTestExtractor()
	first := extractor.Extract(context.Background(), testDocument(t, document))
	second := extractor.Extract(context.Background(), testDocument(t, document))

	if diff := cmp.Diff(first.Endpoints, second.Endpoints); diff != "" {
		t.Fatalf("repeat extraction diverged (-first +second):\n%s", diff)
	}
}

func TestExtractSanitizedText(t *testing.T) {
	t.Parallel()

	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Untrusted", "version": "1.0.0" },
  "paths": {
    "/widgets": {
      "get": {
        "summary": "<i>List</i> widgets",
        "description": "<b>All</b> widgets",
        "responses": { "200": { "description": "ok" } }
      }
    }
  }
}`

	result := newTestExtractor(catalog.WithSanitizedText()).Extract(context.Background(), testDocument(t, document))
	if len(result.Endpoints) != 1 {
		t.Fatalf("expected one endpoint, got %d", len(result.Endpoints))
	}
	endpoint := result.Endpoints[0]
	if endpoint.Summary != "List widgets" {
		t.Fatalf("unexpected sanitized summary %q", endpoint.Summary)
	}
	if endpoint.Description != "All widgets" {
		t.Fatalf("unexpected sanitized description %q", endpoint.Description)
	}

	// Default extraction keeps operation text verbatim.
	verbatim := newTestExtractor().Extract(context.Background(), testDocument(t, document))
	if verbatim.Endpoints[0].Description != "<b>All</b> widgets" {
		t.Fatalf("expected verbatim description, got %q", verbatim.Endpoints[0].Description)
	}
}
