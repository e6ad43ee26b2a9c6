package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-club-setup/internal/apperr"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func testSchema(t *testing.T) graphql.Schema {
	t.Helper()
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"hello": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{"name": &graphql.ArgumentConfig{Type: graphql.String}},
					Resolve: func(p graphql.ResolveParams) (any, error) {
						name, _ := p.Args["name"].(string)
						if name == "" {
							name = "world"
						}
						return "hello " + name, nil
					},
				},
				"missing": &graphql.Field{
					Type: graphql.String,
					Resolve: func(graphql.ResolveParams) (any, error) {
						return nil, apperr.NotFound("Club with ID x not found")
					},
				},
			},
		}),
	})
	require.NoError(t, err)
	return schema
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestGraphQLPost(t *testing.T) {
	srv := New(testSchema(t))

	body := `{"query":"query Greet($name: String) { hello(name: $name) }","operationName":"Greet","variables":{"name":"club"}}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, "req-1")

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get(HeaderRequestID))

	out := decode(t, resp)
	assert.Equal(t, map[string]any{"hello": "hello club"}, out["data"])
}

func TestGraphQLGet(t *testing.T) {
	srv := New(testSchema(t))

	target := "/graphql?query=" + url.QueryEscape("{ hello }")
	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	out := decode(t, resp)
	assert.Equal(t, map[string]any{"hello": "hello world"}, out["data"])
}

func TestGraphQLRejectsBadRequests(t *testing.T) {
	srv := New(testSchema(t))

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"empty body", httptest.NewRequest(http.MethodPost, "/graphql", nil)},
		{"missing query", httptest.NewRequest(http.MethodGet, "/graphql", nil)},
		{"bad variables", httptest.NewRequest(http.MethodGet, "/graphql?query=%7Bhello%7D&variables=%7Bnope", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Header.Set("Content-Type", "application/json")
			resp, err := srv.App().Test(tt.req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestGraphQLErrorsKeepHTTP200(t *testing.T) {
	srv := New(testSchema(t))

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ missing }"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderRequestID, "req-7")

	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	errs, ok := out["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Club with ID x not found", errs[0].(map[string]any)["message"])
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		status int
		body   map[string]any
	}{
		{"no database", nil, http.StatusOK, map[string]any{"status": "ok", "db": "skipped"}},
		{"database up", []Option{WithDatabase(pinger{})}, http.StatusOK, map[string]any{"status": "ok", "db": "up"}},
		{"database down", []Option{WithDatabase(pinger{err: errors.New("refused")})}, http.StatusServiceUnavailable, map[string]any{"status": "degraded", "db": "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(testSchema(t), tt.opts...)
			resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, decode(t, resp))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(testSchema(t))

	resp, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOperationLabel(t *testing.T) {
	srv := New(testSchema(t))

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"named operation", Request{Query: `query Greet { hello }`, OperationName: "Greet"}, "hello"},
		{"anonymous", Request{Query: `{ missing }`}, "missing"},
		{"client chosen name", Request{Query: `query Whatever123 { hello }`, OperationName: "Whatever123"}, "hello"},
		{"unknown root field", Request{Query: `{ nope }`}, "other"},
		{"introspection", Request{Query: `{ __typename }`}, "other"},
		{"operation name not in document", Request{Query: `query A { hello }`, OperationName: "B"}, "other"},
		{"parse error", Request{Query: `{`}, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, srv.operationLabel(tt.req))
		})
	}
}

func TestMetricsIgnoreClientOperationNames(t *testing.T) {
	srv := New(testSchema(t))

	body := `{"query":"query ZzClientSuppliedName { hello }","operationName":"ZzClientSuppliedName"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = srv.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `operation="hello"`)
	assert.NotContains(t, string(raw), "ZzClientSuppliedName")
}
