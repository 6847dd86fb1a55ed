package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/clienthub/customers-service/internal/graph"
	"github.com/clienthub/customers-service/internal/middleware"
	"github.com/clienthub/customers-service/internal/utils"
)

// testSchema is a minimal schema with one field per transport behavior the
// controller has to handle.
func testSchema(t *testing.T) graphql.Schema {
	t.Helper()
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ping": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "pong", nil
				},
			},
			"echo": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"msg": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					msg, _ := p.Args["msg"].(string)
					return msg, nil
				},
			},
			"conflicted": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return nil, &graph.RequestError{
						Code:    utils.ErrCodeVersionConflict,
						Message: "The record was changed by another request; reload it and retry",
					}
				},
			},
			"broken": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return nil, errors.New("pq: connection refused")
				},
			},
			"clientAddr": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ip, _ := p.Context.Value(middleware.ContextKeyClientIP).(string)
					return ip, nil
				},
			},
		},
	})
	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	require.NoError(t, err)
	return schema
}

type gqlHTTPResponse struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

func post(t *testing.T, c *GraphQLController, body string, header http.Header) (*httptest.ResponseRecorder, gqlHTTPResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	c.ExecuteHandler(rec, req)

	var decoded gqlHTTPResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&decoded))
	}
	return rec, decoded
}

func TestExecuteRejectsMalformedJSON(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": `))
	c.ExecuteHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, utils.ErrCodeInvalidPayload, body.Code)
}

func TestExecuteRejectsEmptyQuery(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, _ := post(t, c, `{"query": "   "}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecuteReturnsData(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, res := post(t, c, `{"query": "{ ping }"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, res.Errors)
	require.Equal(t, "pong", res.Data["ping"])
}

func TestExecutePassesVariables(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, res := post(t, c,
		`{"query": "query($m: String) { echo(msg: $m) }", "variables": {"m": "hello"}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hello", res.Data["echo"])
}

// Domain failures stay HTTP 200; the code rides in the error extensions.
func TestExecuteKeepsResolverErrorCode(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, res := post(t, c, `{"query": "{ conflicted }"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, res.Errors, 1)
	require.Equal(t, utils.ErrCodeVersionConflict, res.Errors[0].Extensions["code"])
	require.Contains(t, res.Errors[0].Message, "changed by another request")
}

func TestExecuteMasksUnexpectedResolverErrors(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, res := post(t, c, `{"query": "{ broken }"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, res.Errors, 1)
	require.Equal(t, utils.ErrCodeInternal, res.Errors[0].Extensions["code"])
	require.Equal(t, "Internal server error", res.Errors[0].Message)
	require.NotContains(t, res.Errors[0].Message, "connection refused")
}

func TestExecuteSyntaxErrorGetsValidationCode(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	rec, res := post(t, c, `{"query": "{ ping"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, res.Errors)
	require.Equal(t, utils.ErrCodeValidation, res.Errors[0].Extensions["code"])
}

func TestExecuteUnknownFieldGetsValidationCode(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	_, res := post(t, c, `{"query": "{ nonsense }"}`, nil)
	require.NotEmpty(t, res.Errors)
	require.Equal(t, utils.ErrCodeValidation, res.Errors[0].Extensions["code"])
}

// The controller stores the caller address in the context for the session
// mutations.
func TestExecuteForwardsClientIP(t *testing.T) {
	c := NewGraphQLController(testSchema(t))

	header := http.Header{}
	header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	_, res := post(t, c, `{"query": "{ clientAddr }"}`, header)
	require.Equal(t, "203.0.113.9", res.Data["clientAddr"])
}
