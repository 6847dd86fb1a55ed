package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/clienthub/customers-service/internal/graph"
	"github.com/clienthub/customers-service/internal/middleware"
	"github.com/clienthub/customers-service/internal/utils"
)

// GraphQLController executes GraphQL documents posted to the single
// /graphql endpoint.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(schema graphql.Schema) *GraphQLController {
	return &GraphQLController{schema: schema}
}

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ExecuteHandler => POST /graphql
//
// Execution failures are reported inside the 200 response per GraphQL
// convention; only a malformed HTTP request is rejected outright.
func (c *GraphQLController) ExecuteHandler(w http.ResponseWriter, r *http.Request) {
	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Query is required", nil,
		)
		return
	}

	// The session mutations need the caller address for the session rows.
	ctx := context.WithValue(r.Context(), middleware.ContextKeyClientIP, utils.ClientIP(r))

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	normalizeErrors(result)
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// normalizeErrors guarantees every reported error carries a machine-readable
// code in its extensions. Resolver failures are *graph.RequestError
// underneath however the library wrapped them; anything else that escaped a
// resolver is masked behind a generic internal error, and document-level
// parse or validation errors get the validation code.
func normalizeErrors(result *graphql.Result) {
	for i := range result.Errors {
		fe := &result.Errors[i]
		if len(fe.Extensions) > 0 {
			continue
		}
		if reqErr := underlyingRequestError(fe.OriginalError()); reqErr != nil {
			fe.Message = reqErr.Message
			fe.Extensions = reqErr.Extensions()
			continue
		}
		if len(fe.Path) > 0 {
			utils.Logger.WithField("graphql_error", fe.Message).Error("Unmapped resolver error")
			fe.Message = "Internal server error"
			fe.Extensions = map[string]interface{}{"code": utils.ErrCodeInternal}
			continue
		}
		fe.Extensions = map[string]interface{}{"code": utils.ErrCodeValidation}
	}
}

// underlyingRequestError unwraps the library's error layers down to the
// resolver's RequestError, when there is one.
func underlyingRequestError(err error) *graph.RequestError {
	for err != nil {
		if reqErr, ok := err.(*graph.RequestError); ok {
			return reqErr
		}
		switch e := err.(type) {
		case *gqlerrors.Error:
			err = e.OriginalError
		case gqlerrors.FormattedError:
			err = e.OriginalError()
		case *gqlerrors.FormattedError:
			err = e.OriginalError()
		default:
			return nil
		}
	}
	return nil
}
