package graphql

//go:generate go run go.uber.org/mock/mockgen -source=./graphql.go -destination=./mocks/graphql_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"floorplan/config"
	"floorplan/infras/otel"
	"floorplan/shared/constant"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrOperation = "graphql.operation"
	otelAttrStatus    = "http.status_code"
)

var ErrEmptyData = errors.New("graphql: response carried no data")

// Error is one entry of a GraphQL "errors" array.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// Errors is returned when the server answered but rejected the operation.
type Errors []Error

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, item := range e {
		messages = append(messages, item.Message)
	}

	return "graphql: " + strings.Join(messages, "; ")
}

// StatusError is returned for non-2xx responses without a GraphQL body.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql: unexpected status %d: %s", e.Code, e.Body)
}

type request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors,omitempty"`
}

type Client interface {
	// Do posts one operation and decodes its data into out. The bearer
	// token found in ctx is forwarded. Requests are never retried.
	Do(ctx context.Context, operation, query string, variables map[string]any, out any) (err error)
}

type clientImpl struct {
	http     *resty.Client
	endpoint string
	otel     otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	timeout := time.Duration(cfg.External.GraphQL.TimeoutSeconds) * time.Second

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader(constant.RequestHeaderContentType, constant.ContentTypeJSON).
		SetHeader(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	return &clientImpl{
		http:     client,
		endpoint: cfg.External.GraphQL.Endpoint,
		otel:     otl,
	}
}

func (c *clientImpl) Do(ctx context.Context, operation, query string, variables map[string]any, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelGraphQLScopeName, constant.OtelGraphQLScopeName+"."+operation)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrOperation, operation)

	var body response

	req := c.http.R().
		SetContext(ctx).
		SetBody(request{OperationName: operation, Query: query, Variables: variables}).
		SetResult(&body).
		SetError(&body)

	if token, ok := ctx.Value(constant.ContextKeyAccessToken).(string); ok && token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.endpoint)
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("graphql request failed")

		return fmt.Errorf("graphql: %s request failed: %w", operation, err)
	}

	scope.SetAttribute(otelAttrStatus, resp.StatusCode())

	if len(body.Errors) > 0 {
		log.Error().Err(body.Errors).Str("operation", operation).Msg("graphql operation rejected")

		return body.Errors
	}

	if resp.IsError() {
		err = &StatusError{Code: resp.StatusCode(), Body: resp.String()}
		log.Error().Err(err).Str("operation", operation).Msg("graphql request failed")

		return err
	}

	if len(body.Data) == 0 || string(body.Data) == "null" {
		return ErrEmptyData
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(body.Data, out); err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to decode graphql data")

		return fmt.Errorf("graphql: failed to decode %s data: %w", operation, err)
	}

	return nil
}
