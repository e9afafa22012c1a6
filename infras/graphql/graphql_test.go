package graphql_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"floorplan/config"
	"floorplan/infras/graphql"
	"floorplan/infras/otel/mocks"
	"floorplan/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

func newClient(t *testing.T, handler http.HandlerFunc, timeoutSeconds int) graphql.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.GraphQL.Endpoint = server.URL + "/graphql"
	cfg.External.GraphQL.TimeoutSeconds = timeoutSeconds

	return graphql.New(cfg, mocks.NewOtel())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Do(t *testing.T) {
	var got captured

	var auth string

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get(constant.RequestHeaderAuthorization)
		_ = json.NewDecoder(r.Body).Decode(&got)

		writeJSON(w, http.StatusOK, `{"data":{"deleteFloor":{"id":"f-9"}}}`)
	}, 5)

	ctx := context.WithValue(context.Background(), constant.ContextKeyAccessToken, "token-1")

	var out struct {
		DeleteFloor struct {
			ID string `json:"id"`
		} `json:"deleteFloor"`
	}

	err := client.Do(ctx, "DeleteFloor", "mutation DeleteFloor($id: ID!) { deleteFloor(deleteFloorInput: {id: $id}) { id } }", map[string]any{"id": "f-9"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "f-9", out.DeleteFloor.ID)
	assert.Equal(t, "Bearer token-1", auth)
	assert.Equal(t, "DeleteFloor", got.OperationName)
	assert.Equal(t, map[string]any{"id": "f-9"}, got.Variables)
}

func TestClient_DoErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(t *testing.T, err error)
		timeout int
		delay   time.Duration
	}{
		{
			name:   "graphql errors array",
			status: http.StatusOK,
			body:   `{"data":null,"errors":[{"message":"table 7 not found"},{"message":"batch rolled back"}]}`,
			check: func(t *testing.T, err error) {
				var gqlErrs graphql.Errors
				require.True(t, errors.As(err, &gqlErrs))
				assert.Len(t, gqlErrs, 2)
				assert.Equal(t, "graphql: table 7 not found; batch rolled back", err.Error())
			},
		},
		{
			name:   "server error without graphql body",
			status: http.StatusInternalServerError,
			body:   `{"message":"boom"}`,
			check: func(t *testing.T, err error) {
				var statusErr *graphql.StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
			},
		},
		{
			name:   "missing data",
			status: http.StatusOK,
			body:   `{"data":null}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, graphql.ErrEmptyData)
			},
		},
		{
			name:    "timeout",
			status:  http.StatusOK,
			body:    `{"data":{}}`,
			timeout: 1,
			delay:   1500 * time.Millisecond,
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeout := tt.timeout
			if timeout == 0 {
				timeout = 5
			}

			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(tt.delay)
				writeJSON(w, tt.status, tt.body)
			}, timeout)

			var out map[string]any
			err := client.Do(context.Background(), "ManageFloorTables", "mutation {}", nil, &out)

			tt.check(t, err)
		})
	}
}

func TestClient_DoNeverRetries(t *testing.T) {
	var calls atomic.Int32

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, `{}`)
	}, 5)

	err := client.Do(context.Background(), "ManageFloorTables", "mutation {}", nil, nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
