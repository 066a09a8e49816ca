package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-torch-service/internal/adapters/cache"
	"bridge-torch-service/internal/adapters/repositories"
	"bridge-torch-service/internal/api/dto"
	"bridge-torch-service/internal/platform/db"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, repositories.InitSchema(conn))
	require.NoError(t, repositories.SeedPresets(conn, repositories.SQLite, []repositories.PresetSeed{
		{Name: "classic", Description: "four people", Times: []int{1, 2, 5, 10}, MaxGroup: 2},
		{Name: "single-file", Times: []int{1, 2}, MaxGroup: 1},
	}))

	srv := httptest.NewServer(NewRouter(RouterConfig{
		Repo:         repositories.NewSQLPuzzleRepository(conn, repositories.SQLite),
		Cache:        cache.NewSQLSolutionCache(conn, repositories.SQLite),
		DB:           conn,
		MaxPeople:    8,
		BatchWorkers: 2,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/solve", `{"times":[1,2,5,10],"max_group":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Found)
	require.NotNil(t, body.TotalTime)
	assert.Equal(t, 17, *body.TotalTime)
	assert.False(t, body.Cached)
	require.Len(t, body.Steps, 5)
	assert.Equal(t, "forward", body.Steps[0].Direction)
	assert.Equal(t, "backward", body.Steps[1].Direction)
	require.Len(t, body.Timeline, 5)
	assert.Equal(t, 17, body.Timeline[4].End)

	resp = postJSON(t, srv.URL+"/solve", `{"times":[1,2,5,10],"max_group":2}`)
	body = dto.SolveResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Cached)
}

func TestSolveEndpointText(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/solve?format=text", `{"times":[3],"max_group":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Minimal total time: 3\nStep 1: P1(3) -> time 3\n", string(b))
}

func TestSolveEndpointTextNoSolution(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/solve", strings.NewReader(`{"times":[1,2],"max_group":1}`))
	require.NoError(t, err)
	req.Header.Set("Accept", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "No solution.\n", string(b))
}

func TestSolveEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"times":`},
		{"unknown field", `{"times":[1],"max_group":1,"extra":true}`},
		{"two objects", `{"times":[1],"max_group":1}{}`},
		{"no people", `{"times":[],"max_group":1}`},
		{"zero time", `{"times":[0,1],"max_group":1}`},
		{"group too big", `{"times":[1,2],"max_group":3}`},
		{"over limit", `{"times":[1,2,3,4,5,6,7,8,9],"max_group":2}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/solve", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	resp, err := http.Get(srv.URL + "/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSolveEndpointNoSolution(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/solve", `{"times":[1,2],"max_group":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Found)
	assert.Nil(t, body.TotalTime)
	assert.Empty(t, body.Steps)
}

func TestBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/solve/batch", `{"puzzles":[
		{"times":[1,2,5,10],"max_group":2},
		{"times":[1,2,5,8,14],"max_group":2},
		{"times":[1,2],"max_group":1}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.BatchSolveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Results, 3)
	assert.Equal(t, 17, *body.Results[0].TotalTime)
	assert.Equal(t, 27, *body.Results[1].TotalTime)
	assert.False(t, body.Results[2].Found)

	resp = postJSON(t, srv.URL+"/solve/batch", `{"puzzles":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPuzzleEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/puzzles")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dto.ListPresetsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Presets, 2)
	assert.Equal(t, "classic", list.Presets[0].Name)

	resp2, err := http.Get(srv.URL + "/puzzles/classic/solution")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var sol dto.SolveResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&sol))
	assert.Equal(t, 17, *sol.TotalTime)

	resp3, err := http.Get(srv.URL + "/puzzles/nope/solution")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}
