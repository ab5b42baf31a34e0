package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rafael/pokedex-web/internal/domain"
	"github.com/rafael/pokedex-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(buf)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestFavoriteHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID := testutil.NewUserID()

	tests := []struct {
		name           string
		query          string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name:           "missing userId",
			query:          "",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty favorites",
			query:          "?userId=" + userID,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result []*domain.Favorite
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Empty(t, result)
			},
		},
		{
			name:  "with favorites",
			query: "?userId=" + userID,
			setup: func() {
				testutil.SeedFavorites(t, ts.DB.DB, userID, 3)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result []*domain.Favorite
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Len(t, result, 3)
			},
		},
		{
			name:  "other tenant sees nothing",
			query: "?userId=" + testutil.NewUserID(),
			setup: func() {
				testutil.SeedFavorites(t, ts.DB.DB, userID, 3)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result []*domain.Favorite
				testutil.AssertJSONResponse(t, resp, &result)
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp, err := http.Get(ts.APIURL("/favorites" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestFavoriteHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "valid",
			body: map[string]interface{}{
				"userId": "u1",
				"pokemon": map[string]interface{}{
					"id":    25,
					"name":  "Pikachu",
					"image": "img.png",
					"notes": "",
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing userId",
			body: map[string]interface{}{
				"pokemon": map[string]interface{}{"id": 25, "name": "Pikachu"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing pokemon",
			body:           map[string]interface{}{"userId": "u1"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			resp := doJSON(t, http.MethodPost, ts.APIURL("/favorites"), tt.body)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestFavoriteHandler_CreateThenList(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body := map[string]interface{}{
		"userId": "u1",
		"pokemon": map[string]interface{}{
			"id":    25,
			"name":  "Pikachu",
			"image": "img.png",
			"types": []string{"electric"},
			"notes": "",
		},
	}

	resp := doJSON(t, http.MethodPost, ts.APIURL("/favorites"), body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created domain.Favorite
	testutil.AssertJSONResponse(t, resp, &created)
	assert.Equal(t, 25, created.PokemonID)
	assert.Equal(t, "u1", created.UserID)
	assert.NotEmpty(t, created.ID)

	listResp, err := http.Get(ts.APIURL("/favorites?userId=u1"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var favorites []*domain.Favorite
	testutil.AssertJSONResponse(t, listResp, &favorites)
	require.Len(t, favorites, 1)
	assert.Equal(t, 25, favorites[0].PokemonID)
	assert.Equal(t, "Pikachu", favorites[0].Name)
	assert.Equal(t, "img.png", favorites[0].Image)
}

func TestFavoriteHandler_UpdateNotes(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID := testutil.NewUserID()

	tests := []struct {
		name           string
		setup          func()
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "existing favorite",
			setup: func() {
				testutil.NewFavoriteBuilder().WithUserID(userID).WithPokemonID(25).Build(t, ts.DB.DB)
			},
			body: map[string]interface{}{
				"userId":    userID,
				"pokemonId": 25,
				"notes":     "new note",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no matching favorite",
			body: map[string]interface{}{
				"userId":    userID,
				"pokemonId": 999,
				"notes":     "x",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing userId",
			body:           map[string]interface{}{"pokemonId": 25, "notes": "x"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing pokemonId",
			body:           map[string]interface{}{"userId": userID, "notes": "x"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := doJSON(t, http.MethodPut, ts.APIURL("/favorites"), tt.body)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var ack ackResponse
				testutil.AssertJSONResponse(t, resp, &ack)
				assert.True(t, ack.Success)
			}
		})
	}
}

func TestFavoriteHandler_UpdateNotes_MissDoesNotCreate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body := map[string]interface{}{
		"userId":    "u1",
		"pokemonId": 999,
		"notes":     "x",
	}

	resp := doJSON(t, http.MethodPut, ts.APIURL("/favorites"), body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// List stays unchanged
	listResp, err := http.Get(ts.APIURL("/favorites?userId=u1"))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var favorites []*domain.Favorite
	testutil.AssertJSONResponse(t, listResp, &favorites)
	assert.Empty(t, favorites)
}

func TestFavoriteHandler_UpdateNotes_OnlyNotesChange(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID := testutil.NewUserID()
	created := testutil.NewFavoriteBuilder().
		WithUserID(userID).
		WithPokemonID(25).
		WithName("Pikachu").
		WithImage("img.png").
		WithNotes("old").
		Build(t, ts.DB.DB)

	resp := doJSON(t, http.MethodPut, ts.APIURL("/favorites"), map[string]interface{}{
		"userId":    userID,
		"pokemonId": 25,
		"notes":     "new",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err := http.Get(ts.APIURL("/favorites?userId=" + userID))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var favorites []*domain.Favorite
	testutil.AssertJSONResponse(t, listResp, &favorites)
	require.Len(t, favorites, 1)
	assert.Equal(t, "new", favorites[0].Notes)
	assert.Equal(t, created.Name, favorites[0].Name)
	assert.Equal(t, created.Image, favorites[0].Image)
	assert.Equal(t, created.PokemonID, favorites[0].PokemonID)
}

func TestFavoriteHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID := testutil.NewUserID()

	tests := []struct {
		name           string
		query          string
		setup          func()
		expectedStatus int
	}{
		{
			name:  "existing favorite",
			query: "?userId=" + userID + "&pokemonId=25",
			setup: func() {
				testutil.NewFavoriteBuilder().WithUserID(userID).WithPokemonID(25).Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing userId",
			query:          "?pokemonId=25",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing pokemonId",
			query:          "?userId=" + userID,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric pokemonId",
			query:          "?userId=" + userID + "&pokemonId=pikachu",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := doJSON(t, http.MethodDelete, ts.APIURL("/favorites"+tt.query), nil)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestFavoriteHandler_Delete_Idempotent(t *testing.T) {
	ts := testutil.NewTestServer(t)

	userID := testutil.NewUserID()
	testutil.NewFavoriteBuilder().WithUserID(userID).WithPokemonID(25).Build(t, ts.DB.DB)

	url := ts.APIURL("/favorites?userId=" + userID + "&pokemonId=25")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodDelete, url, nil)
		var ack ackResponse
		testutil.AssertJSONResponse(t, resp, &ack)
		resp.Body.Close()
		assert.True(t, ack.Success, "delete %d should succeed", i+1)
	}

	listResp, err := http.Get(ts.APIURL("/favorites?userId=" + userID))
	require.NoError(t, err)
	defer listResp.Body.Close()

	var favorites []*domain.Favorite
	testutil.AssertJSONResponse(t, listResp, &favorites)
	assert.Empty(t, favorites)
}
