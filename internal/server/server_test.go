package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/guillocut/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const referenceBody = `{
	"board": {"width": 5, "height": 8},
	"pieces": [
		{"label": "A", "width": 2, "height": 3, "value": 10},
		{"label": "B", "width": 1, "height": 2, "value": 5},
		{"label": "C", "width": 3, "height": 4, "value": 15}
	]
}`

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	w := do(t, New(model.DefaultSettings()), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestValue(t *testing.T) {
	w := do(t, New(model.DefaultSettings()), http.MethodPost, "/api/value", referenceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"value":100}`, w.Body.String())
}

func TestSolve(t *testing.T) {
	w := do(t, New(model.DefaultSettings()), http.MethodPost, "/api/solve", referenceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var plan model.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, 100.0, plan.Value)
	assert.Equal(t, model.Board{Width: 5, Height: 8}, plan.Board)
	assert.InDelta(t, plan.Value, plan.PlacedValue(), 1e-9)
	for _, p := range plan.Placements {
		assert.NotEmpty(t, p.Piece.ID, "posted pieces get an ID")
		assert.True(t, p.Contains(plan.Board))
	}
}

func TestSolve_SettingsOverride(t *testing.T) {
	body := `{
		"board": {"width": 1, "height": 4},
		"pieces": [{"label": "Long", "width": 4, "height": 1, "value": 10}],
		"settings": {"allow_rotation": true}
	}`
	w := do(t, New(model.DefaultSettings()), http.MethodPost, "/api/value", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"value":10}`, w.Body.String())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"board":`, http.StatusBadRequest},
		{"negative board", `{"board":{"width":-1,"height":2},"pieces":[]}`, http.StatusBadRequest},
		{"zero piece side", `{"board":{"width":2,"height":2},"pieces":[{"width":0,"height":1,"value":1}]}`, http.StatusBadRequest},
		{"negative value", `{"board":{"width":2,"height":2},"pieces":[{"width":1,"height":1,"value":-1}]}`, http.StatusBadRequest},
	}
	s := New(model.DefaultSettings())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/solve", tt.body)
			assert.Equal(t, tt.code, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestTableTooLarge(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MaxCells = 10
	w := do(t, New(settings), http.MethodPost, "/api/value", referenceBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSettingsOverrideCannotLiftCellLimit(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MaxCells = 10
	body := `{"board":{"width":5,"height":8},"pieces":[],"settings":{"max_cells":1000000}}`
	w := do(t, New(settings), http.MethodPost, "/api/value", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSettingsOverrideNonPositiveCellLimit(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MaxCells = 100
	s := New(settings)

	pieces := `"pieces":[{"width":1,"height":1,"value":1}]`
	w := do(t, s, http.MethodPost, "/api/value", `{"board":{"width":50,"height":50},`+pieces+`}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	for _, limit := range []string{"-1", "0", "-9223372036854775808"} {
		body := `{"board":{"width":50,"height":50},` + pieces + `,"settings":{"max_cells":` + limit + `}}`
		w := do(t, s, http.MethodPost, "/api/value", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, "max_cells %s", limit)
	}
}

func TestNonPositiveServerCellLimitUsesDefault(t *testing.T) {
	settings := model.DefaultSettings()
	settings.MaxCells = -1
	s := New(settings)
	assert.Equal(t, DefaultMaxCells, s.settings.MaxCells)

	w := do(t, s, http.MethodPost, "/api/value", `{"board":{"width":5000,"height":5000},"pieces":[]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestOverflowingBoardIsTooLarge(t *testing.T) {
	s := New(model.DefaultSettings())
	pieces := `"pieces":[{"width":1,"height":1,"value":1}]`

	for _, path := range []string{"/api/value", "/api/solve"} {
		w := do(t, s, http.MethodPost, path, `{"board":{"width":4611686018427387903,"height":3},`+pieces+`}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, path)
	}

	w := do(t, s, http.MethodPost, "/api/sweep", `{"from":0,"to":4611686018427387903,"height":3,`+pieces+`}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMissingPiecesIsEmptyCatalog(t *testing.T) {
	s := New(model.DefaultSettings())
	for _, body := range []string{
		`{"board":{"width":2,"height":2}}`,
		`{"board":{"width":2,"height":2},"pieces":[]}`,
	} {
		w := do(t, s, http.MethodPost, "/api/value", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		assert.JSONEq(t, `{"value":0}`, w.Body.String())
	}
}

func TestSweep(t *testing.T) {
	body := `{"from": 0, "to": 5, "height": 8, "pieces": [
		{"width": 2, "height": 3, "value": 10},
		{"width": 1, "height": 2, "value": 5},
		{"width": 3, "height": 4, "value": 15}
	]}`
	w := do(t, New(model.DefaultSettings()), http.MethodPost, "/api/sweep", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Points []struct {
			Width int     `json:"width"`
			Value float64 `json:"value"`
		} `json:"points"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 6)
	assert.Equal(t, 0.0, resp.Points[0].Value)
	assert.Equal(t, 100.0, resp.Points[5].Value)
}

func TestProfiles(t *testing.T) {
	w := do(t, New(model.DefaultSettings()), http.MethodGet, "/api/profiles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grbl")
}
