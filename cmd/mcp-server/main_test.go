package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/polymature"
	"github.com/njchilds90/polymature/catalog"
)

func TestToolEndpoint(t *testing.T) {
	var logs bytes.Buffer
	mux := newMux(catalog.Default(), polymature.DefaultMaxDegree, zerolog.New(&logs))

	body := `{"tool":"mature","params":{"tree":{"kind":"call","func":"expand","args":[
		{"kind":"group","power":2,"children":[{"kind":"leaf","re":1,"exp":1},{"kind":"leaf","re":3,"op":"-"}]}
	]}}}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp polymature.ToolResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "x^2 - 6x + 9", resp.String)

	assert.Contains(t, logs.String(), `"request":"`)
	assert.Contains(t, logs.String(), `"tool":"mature"`)
}

func TestToolEndpoint_BadRequests(t *testing.T) {
	mux := newMux(catalog.Default(), polymature.DefaultMaxDegree, zerolog.Nop())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tool", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	for _, body := range []string{`{"tool":`, `{"tool":"catalog","extra":1}`} {
		rec = httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestToolEndpoint_OversizedResults(t *testing.T) {
	mux := newMux(catalog.Default(), 64, zerolog.Nop())

	cases := map[string]string{
		"overflowing number": `{"kind":"leaf","re":10,"power":400}`,
		"degree too high":    `{"kind":"leaf","re":1,"exp":1,"power":1000}`,
		"huge leaf":          `{"kind":"leaf","re":1,"exp":1000000000000}`,
		"min int power":      `{"kind":"leaf","re":2,"power":-9223372036854775808}`,
	}
	for name, tree := range cases {
		t.Run(name, func(t *testing.T) {
			body := `{"tool":"mature","params":{"tree":` + tree + `}}`
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body)))

			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Body.String())
			var resp polymature.ToolResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			if name == "min int power" {
				assert.Empty(t, resp.Error)
				assert.Equal(t, "0", resp.String)
				return
			}
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestSchemaAndHealth(t *testing.T) {
	mux := newMux(catalog.Default(), polymature.DefaultMaxDegree, zerolog.Nop())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	assert.Equal(t, polymature.MCPToolSpec(), rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
