package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelDecode(t *testing.T) {
	var l Level
	require.NoError(t, l.Decode("debug"))
	assert.Equal(t, Level(zerolog.DebugLevel), l)
	assert.Equal(t, "debug", l.String())

	assert.Error(t, l.Decode("verbose"))
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Level(zerolog.WarnLevel), false, &buf)

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	cl := Component(l, "orders")
	cl.Warn().Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "orders", line["component"])
	assert.Equal(t, "cesta-amigo", line["service"])
}

func TestMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := New(Level(zerolog.InfoLevel), false, &buf)

	r := gin.New()
	r.Use(Middleware(l))
	r.GET("/clients/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/abc", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/clients/:id", line["route"])
	assert.EqualValues(t, 404, line["status"])
}
