package app_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcocalc/internal/app"
	"alcocalc/internal/httpapi"
	"alcocalc/internal/services/calc"
)

func TestNewWire_Local(t *testing.T) {
	t.Parallel()

	w, err := app.NewWire(app.Config{})
	require.NoError(t, err)
	assert.False(t, w.Remote)
	assert.IsType(t, &calc.Service{}, w.Calculator)
	assert.NotNil(t, w.Logger)
}

func TestNewWire_Remote(t *testing.T) {
	t.Parallel()

	w, err := app.NewWire(app.Config{ServerURL: "http://127.0.0.1:8080"})
	require.NoError(t, err)
	assert.True(t, w.Remote)
	require.IsType(t, &httpapi.Client{}, w.Calculator)
	assert.Equal(t, "http://127.0.0.1:8080", w.Calculator.(*httpapi.Client).Base)
	assert.NotZero(t, w.HTTP.Timeout)
}

func TestNewWire_RemoteCustomClient(t *testing.T) {
	t.Parallel()

	hc := &http.Client{}
	w, err := app.NewWire(app.Config{ServerURL: "http://example.test", HTTP: hc})
	require.NoError(t, err)
	assert.Same(t, hc, w.HTTP)
}
