package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
)

func TestApplication(t *testing.T) {
	t.Run("assembles from the environment", func(t *testing.T) {
		ctx := context.Background()
		app, cleanup, err := live(ctx, support.Environment{
			"COUNTER_STREAM=test",
			"COUNTER_LOG_LEVEL=error",
			"COUNTER_WINDOW_HEIGHT=480",
		})
		require.Nil(t, err)
		defer cleanup()

		assert.Equal(t, uint32(480), app.Settings.Window.Height)
		assert.Equal(t, uint32(1024), app.Settings.Window.Width)

		entity, err := app.Program.Dispatch(ctx, counter.Increment{})
		require.Nil(t, err)
		assert.Equal(t, "counter.test", entity.Stream.Encode().String())
		assert.Equal(t, int32(1), entity.State.Value)
	})

	t.Run("fails on bad configuration", func(t *testing.T) {
		_, _, err := live(context.Background(), support.Environment{"COUNTER_LOG_LEVEL=loud"})
		assert.NotNil(t, err)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		assert.NotNil(t, run([]string{"paint"}))
	})
}

func TestSettings(t *testing.T) {
	cfg, err := support.Load(support.Environment{
		"COUNTER_WINDOW_WIDTH=300",
		"COUNTER_WINDOW_DECORATIONS=false",
		"COUNTER_DEFAULT_TEXT_SIZE=14",
		"COUNTER_ANTIALIASING=true",
	})
	require.Nil(t, err)

	settings := NewSettings(cfg)

	expected := counter.DefaultSettings()
	expected.Window.Width = 300
	expected.Window.Decorations = false
	expected.DefaultTextSize = 14
	expected.Antialiasing = true

	assert.Equal(t, expected, settings)
}

func TestRequestLogging(t *testing.T) {
	handler := withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
