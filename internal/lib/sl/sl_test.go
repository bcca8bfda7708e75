package sl

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.Panics(t, func() {
		_ = Err(nil)
	})
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		env       string
		debug     bool
		jsonStart bool
	}{
		{env: EnvLocal, debug: true, jsonStart: false},
		{env: EnvDev, debug: true, jsonStart: true},
		{env: EnvProd, debug: false, jsonStart: true},
		{env: "unknown", debug: false, jsonStart: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(tt.env, &buf)

			assert.Equal(t, tt.debug, log.Enabled(context.Background(), slog.LevelDebug))
			log.Info("hello")
			assert.Equal(t, tt.jsonStart, strings.HasPrefix(buf.String(), "{"))
		})
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped", Err(errors.New("boom")))
	})
}
