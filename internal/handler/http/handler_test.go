package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-version-gen/internal/adapter"
	"github.com/MKhiriev/go-version-gen/internal/app"
	"github.com/MKhiriev/go-version-gen/internal/logger"
	"github.com/MKhiriev/go-version-gen/internal/service"
	"github.com/MKhiriev/go-version-gen/models"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown error",
			err:         assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "unsupported format",
			err:         fmt.Errorf("parse: %w", models.ErrUnsupportedFormat),
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUnsupportedFormat,
		},
		{
			name:        "query timeout",
			err:         adapter.ErrQueryTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: app.MsgGenerationTimedOut,
		},
		{
			name:        "invalid config",
			err:         &service.ConfigError{Field: "rule", Reason: "empty"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInvalidConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage+"\n", rec.Body.String())
			assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
		})
	}
}
