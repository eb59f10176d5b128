package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-version-gen/internal/adapter"
	"github.com/MKhiriev/go-version-gen/internal/app"
	"github.com/MKhiriev/go-version-gen/internal/service"
	"github.com/MKhiriev/go-version-gen/internal/store"
	"github.com/MKhiriev/go-version-gen/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching sentinel wins.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{models.ErrUnsupportedFormat, errorResponse{http.StatusNotFound, app.MsgUnsupportedFormat}},
	{service.ErrInvalidConfig, errorResponse{http.StatusInternalServerError, app.MsgInvalidConfiguration}},
	{adapter.ErrQueryTimeout, errorResponse{http.StatusGatewayTimeout, app.MsgGenerationTimedOut}},
	{store.ErrEmptyArtifactName, errorResponse{http.StatusInternalServerError, app.MsgGenerationFailed}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError responds with the status and client message mapped from err.
// Internal error messages are not exposed to the client.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
