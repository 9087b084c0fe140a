package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	"rodeioapp/internal/core/domain"
)

func TestNewContainer_WithoutExporters(t *testing.T) {
	RegisterTestingT(t)

	c, err := NewContainer(context.Background(), Config{
		ServiceName:    "rodeioapp",
		ServiceVersion: "test",
		Environment:    "test",
	}, nil)
	require.NoError(t, err)
	defer c.Shutdown(context.Background())

	Expect(c.MetricsServer).To(BeNil())
	Expect(c.NewTelemetryProbe()).NotTo(BeNil())

	c.AppMetrics.RecordRegistration(context.Background(), domain.OutcomeSuccess)

	w := httptest.NewRecorder()
	c.MetricsHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(ContainSubstring(`registrations_total{outcome="success"} 1`))
}
