package telemetry

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"rodeioapp/internal/core/domain"
)

func TestAppMetrics_RecordRegistration(t *testing.T) {
	RegisterTestingT(t)

	metrics := NewAppMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	metrics.RecordRegistration(ctx, domain.OutcomeSuccess)
	metrics.RecordRegistration(ctx, domain.OutcomeSuccess)
	metrics.RecordRegistration(ctx, domain.OutcomeInvalid)

	Expect(testutil.ToFloat64(metrics.registrations.WithLabelValues("success"))).To(Equal(2.0))
	Expect(testutil.ToFloat64(metrics.registrations.WithLabelValues("invalid"))).To(Equal(1.0))
	Expect(testutil.ToFloat64(metrics.registrations.WithLabelValues("failed"))).To(Equal(0.0))
}

func TestAppMetrics_RecordDatabaseOperation(t *testing.T) {
	RegisterTestingT(t)

	metrics := NewAppMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	metrics.RecordDatabaseOperation(ctx, "create", "registrations", nil)
	metrics.RecordDatabaseOperation(ctx, "create", "registrations", errors.New("boom"))

	Expect(testutil.ToFloat64(metrics.databaseOperations.WithLabelValues("create", "registrations", "ok"))).To(Equal(1.0))
	Expect(testutil.ToFloat64(metrics.databaseOperations.WithLabelValues("create", "registrations", "error"))).To(Equal(1.0))
}

func TestAppMetrics_ActiveConnections(t *testing.T) {
	RegisterTestingT(t)

	metrics := NewAppMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	metrics.IncrementActiveConnections(ctx)
	metrics.IncrementActiveConnections(ctx)
	metrics.DecrementActiveConnections(ctx)

	Expect(testutil.ToFloat64(metrics.activeConnections)).To(Equal(1.0))
}

func TestOTELProbe_RecordRepositoryOperationCountsDatabaseOperations(t *testing.T) {
	RegisterTestingT(t)

	metrics := NewAppMetrics(prometheus.NewRegistry())
	probe := NewOTELProbe(nil, metrics)
	ctx := context.Background()

	ctx, span := probe.StartRepositorySpan(ctx, "create", "registrations", map[string]interface{}{"db.system": "sqlite"})
	probe.RecordRepositoryOperation(ctx, "create", "registrations", 0, nil)
	span.End()

	Expect(testutil.ToFloat64(metrics.databaseOperations.WithLabelValues("create", "registrations", "ok"))).To(Equal(1.0))
}

func TestOTELProbe_RecordErrorLogsOperation(t *testing.T) {
	RegisterTestingT(t)

	core, logs := observer.New(zapcore.ErrorLevel)
	probe := NewOTELProbe(zap.New(core), nil)

	probe.RecordError(context.Background(), "registration.Register", errors.New("connection refused"), nil)

	entries := logs.FilterMessage("Operation error recorded").All()
	Expect(entries).To(HaveLen(1))
	Expect(entries[0].ContextMap()).To(HaveKeyWithValue("operation", "registration.Register"))
	Expect(entries[0].ContextMap()).To(HaveKeyWithValue("error", "connection refused"))
}
