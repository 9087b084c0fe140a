package http_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "rodeioapp/pkg/test"

	"rodeioapp/internal/adapter/database/sqlite"
	"rodeioapp/internal/adapter/database/sqlite/repository"
	"rodeioapp/internal/adapter/database/unavailable"
	apphttp "rodeioapp/internal/adapter/http"
	"rodeioapp/internal/adapter/http/middleware"
	"rodeioapp/internal/adapter/logger"
	"rodeioapp/internal/config"
	"rodeioapp/internal/core/port"
	"rodeioapp/internal/core/telemetry"
	"rodeioapp/pkg/test/factory"
)

type AppSuite struct {
	suite.Suite
	DB       *sqlite.DB
	Config   *config.AppConfig
	Registry *prometheus.Registry
	Logs     *observer.ObservedLogs
	Handler  http.Handler
}

func TestAppSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	staticDir := s.T().TempDir()
	require.NoError(s.T(), os.WriteFile(filepath.Join(staticDir, "rodeo.jpg"), []byte("jpeg-bytes"), 0o644))
	require.NoError(s.T(), os.Mkdir(filepath.Join(staticDir, "sounds"), 0o755))

	s.Config = config.GetDefaultConfig()
	s.Config.StaticDir = staticDir
	s.DB = InitTestDB(s.T())

	store := &sqliteStore{
		RegistrationRepository: repository.NewRegistrationRepository(s.DB, nil),
		DB:                     s.DB,
	}
	container, err := apphttp.NewContainer(store, s.Config, nil, nil, nil)
	require.NoError(s.T(), err)

	core, logs := observer.New(zapcore.InfoLevel)
	s.Logs = logs
	s.Registry = prometheus.NewRegistry()

	metrics := telemetry.NewAppMetrics(s.Registry)
	s.Handler = apphttp.NewApp(container, metrics, logger.New(zap.New(core), "rodeioapp"), s.Config).Handler()
}

func (s *AppSuite) serve(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func (s *AppSuite) TestIndex() {
	w := s.serve(http.MethodGet, "/")

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(ContainSubstring(`const message = "";`))
	Expect(w.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
}

func (s *AppSuite) TestRequestIDIsPropagated() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")

	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, req)

	Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
}

func (s *AppSuite) TestSubmit() {
	form := factory.NewRegistrationForm(factory.NewRegistration())

	req := httptest.NewRequest(http.MethodPost, "/inscrever", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	s.Handler.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(ContainSubstring("sucesso"))
	Expect(CountRegistrations(s.T(), s.DB)).To(Equal(1))
}

func (s *AppSuite) TestStaticFile() {
	w := s.serve(http.MethodGet, "/rodeo.jpg")

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(Equal("jpeg-bytes"))

	head := s.serve(http.MethodHead, "/rodeo.jpg")
	Expect(head.Code).To(Equal(http.StatusOK))
}

func (s *AppSuite) TestRequestMetricsLabelStaticFiles() {
	s.serve(http.MethodGet, "/rodeo.jpg")
	s.serve(http.MethodGet, "/trote.mp3")
	s.serve(http.MethodGet, "/")

	expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/",status="200"} 1
http_requests_total{method="GET",path="static",status="200"} 1
http_requests_total{method="GET",path="static",status="404"} 1
`
	Expect(testutil.GatherAndCompare(s.Registry, strings.NewReader(expected), "http_requests_total")).To(Succeed())
}

func (s *AppSuite) TestRequestIsLogged() {
	req := httptest.NewRequest(http.MethodGet, "/rodeo.jpg?v=2", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	s.Handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := s.Logs.FilterMessage("HTTP Request").All()
	Expect(entries).To(HaveLen(1))

	fields := entries[0].ContextMap()
	Expect(fields).To(HaveKeyWithValue("method", "GET"))
	Expect(fields).To(HaveKeyWithValue("path", "/rodeo.jpg?v=2"))
	Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusOK)))
	Expect(fields).To(HaveKeyWithValue("request_id", "req-42"))
	Expect(fields).To(HaveKey("latency"))
}

func (s *AppSuite) TestStaticMissingFile() {
	Expect(s.serve(http.MethodGet, "/trote.mp3").Code).To(Equal(http.StatusNotFound))
}

func (s *AppSuite) TestStaticDirectoryIsNotListed() {
	Expect(s.serve(http.MethodGet, "/sounds/").Code).To(Equal(http.StatusNotFound))
}

func (s *AppSuite) TestStaticTraversal() {
	Expect(s.serve(http.MethodGet, "/../../etc/passwd").Code).To(Equal(http.StatusNotFound))
}

func (s *AppSuite) TestUnknownPost() {
	Expect(s.serve(http.MethodPost, "/rodeo.jpg").Code).To(Equal(http.StatusNotFound))
}

func TestApp_WithoutDatabase(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	container, err := apphttp.NewContainer(unavailable.New(), cfg, nil, nil, nil)
	require.NoError(t, err)

	container.SchemaService.Ensure(context.Background())

	handler := apphttp.NewApp(container, nil, nil, cfg).Handler()

	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}, "phone": {"51999990000"}}
	req := httptest.NewRequest(http.MethodPost, "/inscrever", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	Expect(w.Code).To(Equal(http.StatusOK))
	Expect(w.Body.String()).To(ContainSubstring(`Erro ao salvar inscri`))
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := config.GetDefaultConfig()
	cfg.Port = strconv.Itoa(port)

	container, err := apphttp.NewContainer(unavailable.New(), cfg, nil, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- apphttp.NewApp(container, nil, nil, cfg).Run(ctx) }()

	Eventually(func() error {
		resp, err := http.Get("http://127.0.0.1:" + cfg.Port + "/")
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	}, 5*time.Second, 50*time.Millisecond).Should(Succeed())

	cancel()

	Eventually(done, 20*time.Second).Should(Receive(BeNil()))
}

type sqliteStore struct {
	port.RegistrationRepository
	*sqlite.DB
}
