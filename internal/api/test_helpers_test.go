package api

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/davidahmann/edsign/internal/auth"
	"github.com/davidahmann/edsign/internal/crypto"
	"github.com/davidahmann/edsign/internal/metrics"
	"github.com/davidahmann/edsign/pkg/types"
)

const testToken = "test-token"

type testGateway struct {
	router   http.Handler
	registry *prometheus.Registry
}

func newTestGateway(t *testing.T, token string) testGateway {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	h := &Handler{
		Auth:    auth.NewTokenAuthenticator(token),
		Service: crypto.NewSigningService(crypto.WithRecorder(m), crypto.WithLogger(logrus.NewEntry(log))),
		Log:     logrus.NewEntry(log),
	}
	return testGateway{
		router:   NewRouter(h, RouterOptions{MetricsPath: "/metrics", Gatherer: reg, Observer: m}),
		registry: reg,
	}
}

func (g testGateway) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer "+testToken)
	res := httptest.NewRecorder()
	g.router.ServeHTTP(res, req)
	return res
}

func abcdeSeed() types.Buffer {
	sum := sha256.Sum256([]byte("ABCDE"))
	return sum[:]
}

func decodeBody[T any](t *testing.T, res *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(res.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", res.Body.String(), err)
	}
	return out
}
