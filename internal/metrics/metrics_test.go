package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordOperation(t *testing.T) {
	OperationsTotal.Reset()
	OperationDuration.Reset()

	RecordOperation(OpSign, StatusSuccess, time.Now())
	RecordOperation(OpSign, StatusSuccess, time.Now())
	RecordOperation(OpVerify, StatusInvalid, time.Now())

	if got := testutil.ToFloat64(OperationsTotal.WithLabelValues(OpSign, StatusSuccess)); got != 2 {
		t.Errorf("sign/success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(OperationsTotal.WithLabelValues(OpVerify, StatusInvalid)); got != 1 {
		t.Errorf("verify/invalid = %v, want 1", got)
	}
	if count := testutil.CollectAndCount(OperationDuration); count != 2 {
		t.Errorf("Expected 2 histogram series, got %d", count)
	}
}

func TestRecordDecryptFallbacks(t *testing.T) {
	before := testutil.ToFloat64(DecryptFallbacksTotal)

	RecordDecryptFallbacks(0)
	RecordDecryptFallbacks(-1)
	RecordDecryptFallbacks(3)

	if got := testutil.ToFloat64(DecryptFallbacksTotal) - before; got != 3 {
		t.Errorf("fallbacks increased by %v, want 3", got)
	}
}

func TestHandler(t *testing.T) {
	RecordOperation(OpEncrypt, StatusSuccess, time.Now())

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "crypto_api_operations_total") {
		t.Error("metrics output does not contain crypto_api_operations_total")
	}
}
