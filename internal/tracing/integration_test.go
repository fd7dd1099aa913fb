package tracing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Mukesh-219/indian-local-guide-api/internal/middleware"
	"github.com/Mukesh-219/indian-local-guide-api/internal/tracing"
)

// A request through the tracing middleware whose handler opens domain and DB
// spans must produce one trace: the server span plus the nested spans, all
// sharing a trace id.
func TestRequestProducesSingleTrace(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	handler := middleware.Tracing("guide-test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, endTranslate := tracing.StartSpan(r.Context(), "translate")
		_, endQuery := tracing.StartDBSpan(ctx, "terms", tracing.DBOperationQuery)
		endQuery(nil)
		endTranslate(nil)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/translate", nil))

	spans := recorder.Ended()
	if len(spans) != 3 {
		for _, s := range spans {
			t.Logf("span: %s", s.Name())
		}
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}

	byName := make(map[string]bool, len(spans))
	traceID := spans[0].SpanContext().TraceID()
	for _, s := range spans {
		byName[s.Name()] = true
		if s.SpanContext().TraceID() != traceID {
			t.Errorf("span %q broke out of the trace", s.Name())
		}
	}
	for _, want := range []string{"POST /translate", "translate", "query terms"} {
		if !byName[want] {
			t.Errorf("missing span %q", want)
		}
	}
}

// With tracing disabled, the helpers run against the global noop tracer and
// must not panic or error.
func TestHelpersSafeWhenDisabled(t *testing.T) {
	provider, err := tracing.NewProvider(tracing.Config{ServiceName: "guide-test", Enabled: false})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if provider.IsEnabled() {
		t.Fatal("expected disabled provider")
	}

	ctx, end := tracing.StartSpan(context.Background(), "translate")
	tracing.AddEvent(ctx, "fuzzy_fallback")
	end(nil)
}
