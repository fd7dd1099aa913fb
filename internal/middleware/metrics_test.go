package middleware

import (
	"testing"
)

func TestMetrics_Collectors(t *testing.T) {
	m := NewMetrics()
	if got := len(m.Collectors()); got != 9 {
		t.Errorf("expected 9 collectors, got %d", got)
	}

	// Registering twice with the same registry must fail, so a duplicate
	// wiring mistake surfaces at startup.
	_, reg := metricsFixture(t)
	if err := m.Register(reg); err == nil {
		t.Error("second Register() on one registry should fail")
	}
}

func TestMetrics_RateLimitCounters(t *testing.T) {
	m, reg := metricsFixture(t)

	m.IncRateLimitRequests("/translate", "user")
	m.IncRateLimitRequests("/translate", "user")
	m.IncRateLimitRequests("/food/recommendations", "ip")
	m.IncRateLimitBlocked("/users/login", "ip")

	requests := gatherFamily(t, reg, MetricRateLimitRequests)
	if requests == nil {
		t.Fatalf("%s not found", MetricRateLimitRequests)
	}
	if got := len(requests.GetMetric()); got != 2 {
		t.Errorf("expected 2 request label sets, got %d", got)
	}
	for _, metric := range requests.GetMetric() {
		if labelMap(metric)["endpoint"] == "/translate" && metric.GetCounter().GetValue() != 2 {
			t.Errorf("/translate count = %v, want 2", metric.GetCounter().GetValue())
		}
	}

	blocked := gatherFamily(t, reg, MetricRateLimitBlocked)
	if blocked == nil || len(blocked.GetMetric()) != 1 {
		t.Fatalf("expected one blocked label set, got %v", blocked)
	}
}

func TestMetrics_RedisErrorCounter(t *testing.T) {
	m, reg := metricsFixture(t)

	m.IncRateLimitRedisErrors()
	m.IncRateLimitRedisErrors()

	family := gatherFamily(t, reg, MetricRateLimitRedisErrors)
	if family == nil {
		t.Fatalf("%s not found", MetricRateLimitRedisErrors)
	}
	if got := family.GetMetric()[0].GetCounter().GetValue(); got != 2 {
		t.Errorf("redis error count = %v, want 2", got)
	}
}

func TestMetrics_TranslationsServedByOutcome(t *testing.T) {
	m, reg := metricsFixture(t)

	m.IncTranslationsServed(TranslationOutcomeExact)
	m.IncTranslationsServed(TranslationOutcomeExact)
	m.IncTranslationsServed(TranslationOutcomeFuzzy)
	m.IncTranslationsServed(TranslationOutcomeUnknown)

	served := gatherFamily(t, reg, MetricTranslationsServed)
	if served == nil {
		t.Fatalf("%s not found", MetricTranslationsServed)
	}
	if got := len(served.GetMetric()); got != 3 {
		t.Errorf("expected 3 outcome label sets, got %d", got)
	}
	for _, metric := range served.GetMetric() {
		if labelMap(metric)["outcome"] == TranslationOutcomeExact && metric.GetCounter().GetValue() != 2 {
			t.Errorf("exact outcome count = %v, want 2", metric.GetCounter().GetValue())
		}
	}
}

func TestMetrics_RecommendationsServedByEndpoint(t *testing.T) {
	m, reg := metricsFixture(t)

	m.IncRecommendationsServed("recommendations")
	m.IncRecommendationsServed("hubs")

	served := gatherFamily(t, reg, MetricRecommendationsServed)
	if served == nil {
		t.Fatalf("%s not found", MetricRecommendationsServed)
	}
	if got := len(served.GetMetric()); got != 2 {
		t.Errorf("expected 2 endpoint label sets, got %d", got)
	}
}
