package telemetry

import (
	"strings"

	"go.opentelemetry.io/otel/propagation"
)

// envFields are the propagation fields read from the environment, e.g. TRACEPARENT.
var envFields = []string{"traceparent", "tracestate", "baggage"}

// CarrierFromEnv builds a carrier from TRACEPARENT, TRACESTATE and BAGGAGE entries of environ.
func CarrierFromEnv(environ []string) propagation.MapCarrier {
	traceCarrier := propagation.MapCarrier{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		for _, field := range envFields {
			if strings.EqualFold(k, field) {
				traceCarrier.Set(field, v)
			}
		}
	}

	return traceCarrier
}

// EnvFromCarrier renders a carrier as environment entries for a child process.
func EnvFromCarrier(traceCarrier propagation.MapCarrier) []string {
	env := make([]string, 0, len(traceCarrier))
	for _, k := range traceCarrier.Keys() {
		env = append(env, strings.ToUpper(k)+"="+traceCarrier.Get(k))
	}

	return env
}
