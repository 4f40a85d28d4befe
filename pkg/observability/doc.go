/*
Package observability exposes decision metrics for Prometheus.

Metrics are fed through domain.DecisionHooks, so any engine or interpreter
configured with Metrics.Hooks() reports decision counts, search steps,
durations and cache hits without further wiring.
*/
package observability
