// Package metrics defines the Prometheus collectors exported by the serve command.
package metrics
