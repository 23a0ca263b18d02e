// Package middlewarex holds the HTTP middleware chain shared by the dashboard
// server: trace ids, request-scoped loggers, panic recovery, request/response
// logging and request metrics.
package middlewarex

import "launchdash/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
