// Package connectors opens long-lived clients to external stores once per
// process.
package connectors

import "launchdash/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
