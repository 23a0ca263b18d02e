// Package httpx holds outbound HTTP helpers.
package httpx

import "launchdash/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
