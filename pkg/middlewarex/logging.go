package middlewarex

import "launchdash/pkg/logx"

// Logging configures RequestLogging and ResponseLogging.
type Logging struct {
	Masker      logx.SensitiveDataMaskerInterface
	FieldMaxLen int
	// Bodies turns on request and response body dumps. Binary bodies such
	// as chart images are never dumped.
	Bodies bool
}

func (l Logging) truncate(dump []byte) []byte {
	if len(dump) > l.FieldMaxLen {
		dump = dump[:l.FieldMaxLen]
	}

	return l.Masker.Mask(dump)
}
