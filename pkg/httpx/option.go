package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithResponseBody controls whether response bodies are read into the log.
// Large downloads such as dataset files should pass false.
func WithResponseBody(dump bool) Option {
	return func(rt *LoggingRoundTripper) {
		rt.dumpResponseBody = dump
	}
}
