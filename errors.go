package safemocker

// serverErrorResult is the single reporting path for runtime failures:
// middleware or handler errors, panics, and unexpected validator faults.
// Structured validation outcomes never come through here.
//
// In production mode the real message is always replaced with the
// configured default so sensitive detail cannot leak into test fixtures
// that assert on production behavior. Outside production the error's own
// message is reported, falling back to the default when the error carries
// no message.
func serverErrorResult(err error, cfg Config) Result {
	msg := cfg.DefaultServerError
	if !cfg.IsProduction && err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return Result{ServerError: msg}
}
