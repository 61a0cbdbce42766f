package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport logs every request/response pair for troubleshooting API
// calls (unexpected status codes, malformed filters, decode failures).
//
// Enable it with WithDebugLogging(true) or by exporting ESTFOR_DEBUG=true
// (DEBUG=true also works). Each round trip is tagged with a random request_id
// so the request and response lines can be matched in interleaved output;
// the id is only logged, never sent.
//
// Dumps include full bodies. Keep it out of production.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	l := dt.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Logger()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		l.Debug().Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	start := time.Now()
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		l.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		l.Debug().
			Int("status_code", resp.StatusCode).
			Dur("elapsed", time.Since(start)).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether ESTFOR_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("ESTFOR_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
