package debug

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Transport wraps an http.RoundTripper to log requests and responses,
// enabled by the --debug flag. Output goes to stderr so it never corrupts
// json/yaml output on stdout.
type Transport struct {
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	fmt.Fprintf(os.Stderr, "--> %s %s\n", req.Method, req.URL.String())

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		fmt.Fprintf(os.Stderr, "    body: %s\n", string(bodyBytes))
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "<-- request failed: %v\n", err)
		return resp, err
	}

	fmt.Fprintf(os.Stderr, "<-- %d\n", resp.StatusCode)

	if resp.Body != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		fmt.Fprintf(os.Stderr, "    body: %s\n", string(bodyBytes))
	}

	return resp, err
}
