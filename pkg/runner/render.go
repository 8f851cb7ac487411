// Copyright 2016-2018, Pulumi Corporation.  All rights reserved.

package runner

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"unicode/utf8"

	"github.com/fatih/color"
)

// render prints the request summary, the status line, the response headers and the body.  JSON bodies are
// pretty-printed; anything that is not valid UTF-8 is replaced by a placeholder.
func (r *Runner) render(req *http.Request, resp *http.Response, body []byte) {
	fmt.Fprintf(r.stdout, "%s %s\n", color.New(color.Bold).Sprint(req.Method), req.URL)
	fmt.Fprintf(r.stdout, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range resp.Header[k] {
			fmt.Fprintf(r.stdout, "%s: %s\n", k, v)
		}
	}

	fmt.Fprintln(r.stdout, renderBody(body))
}

func renderBody(body []byte) string {
	if !utf8.Valid(body) {
		return "<non-utf8 body>"
	}
	var v interface{}
	if err := json.Unmarshal(body, &v); err == nil {
		if pretty, err := json.MarshalIndent(v, "", "  "); err == nil {
			return string(pretty)
		}
	}
	return string(body)
}
