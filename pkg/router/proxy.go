package router

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// maxScanTokenSize accommodates large single-line responses (embeddings,
// non-streamed completions forwarded line-wise).
const maxScanTokenSize = 16 * 1024 * 1024

// preemptedLine is the terminal NDJSON object written to a client whose
// stream was cut by higher-priority traffic.
var preemptedLine = []byte(`{"error":"preempted","done":true}` + "\n")

// Proxy forwards the request body to the chosen backend and relays the
// response. Streaming responses are copied line by line so preemption can
// cut in between chunks with a well-formed terminal object.
func (r *Router) Proxy(ctx context.Context, w http.ResponseWriter, b *Backend, tr *TrackedRequest, apiPath string, body []byte, header http.Header) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint+apiPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}
	copyProxyHeaders(req.Header, header)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.MarkUnhealthy(b)
		return fmt.Errorf("upstream call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if isStreamingResponse(resp) {
		return r.relayStream(w, b, tr, resp)
	}
	return relayWhole(w, resp)
}

// relayStream copies NDJSON lines to the client, checking the preemption
// channel between lines. On preemption the upstream body is closed and the
// client receives a terminal error object instead of a truncated stream.
func (r *Router) relayStream(w http.ResponseWriter, b *Backend, tr *TrackedRequest, resp *http.Response) error {
	w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
	w.WriteHeader(resp.StatusCode)
	flusher, _ := w.(http.Flusher)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), maxScanTokenSize)

	for scanner.Scan() {
		select {
		case <-tr.Preempted():
			_, _ = w.Write(preemptedLine)
			if flusher != nil {
				flusher.Flush()
			}
			_ = resp.Body.Close()
			slog.Info("Stream cut by preemption", "backend", b.Name,
				"model", tr.Model, "request_id", tr.ID)
			return ErrPreempted
		default:
		}

		if _, err := w.Write(append(scanner.Bytes(), '\n')); err != nil {
			return fmt.Errorf("client write failed: %w", err)
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	if err := scanner.Err(); err != nil {
		// Distinguish a mid-stream preempt from a genuine upstream failure.
		select {
		case <-tr.Preempted():
			_, _ = w.Write(preemptedLine)
			if flusher != nil {
				flusher.Flush()
			}
			return ErrPreempted
		default:
		}
		return fmt.Errorf("upstream stream failed: %w", err)
	}
	return nil
}

func relayWhole(w http.ResponseWriter, resp *http.Response) error {
	for k, vals := range resp.Header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("response copy failed: %w", err)
	}
	return nil
}

// isStreamingResponse detects NDJSON streams. Ollama streams with
// application/x-ndjson; single-shot responses come back as application/json.
func isStreamingResponse(resp *http.Response) bool {
	ct := resp.Header.Get("Content-Type")
	return ct == "application/x-ndjson" || ct == "text/event-stream"
}

// wantsStream inspects the request body's "stream" field. Ollama defaults
// generate and chat to streaming when the field is absent.
func wantsStream(apiPath string, body []byte) bool {
	if apiPath == "/api/embeddings" || apiPath == "/api/embed" {
		return false
	}
	var probe struct {
		Stream *bool `json:"stream"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.Stream == nil {
		return true
	}
	return *probe.Stream
}

// copyProxyHeaders forwards client headers upstream, dropping hop-by-hop and
// router-internal headers.
func copyProxyHeaders(dst, src http.Header) {
	for k, vals := range src {
		switch http.CanonicalHeaderKey(k) {
		case "Connection", "Keep-Alive", "Transfer-Encoding", "Upgrade",
			"X-Ollama-Priority", "Host", "Content-Length":
			continue
		}
		for _, v := range vals {
			dst.Add(k, v)
		}
	}
	if dst.Get("Content-Type") == "" {
		dst.Set("Content-Type", "application/json")
	}
}
