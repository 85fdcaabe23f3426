package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// dataPrefix is the SSE field prefix each frame is written under. Every
// frame holds exactly one JSON-encoded StreamEvent on a single line.
var dataPrefix = []byte("data: ")

// Writer frames stream events onto an HTTP response as server-sent events,
// flushing after every frame so the client sees events as they happen.
type Writer struct {
	w       io.Writer
	flusher http.Flusher
}

// NewWriter wraps an io.Writer. If the writer implements http.Flusher
// (an HTTP response does), every frame is flushed immediately.
func NewWriter(w io.Writer) *Writer {
	f, _ := w.(http.Flusher)
	return &Writer{w: w, flusher: f}
}

// Send marshals one event payload and writes it as a single SSE frame.
func (w *Writer) Send(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal stream event: %w", err)
	}
	if bytes.ContainsRune(data, '\n') {
		// json.Marshal never emits raw newlines, but a frame with one
		// would silently corrupt the protocol, so refuse outright.
		return errors.New("stream event contains newline")
	}
	if _, err := w.w.Write(append(append(append([]byte{}, dataPrefix...), data...), '\n', '\n')); err != nil {
		return fmt.Errorf("failed to write stream frame: %w", err)
	}
	if w.flusher != nil {
		w.flusher.Flush()
	}
	return nil
}

// Reader incrementally decodes SSE frames from a network stream. A small
// rolling buffer reassembles frames split across reads: the last incomplete
// line is held back and prefixed to the next read.
type Reader struct {
	r   io.Reader
	buf []byte
	err error
}

// NewReader wraps the response body of an open event stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next decoded event. It returns io.EOF once the stream
// is exhausted, and the underlying read error if the transport fails
// mid-stream. Comment and blank keep-alive lines are skipped.
func (r *Reader) Next() (Event, error) {
	for {
		if line, ok := r.takeLine(); ok {
			if frame, ok := parseFrame(line); ok {
				return DecodeEvent(frame)
			}
			continue
		}

		if r.err != nil {
			// Stream ended: an incomplete trailing frame without its
			// newline is unusable and dropped.
			return Event{}, r.err
		}

		chunk := make([]byte, 4096)
		n, err := r.r.Read(chunk)
		if n > 0 {
			r.buf = append(r.buf, chunk[:n]...)
		}
		if err != nil {
			r.err = err
		}
	}
}

// takeLine pops one complete line from the buffer, holding back any
// incomplete remainder for the next read.
func (r *Reader) takeLine() ([]byte, bool) {
	idx := bytes.IndexByte(r.buf, '\n')
	if idx < 0 {
		return nil, false
	}
	line := r.buf[:idx]
	r.buf = r.buf[idx+1:]
	return bytes.TrimSuffix(line, []byte("\r")), true
}

// parseFrame extracts the JSON payload from a "data:" line. Non-data lines
// (blank separators, ": keep-alive" comments) yield ok=false.
func parseFrame(line []byte) ([]byte, bool) {
	if len(line) == 0 || line[0] == ':' {
		return nil, false
	}
	rest, ok := bytes.CutPrefix(line, []byte("data:"))
	if !ok {
		return nil, false
	}
	return bytes.TrimPrefix(rest, []byte(" ")), true
}
