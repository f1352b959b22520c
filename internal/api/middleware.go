package api

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	headerRequestID       = "X-Request-Id"
	headerAcceptEncoding  = "Accept-Encoding"
	headerContentEncoding = "Content-Encoding"
	encodingBrotli        = "br"

	ctxRequestID = "requestID"
)

var requestSeq atomic.Uint64

// RequestLogger tags each request with an id (taken from X-Request-Id or
// generated) and logs method, route, status and latency once it completes.
func RequestLogger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetHeader(headerRequestID)
		if rid == "" {
			rid = generateID()
		}
		c.Set(ctxRequestID, rid)
		c.Header(headerRequestID, rid)

		c.Next()

		ev := l.Info()
		if c.Writer.Status() >= 500 {
			ev = l.Error()
		}
		ev.Str("rid", rid).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http_request")
	}
}

// RequestID returns the id assigned by RequestLogger, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// generateID is unique per process, which is all log correlation needs.
func generateID() string {
	return fmt.Sprintf("%s-%d", time.Now().UTC().Format("20060102T150405.000000"), requestSeq.Add(1))
}

// DecodeBrotli transparently inflates request bodies sent with
// Content-Encoding: br.
func DecodeBrotli() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader(headerContentEncoding), encodingBrotli) {
			c.Request.Body = io.NopCloser(brotli.NewReader(c.Request.Body))
			c.Request.Header.Del(headerContentEncoding)
			c.Request.ContentLength = -1
		}
		c.Next()
	}
}

// brotliWriter routes the response body through a brotli encoder.
type brotliWriter struct {
	gin.ResponseWriter
	enc *brotli.Writer
}

func (w *brotliWriter) Write(b []byte) (int, error) {
	return w.enc.Write(b)
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.enc.Write([]byte(s))
}

// CompressBrotli compresses responses for clients that accept br.
func CompressBrotli(level int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsBrotli(c.GetHeader(headerAcceptEncoding)) {
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set(headerContentEncoding, encodingBrotli)
		h.Add("Vary", headerAcceptEncoding)
		h.Del("Content-Length")

		// Handlers below must not negotiate a second encoding.
		c.Request.Header.Del(headerAcceptEncoding)

		bw := &brotliWriter{ResponseWriter: c.Writer, enc: brotli.NewWriterLevel(c.Writer, level)}
		c.Writer = bw
		defer func() {
			_ = bw.enc.Close()
		}()

		c.Next()
	}
}

// acceptsBrotli reports whether an Accept-Encoding header lists br with a
// non-zero quality.
func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), encodingBrotli) {
			continue
		}
		params = strings.ReplaceAll(params, " ", "")
		return params != "q=0" && params != "q=0.0" && params != "q=0.00" && params != "q=0.000"
	}

	return false
}
