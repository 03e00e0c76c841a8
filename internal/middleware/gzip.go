package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// compressibleTypes типы ответов, которые имеет смысл сжимать
var compressibleTypes = map[string]bool{
	"application/json": true,
	"text/html":        true,
}

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipBody распаковывает тело запроса и закрывает исходное тело вместе с собой
type gzipBody struct {
	source io.ReadCloser
	reader *gzip.Reader
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	reader, err := gzip.NewReader(source)
	if err != nil {
		return nil, err
	}

	return &gzipBody{source: source, reader: reader}, nil
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipBody) Close() error {
	if err := b.reader.Close(); err != nil {
		return err
	}
	return b.source.Close()
}

func isCompressible(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return compressibleTypes[mediaType]
}

// gzipResponseWriter решает о сжатии в момент записи заголовка по Content-Type и статусу
type gzipResponseWriter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode < http.StatusMultipleChoices && isCompressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		w.writer = gzipWriterPool.Get().(*gzip.Writer)
		w.writer.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.writer != nil {
		return w.writer.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

// Close дописывает gzip поток и возвращает writer в пул
func (w *gzipResponseWriter) Close() error {
	if w.writer == nil {
		return nil
	}

	err := w.writer.Close()
	gzipWriterPool.Put(w.writer)
	w.writer = nil

	return err
}

// GzipMiddleware распаковывает gzip запросы и сжимает JSON и HTML ответы
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Warn("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("remote_addr", r.RemoteAddr),
					)
					writeMessage(w, r, http.StatusBadRequest, "Failed to decompress request body")
					return
				}
				r.Body = body
				r.Header.Del("Content-Encoding")
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
