package middleware

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/respond"
	"github.com/xy-planning-network/respond/logger"
)

// A LogRequestRecord is the data LogRequest attaches to each log line.
type LogRequestRecord struct {
	BodySize       int    `json:"bodySize"`
	Duration       string `json:"duration"`
	Host           string `json:"host"`
	ID             string `json:"id,omitempty"`
	IPAddr         string `json:"ipAddr,omitempty"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Protocol       string `json:"protocol"`
	Referrer       string `json:"referrer,omitempty"`
	ReqContentType string `json:"reqContentType,omitempty"`
	Scheme         string `json:"scheme,omitempty"`
	Status         int    `json:"status"`
	URI            string `json:"uri"`
	UserAgent      string `json:"userAgent,omitempty"`
}

// LogRequest logs the request's method, requested URL, originating IP address,
// and the resulting status and size using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(io.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
			rec := newLogRequestRecord(p)
			ls.Info(rec.Method+" "+rec.URI, &logger.LogContext{
				Caller: "middleware/log_request.go",
				Data:   map[string]any{"request": rec},
			})
		})
	}
}

func newLogRequestRecord(p handlers.LogFormatterParams) LogRequestRecord {
	q := p.URL.Query()
	respond.Mask(q, "password")

	uri := p.URL.Path
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	r := p.Request
	rec := LogRequestRecord{
		BodySize:       p.Size,
		Duration:       time.Since(p.TimeStamp).String(),
		Host:           r.Host,
		Method:         r.Method,
		Path:           p.URL.Path,
		Protocol:       r.Proto,
		Referrer:       r.Referer(),
		ReqContentType: r.Header.Get("Content-Type"),
		Scheme:         p.URL.Scheme,
		Status:         p.StatusCode,
		URI:            uri,
		UserAgent:      r.UserAgent(),
	}

	if id, ok := r.Context().Value(respond.RequestIDKey).(string); ok {
		rec.ID = id
	}

	if ip, ok := r.Context().Value(respond.IpAddrKey).(string); ok {
		rec.IPAddr = ip
	}

	return rec
}
