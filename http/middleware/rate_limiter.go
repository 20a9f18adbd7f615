package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/xy-planning-network/respond/http/resp"
	"golang.org/x/time/rate"
)

const (
	defaultLimit rate.Limit = 5
	defaultBurst            = 20
	visitorTTL              = 60 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	limit rate.Limit
	burst int
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors whose Visitors are limited to limit requests every second
// with bursts of up to burst.
// Non-positive values fall back on 5 requests every second with bursts of up to 20.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 {
		limit = defaultLimit
	}

	if burst <= 0 {
		burst = defaultBurst
	}

	return &Visitors{limit: limit, burst: burst, val: make(map[string]Visitor)}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len reports how many Visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()
	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler
// while the visitor's limiter allows it.
// Otherwise, it answers 429 Too Many Requests with a Retry-After header,
// through the request's *resp.Response when InjectResponse ran first.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(visitors *Visitors) Adapter {
	if visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(GetIPAddress(r.Header)).Limiter.Allow() {
				retry := int(math.Ceil(1 / float64(visitors.limit)))
				Fail(w, r, "TooManyRequests", resp.Headers(http.Header{"Retry-After": {strconv.Itoa(retry)}}))
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}
