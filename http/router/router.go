package router

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/respond/http/middleware"
	"github.com/xy-planning-network/respond/http/resp"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to handlers answering through a *resp.Response.
type Router struct {
	everyReqStack []middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router].
//
// Requests matching no Route are answered with 404 Not Found,
// and those matching a path but not its method with 405 Method Not Allowed,
// after passing through the middlewares set with OnEveryRequest.
func New() *Router {
	rt := &Router{r: mux.NewRouter()}
	rt.r.NotFoundHandler = rt.everyRequest(NotFound)
	rt.r.MethodNotAllowedHandler = rt.everyRequest(MethodNotAllowed)

	return rt
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(r.everyRequest(handler))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = r.everyRequest(handler)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append([]middleware.Adapter{}, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(route.Handler, mws...)
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Static serves the files in fsys under prefix, e.g. r.Static("/assets/", os.DirFS("public")).
func (r *Router) Static(prefix string, fsys fs.FS) {
	r.r.PathPrefix(prefix).Handler(middleware.Chain(
		http.StripPrefix(prefix, http.FileServer(http.FS(fsys))),
		cacheControlMiddleware(),
	))
}

func (r *Router) SubrouterHost(host string) *Router {
	return &Router{
		r:             r.r.Host(host).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		r:             r.r.PathPrefix(prefix).Subrouter(),
		everyReqStack: r.everyReqStack,
	}
}

// everyRequest wraps handler in the stack as it stands when a request arrives.
func (r *Router) everyRequest(handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		middleware.Chain(handler, r.everyReqStack...).ServeHTTP(w, req)
	})
}

// NotFound answers 404 Not Found through the request's NotFound outcome.
func NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.Fail(w, r, "NotFound", resp.Msg("no such route: "+r.URL.Path))
}

// MethodNotAllowed answers 405 Method Not Allowed through the request's MethodNotAllowed outcome.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	middleware.Fail(w, r, "MethodNotAllowed")
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
