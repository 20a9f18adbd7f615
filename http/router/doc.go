/*
Package router defines how requests reach handlers answering through a *resp.Response.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks.
OnEveryRequest sets that stack once; middleware.InjectResponse belongs in it
so NotFound and MethodNotAllowed negotiate their answers like any handler.
*/
package router
