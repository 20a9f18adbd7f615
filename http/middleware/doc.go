/*
The middleware package defines what a middleware is and a set of basic middlewares
preparing requests for handlers answering through a *resp.Response.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectResponse
- LogRequest
- RateLimit
- Recover
- ReportPanic
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors(5, 20)
	adpts := []middleware.Adapter{
		middleware.Recover(log),
		middleware.ReportPanic(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(baseURL),
		middleware.InjectResponse(responder),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
	}
*/
package middleware
