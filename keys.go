package respond

// A Key stashes values in a context.Context for the lifetime of an HTTP request.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// ResponseKey stashes the *resp.Response installed for an HTTP request.
	ResponseKey Key = "ResponseKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "respond context key: " + string(k)
}
