/*
The resp package attaches named helpers to a per-request response
so handlers state the outcome instead of assembling it:

	rw, err := resp.FromContext(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	u, err := users.Find(id)
	if err != nil {
		rw.Fail(rw.NotFound(resp.Msg("no such user")))
		return
	}

	rw.Ok("profile", u, false)

resp provides three shapes of helper:
  - status-only outcomes (NotFound, Conflict, ...) and UpgradeRequired build an *Error and emit nothing
  - redirects and empty responses (Found, NoContent, ...) emit immediately
  - Ok negotiates between text, JSON, XML and a rendered view

A Host adapts the underlying response writer; see http/host and http/host/ginhost.
Install binds every Outcome to a Host, keeping any Override registered first.
*/
package resp
