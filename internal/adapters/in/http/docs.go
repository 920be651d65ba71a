// Package http is the inbound REST adapter of the mini-app.
//
// Callers are identified by the messenger user id sent in the X-Telegram-User-Id
// header or the uid query parameter. Routes under /api/admin also require the
// caller to be a configured super admin. Requests are validated against the
// embedded OpenAPI document before reaching a handler, and domain errors are
// mapped to status codes in one place:
//
//	errs.ErrObjectNotFound                         -> 404 "<name>_not_found"
//	errs.ErrValueIsInvalid, Required, OutOfRange   -> 400
//	errs.ErrConflict                               -> 409 with the conflict reason
package http
