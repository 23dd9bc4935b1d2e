package api

import "errors"

var (
	// ErrBadRequest indicates a malformed or unparseable request body.
	ErrBadRequest = errors.New("bad request")
	// ErrMethodNotAllowed indicates an unsupported HTTP method on a route.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrUnknownExport indicates an export route with no matching format.
	ErrUnknownExport = errors.New("unknown export format")
)

const (
	codeBadRequest       = "bad_request"
	codeMethodNotAllowed = "method_not_allowed"
	codeNotFound         = "not_found"
	codeInternal         = "internal_error"
	codeExportFailed     = "export_failed"
)
