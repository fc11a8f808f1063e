// Package result contains results that endpoint functions return and that are
// used to write out API responses.
package result

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Result is everything needed to write one HTTP response, along with an
// internal message for logging that is never shown to the client.
type Result struct {
	Status      int
	IsErr       bool
	IsJSON      bool
	InternalMsg string

	resp  interface{}
	redir string // only used for redirects
	hdrs  [][2]string

	// set by calling PrepareMarshaledResponse.
	respJSONBytes []byte
}

// fmtMsg resolves the optional internalMsg varargs convention used by the
// constructor functions: if present, the first element is a format string for
// the rest; if absent, def is used.
func fmtMsg(def string, internalMsg []interface{}) string {
	if len(internalMsg) < 1 {
		return def
	}
	return fmt.Sprintf(internalMsg[0].(string), internalMsg[1:]...)
}

// OK returns a Result containing an HTTP-200 along with a more detailed
// message (if desired; if none is provided it defaults to a generic one) that
// is not displayed to the user.
func OK(respObj interface{}, internalMsg ...interface{}) Result {
	return Response(http.StatusOK, respObj, fmtMsg("OK", internalMsg))
}

// Created returns a Result containing an HTTP-201 along with a more detailed
// message (if desired; if none is provided it defaults to a generic one) that
// is not displayed to the user.
func Created(respObj interface{}, internalMsg ...interface{}) Result {
	return Response(http.StatusCreated, respObj, fmtMsg("created", internalMsg))
}

// NoContent returns a Result containing an HTTP-204 along with a more
// detailed message (if desired; if none is provided it defaults to a generic
// one) that is not displayed to the user.
func NoContent(internalMsg ...interface{}) Result {
	return Response(http.StatusNoContent, nil, fmtMsg("no content", internalMsg))
}

// Conflict returns a Result containing an HTTP-409 along with a more detailed
// message (if desired; if none is provided it defaults to a generic one) that
// is not displayed to the user.
func Conflict(userMsg string, internalMsg ...interface{}) Result {
	return Err(http.StatusConflict, userMsg, fmtMsg("conflict", internalMsg))
}

// BadRequest returns a Result containing an HTTP-400 along with a more
// detailed message (if desired; if none is provided it defaults to a generic
// one) that is not displayed to the user.
func BadRequest(userMsg string, internalMsg ...interface{}) Result {
	return Err(http.StatusBadRequest, userMsg, fmtMsg("bad request", internalMsg))
}

// MethodNotAllowed returns a Result containing an HTTP-405 along with a more
// detailed message (if desired; if none is provided it defaults to a generic
// one) that is not displayed to the user.
func MethodNotAllowed(req *http.Request, internalMsg ...interface{}) Result {
	userMsg := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return Err(http.StatusMethodNotAllowed, userMsg, fmtMsg("method not allowed", internalMsg))
}

// NotFound returns a Result containing an HTTP-404 response along with a more
// detailed message (if desired; if none is provided it defaults to a generic
// one) that is not displayed to the user.
func NotFound(internalMsg ...interface{}) Result {
	return Err(http.StatusNotFound, "The requested resource was not found", fmtMsg("not found", internalMsg))
}

// Forbidden returns a Result containing an HTTP-403 response. internalMsg is
// a detailed error message (if desired; if none is provided it defaults to a
// generic one) that is not displayed to the user.
func Forbidden(internalMsg ...interface{}) Result {
	return Err(http.StatusForbidden, "You don't have permission to do that", fmtMsg("forbidden", internalMsg))
}

// Unauthorized returns a Result containing an HTTP-401 response along with
// the proper WWW-Authenticate header. internalMsg is a detailed error message
// (if desired; if none is provided it defaults to a generic one) that is not
// displayed to the user.
func Unauthorized(userMsg string, internalMsg ...interface{}) Result {
	if userMsg == "" {
		userMsg = "You are not authorized to do that"
	}

	return Err(http.StatusUnauthorized, userMsg, fmtMsg("unauthorized", internalMsg)).
		WithHeader("WWW-Authenticate", `Basic realm="Minnow server", charset="utf-8"`)
}

// InternalServerError returns a Result containing an HTTP-500 response along
// with a more detailed message that is not displayed to the user. If
// internalMsg is provided the first argument must be a string that is the
// format string and any subsequent args are passed to Sprintf with the first
// as the format string.
func InternalServerError(internalMsg ...interface{}) Result {
	return Err(http.StatusInternalServerError, "An internal server error occurred", fmtMsg("internal server error", internalMsg))
}

// Response returns a Result containing a normal JSON response. If status is
// http.StatusNoContent, respObj will not be read and may be nil. Otherwise,
// respObj MUST NOT be nil.
func Response(status int, respObj interface{}, internalMsg string, v ...interface{}) Result {
	msg := fmt.Sprintf(internalMsg, v...)
	return Result{
		IsJSON:      true,
		IsErr:       false,
		Status:      status,
		InternalMsg: msg,
		resp:        respObj,
	}
}

// Err returns a Result containing a JSON error response with the given
// user-facing message.
func Err(status int, userMsg, internalMsg string, v ...interface{}) Result {
	msg := fmt.Sprintf(internalMsg, v...)
	return Result{
		IsJSON:      true,
		IsErr:       true,
		Status:      status,
		InternalMsg: msg,
		resp: ErrorResponse{
			Error:  userMsg,
			Status: status,
		},
	}
}

// Redirection returns a Result that redirects the client to the given URI.
func Redirection(uri string) Result {
	msg := fmt.Sprintf("redirect -> %s", uri)
	return Result{
		Status:      http.StatusPermanentRedirect,
		InternalMsg: msg,
		redir:       uri,
	}
}

// TextErr is like Err but it avoids JSON encoding of any kind and writes the
// output as plain text.
func TextErr(status int, userMsg, internalMsg string, v ...interface{}) Result {
	msg := fmt.Sprintf(internalMsg, v...)
	return Result{
		IsJSON:      false,
		IsErr:       true,
		Status:      status,
		InternalMsg: msg,
		resp:        userMsg,
	}
}

// WithHeader returns a copy of the Result with the given header set on it.
func (r Result) WithHeader(name, val string) Result {
	erCopy := r
	erCopy.hdrs = append(append([][2]string(nil), r.hdrs...), [2]string{name, val})
	return erCopy
}

// PrepareMarshaledResponse sets the respJSONBytes to the marshaled version of
// the response if required. If required, and there is a problem marshaling,
// an error is returned. If not required, nil error is always returned.
//
// If PrepareMarshaledResponse has been successfully called at least once for
// r, calling this method again has no effect and returns a nil error.
func (r *Result) PrepareMarshaledResponse() error {
	if r.respJSONBytes != nil {
		return nil
	}

	if r.IsJSON && r.Status != http.StatusNoContent && r.redir == "" {
		var err error
		r.respJSONBytes, err = json.Marshal(r.resp)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteResponse writes the Result out to w. It panics if the Result was never
// populated or if the response cannot be marshaled.
func (r Result) WriteResponse(w http.ResponseWriter) {
	// if this hasn't been properly created, panic
	if r.Status == 0 {
		panic("result not populated")
	}

	err := r.PrepareMarshaledResponse()
	if err != nil {
		panic(fmt.Sprintf("could not marshal response: %s", err.Error()))
	}

	var respBytes []byte

	if r.IsJSON {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if r.redir == "" {
			respBytes = r.respJSONBytes
		}
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if r.Status != http.StatusNoContent && r.redir == "" {
			respBytes = []byte(fmt.Sprintf("%v", r.resp))
		}
	}

	// if there is a redir, handle that now
	if r.redir != "" {
		w.Header().Set("Location", r.redir)
	}

	for i := range r.hdrs {
		w.Header().Set(r.hdrs[i][0], r.hdrs[i][1])
	}

	w.WriteHeader(r.Status)

	if r.Status != http.StatusNoContent {
		w.Write(respBytes)
	}
}
