package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/middle"
	"github.com/dekarrin/minnow/server/result"
	"github.com/dekarrin/minnow/server/serr"
)

// HTTPCreateRun returns a HandlerFunc that executes the program in the URI and
// records the outcome as a new run. A user may run their own programs; only an
// admin user can run someone else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the program being run and the logged-in user of the client making
// the request.
func (api API) HTTPCreateRun() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateRun)
}

func (api API) epCreateRun(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	p, err := api.Backend.GetProgram(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not get program: " + err.Error())
	}
	if p.Owner != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) run program %s: forbidden", user.Username, user.Role, id)
	}

	r, err := api.Backend.RunProgram(req.Context(), id.String(), user)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := toRunModel(r)
	return result.Created(resp, "user '%s' ran program '%s' (%d diagnostics)", user.Username, p.Name, len(r.Result.Diagnostics))
}

// HTTPGetRunsForProgram returns a HandlerFunc that retrieves all recorded runs
// of the program in the URI, oldest first. A user may list runs of their own
// programs; only an admin user can list someone else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the program whose runs are listed and the logged-in user of the
// client making the request.
func (api API) HTTPGetRunsForProgram() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetRunsForProgram)
}

func (api API) epGetRunsForProgram(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	p, err := api.Backend.GetProgram(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not get program: " + err.Error())
	}
	if p.Owner != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) list runs of program %s: forbidden", user.Username, user.Role, id)
	}

	runs, err := api.Backend.GetRunsForProgram(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError(err.Error())
	}

	resp := make([]RunModel, len(runs))
	for i := range runs {
		resp[i] = toRunModel(runs[i])
	}

	return result.OK(resp, "user '%s' got runs of program '%s'", user.Username, p.Name)
}

// HTTPGetRun returns a HandlerFunc that retrieves a single recorded run.
// A user may retrieve runs of their own programs; only an admin user can
// retrieve someone else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the run being retrieved and the logged-in user of the client
// making the request.
func (api API) HTTPGetRun() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetRun)
}

func (api API) epGetRun(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	r, err := api.Backend.GetRun(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		}
		return result.InternalServerError("could not get run: " + err.Error())
	}

	p, err := api.Backend.GetProgram(req.Context(), r.ProgramID.String())
	if err != nil && !errors.Is(err, serr.ErrNotFound) {
		return result.InternalServerError("could not get program of run: " + err.Error())
	}
	if r.UserID != user.ID && p.Owner != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) get run %s: forbidden", user.Username, user.Role, id)
	}

	resp := toRunModel(r)
	return result.OK(resp, "user '%s' got run %s", user.Username, resp.ID)
}

// HTTPExec returns a HandlerFunc that executes ad-hoc source text from the
// request body without persisting anything and returns the result.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the logged-in user of the client making the request.
func (api API) HTTPExec() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epExec)
}

func (api API) epExec(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var execReq ExecRequest
	err := parseJSON(req, &execReq)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}

	res, err := api.Backend.ExecSource(req.Context(), execReq.Source)
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := toResultModel(res)
	return result.OK(resp, "user '%s' executed ad-hoc source (%d diagnostics)", user.Username, len(res.Diagnostics))
}
