package api

import (
	"errors"
	"net/http"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/middle"
	"github.com/dekarrin/minnow/server/result"
	"github.com/dekarrin/minnow/server/serr"
)

// HTTPGetAllPrograms returns a HandlerFunc that retrieves programs. A normal
// user gets their own programs; an admin user gets every program on the
// server.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the logged-in user of the client making the request.
func (api API) HTTPGetAllPrograms() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetAllPrograms)
}

func (api API) epGetAllPrograms(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var progs []dao.Program
	var err error
	if user.Role == dao.Admin {
		progs, err = api.Backend.GetAllPrograms(req.Context())
	} else {
		progs, err = api.Backend.GetProgramsByOwner(req.Context(), user.ID)
	}
	if err != nil {
		return result.InternalServerError(err.Error())
	}

	resp := make([]ProgramModel, len(progs))
	for i := range progs {
		resp[i] = toProgramModel(progs[i])
	}

	return result.OK(resp, "user '%s' got programs", user.Username)
}

// HTTPCreateProgram returns a HandlerFunc that stores a new program owned by
// the logged-in user.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the logged-in user of the client making the request.
func (api API) HTTPCreateProgram() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epCreateProgram)
}

func (api API) epCreateProgram(req *http.Request) result.Result {
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var createProg ProgramModel
	err := parseJSON(req, &createProg)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}
	if createProg.Name == "" {
		return result.BadRequest("name: property is empty or missing from request", "empty name")
	}

	newProg, err := api.Backend.CreateProgram(req.Context(), user.ID, createProg.Name, createProg.Source)
	if err != nil {
		if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := toProgramModel(newProg)
	return result.Created(resp, "user '%s' created program '%s' (%s)", user.Username, resp.Name, resp.ID)
}

// HTTPGetProgram returns a HandlerFunc that gets an existing program. A user
// may retrieve their own programs; only an admin user can retrieve someone
// else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the program being operated on and the logged-in user of the client
// making the request.
func (api API) HTTPGetProgram() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epGetProgram)
}

func (api API) epGetProgram(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	p, err := api.Backend.GetProgram(req.Context(), id.String())
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError("could not get program: " + err.Error())
	}

	if p.Owner != user.ID && user.Role != dao.Admin {
		return result.Forbidden("user '%s' (role %s) get program %s: forbidden", user.Username, user.Role, id)
	}

	resp := toProgramModel(p)
	return result.OK(resp, "user '%s' got program '%s'", user.Username, p.Name)
}

// HTTPUpdateProgram returns a HandlerFunc that updates the name and source of
// an existing program. A user may update their own programs; only an admin
// user can update someone else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the program being operated on and the logged-in user of the client
// making the request.
func (api API) HTTPUpdateProgram() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epUpdateProgram)
}

func (api API) epUpdateProgram(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	var updateProg ProgramModel
	err := parseJSON(req, &updateProg)
	if err != nil {
		return result.BadRequest(err.Error(), err.Error())
	}
	if updateProg.Name == "" {
		return result.BadRequest("name: property is empty or missing from request", "empty name")
	}

	updated, err := api.Backend.UpdateProgram(req.Context(), id.String(), user, updateProg.Name, updateProg.Source)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		} else if errors.Is(err, serr.ErrPermissions) {
			return result.Forbidden("user '%s' (role %s) update program %s: forbidden", user.Username, user.Role, id)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError(err.Error())
	}

	resp := toProgramModel(updated)
	return result.Created(resp, "user '%s' updated program '%s' (%s)", user.Username, resp.Name, resp.ID)
}

// HTTPDeleteProgram returns a HandlerFunc that deletes a program and its
// recorded runs. A user may delete their own programs; only an admin user can
// delete someone else's.
//
// The handler has requirements for the request context it receives, and if the
// requirements are not met it may return an HTTP-500. The context must contain
// the ID of the program being deleted and the logged-in user of the client
// making the request.
func (api API) HTTPDeleteProgram() http.HandlerFunc {
	return httpEndpoint(api.UnauthDelay, api.epDeleteProgram)
}

func (api API) epDeleteProgram(req *http.Request) result.Result {
	id := requireIDParam(req)
	user := req.Context().Value(middle.AuthUser).(dao.User)

	deleted, err := api.Backend.DeleteProgram(req.Context(), id.String(), user)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return result.NotFound()
		} else if errors.Is(err, serr.ErrPermissions) {
			return result.Forbidden("user '%s' (role %s) delete program %s: forbidden", user.Username, user.Role, id)
		} else if errors.Is(err, serr.ErrBadArgument) {
			return result.BadRequest(err.Error(), err.Error())
		}
		return result.InternalServerError("could not delete program: " + err.Error())
	}

	return result.NoContent("user '%s' successfully deleted program '%s'", user.Username, deleted.Name)
}
