package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/dekarrin/minnow/server/api"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/middle"
	"github.com/dekarrin/minnow/server/result"
	"github.com/go-chi/chi/v5"
)

var (
	paramTypePats = map[string]string{
		"uuid": "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}",
	}
)

// p is a quick parameter in a URI, made very small to ease readability in route
// listings.
func p(nameType string) string {
	var name string
	var pat string

	parts := strings.SplitN(nameType, ":", 2)
	name = parts[0]
	if len(parts) == 2 {
		// we have a type, if it's a name in the paramTypePats map use that else
		// treat it as a normal pattern
		pat = parts[1]

		if translatedPat, ok := paramTypePats[parts[1]]; ok {
			pat = translatedPat
		}
	}

	if pat == "" {
		return "{" + name + "}"
	}
	return "{" + name + ":" + pat + "}"
}

func newRouter(a api.API) chi.Router {
	r := chi.NewRouter()

	r.Mount(api.PathPrefix, newAPIRouter(a))

	return r
}

func newAPIRouter(a api.API) chi.Router {
	r := chi.NewRouter()

	login := newLoginRouter(a)
	tokens := newTokensRouter(a)
	users := newUsersRouter(a)
	programs := newProgramsRouter(a)
	runs := newRunsRouter(a)
	exec := newExecRouter(a)
	info := newInfoRouter(a)

	r.Mount("/login", login)
	r.Mount("/tokens", tokens)
	r.Mount("/users", users)
	r.Mount("/programs", programs)
	r.Mount("/runs", runs)
	r.Mount("/exec", exec)
	r.Mount("/info", info)
	r.HandleFunc("/info/", RedirectNoTrailingSlash)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		result.NotFound().WriteResponse(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(a.UnauthDelay)
		result.MethodNotAllowed(req).WriteResponse(w)
	})

	return r
}

func newLoginRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.Post("/", a.HTTPCreateLogin())
	r.With(reqAuth).Delete("/"+p("id:uuid"), a.HTTPDeleteLogin())
	r.HandleFunc("/"+p("id:uuid")+"/", RedirectNoTrailingSlash)

	return r
}

func newTokensRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.With(reqAuth).Post("/", a.HTTPCreateToken())

	return r
}

func newUsersRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.Use(reqAuth)

	r.Get("/", a.HTTPGetAllUsers())
	r.Post("/", a.HTTPCreateUser())

	r.Route("/"+p("id:uuid"), func(r chi.Router) {
		r.Get("/", a.HTTPGetUser())
		r.Put("/", a.HTTPReplaceUser())
		r.Patch("/", a.HTTPUpdateUser())
		r.Delete("/", a.HTTPDeleteUser())
	})

	return r
}

func newProgramsRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.Use(reqAuth)

	r.Get("/", a.HTTPGetAllPrograms())
	r.Post("/", a.HTTPCreateProgram())

	r.Route("/"+p("id:uuid"), func(r chi.Router) {
		r.Get("/", a.HTTPGetProgram())
		r.Put("/", a.HTTPUpdateProgram())
		r.Delete("/", a.HTTPDeleteProgram())
		r.Get("/runs", a.HTTPGetRunsForProgram())
		r.Post("/runs", a.HTTPCreateRun())
		r.HandleFunc("/runs/", RedirectNoTrailingSlash)
	})

	return r
}

func newRunsRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.With(reqAuth).Get("/"+p("id:uuid"), a.HTTPGetRun())
	r.HandleFunc("/"+p("id:uuid")+"/", RedirectNoTrailingSlash)

	return r
}

func newExecRouter(a api.API) chi.Router {
	reqAuth := middle.RequireAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay)

	r := chi.NewRouter()

	r.With(reqAuth).Post("/", a.HTTPExec())

	return r
}

func newInfoRouter(a api.API) chi.Router {
	optAuth := middle.OptionalAuth(a.Backend.DB.Users(), a.Secret, a.UnauthDelay, dao.User{})

	r := chi.NewRouter()

	r.With(optAuth).Get("/", a.HTTPGetInfo())

	return r
}

// RedirectNoTrailingSlash is an http.HandlerFunc that redirects to the same
// URL as the request but with no trailing slash.
func RedirectNoTrailingSlash(w http.ResponseWriter, req *http.Request) {
	redirPath := strings.TrimRight(req.URL.Path, "/")
	result.Redirection(redirPath).WriteResponse(w)
}
