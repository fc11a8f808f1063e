package api

import (
	"time"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/server/dao"
)

// note that these are *not* the DAO models; those are distinct and closer to
// the DB format they are in. Rather these are the models that are received
// from and sent to the client.

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type InfoModel struct {
	Version struct {
		Server string `json:"server"`
		Minnow string `json:"minnow"`
	} `json:"version"`
}

type UserModel struct {
	URI            string `json:"uri"`
	ID             string `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	Password       string `json:"password,omitempty"`
	Email          string `json:"email,"`
	Role           string `json:"role,omitempty"`
	Created        string `json:"created,omitempty"`
	Modified       string `json:"modified,omitempty"`
	LastLogoutTime string `json:"last_logout,omitempty"`
	LastLoginTime  string `json:"last_login,omitempty"`
}

type UserUpdateRequest struct {
	ID       UpdateString `json:"id,omitempty"`
	Username UpdateString `json:"username,omitempty"`
	Password UpdateString `json:"password,omitempty"`
	Email    UpdateString `json:"email,"`
	Role     UpdateString `json:"role,omitempty"`
}

type UpdateString struct {
	Update bool   `json:"u,omitempty"`
	Value  string `json:"v,omitempty"`
}

type ProgramModel struct {
	URI      string `json:"uri"`
	ID       string `json:"id,omitempty"`
	Owner    string `json:"owner,omitempty"`
	Name     string `json:"name,omitempty"`
	Source   string `json:"source"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
}

type DiagnosticModel struct {
	Category string `json:"category"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Message  string `json:"message"`
}

type ResultModel struct {
	Output      []string          `json:"output"`
	Diagnostics []DiagnosticModel `json:"diagnostics"`
	Failed      bool              `json:"failed"`
}

type RunModel struct {
	URI     string      `json:"uri"`
	ID      string      `json:"id,omitempty"`
	Program string      `json:"program,omitempty"`
	User    string      `json:"user,omitempty"`
	Result  ResultModel `json:"result"`
	Created string      `json:"created,omitempty"`
}

type ExecRequest struct {
	Source string `json:"source"`
}

func toUserModel(u dao.User) UserModel {
	m := UserModel{
		URI:            PathPrefix + "/users/" + u.ID.String(),
		ID:             u.ID.String(),
		Username:       u.Username,
		Role:           u.Role.String(),
		Created:        u.Created.Format(time.RFC3339),
		Modified:       u.Modified.Format(time.RFC3339),
		LastLogoutTime: u.LastLogoutTime.Format(time.RFC3339),
		LastLoginTime:  u.LastLoginTime.Format(time.RFC3339),
	}
	if u.Email != nil {
		m.Email = u.Email.Address
	}
	return m
}

func toProgramModel(p dao.Program) ProgramModel {
	return ProgramModel{
		URI:      PathPrefix + "/programs/" + p.ID.String(),
		ID:       p.ID.String(),
		Owner:    p.Owner.String(),
		Name:     p.Name,
		Source:   p.Source,
		Created:  p.Created.Format(time.RFC3339),
		Modified: p.Modified.Format(time.RFC3339),
	}
}

func toResultModel(res minnow.Result) ResultModel {
	m := ResultModel{
		Output:      res.Output,
		Diagnostics: make([]DiagnosticModel, len(res.Diagnostics)),
		Failed:      res.Failed(),
	}
	for i, d := range res.Diagnostics {
		m.Diagnostics[i] = DiagnosticModel{
			Category: d.Category.String(),
			Line:     d.Line,
			Col:      d.Col,
			Message:  d.Message,
		}
	}
	return m
}

func toRunModel(r dao.Run) RunModel {
	return RunModel{
		URI:     PathPrefix + "/runs/" + r.ID.String(),
		ID:      r.ID.String(),
		Program: PathPrefix + "/programs/" + r.ProgramID.String(),
		User:    PathPrefix + "/users/" + r.UserID.String(),
		Result:  toResultModel(r.Result),
		Created: r.Created.Format(time.RFC3339),
	}
}
