package mins

import (
	"context"
	"testing"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/dao/inmem"
	"github.com/dekarrin/minnow/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Service_RunProgram(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	owner := dao.User{ID: uuid.New(), Username: "aradia", Role: dao.Normal}

	p, err := svc.CreateProgram(ctx, owner.ID, "doubler", "int x = 21;\nprint(x * 2);\n")
	if !assert.NoError(err) {
		return
	}

	r, err := svc.RunProgram(ctx, p.ID.String(), owner)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(p.ID, r.ProgramID)
	assert.Equal(owner.ID, r.UserID)
	assert.Equal([]string{"42"}, r.Result.Output)
	assert.Empty(r.Result.Diagnostics)
	assert.False(r.Result.Failed())

	// run again; both runs should be recorded
	_, err = svc.RunProgram(ctx, p.ID.String(), owner)
	if !assert.NoError(err) {
		return
	}

	runs, err := svc.GetRunsForProgram(ctx, p.ID.String())
	assert.NoError(err)
	assert.Len(runs, 2)
}

func Test_Service_RunProgram_recordsDiagnostics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	owner := dao.User{ID: uuid.New(), Username: "sollux", Role: dao.Normal}

	p, err := svc.CreateProgram(ctx, owner.ID, "broken", "print(undeclared);\n")
	if !assert.NoError(err) {
		return
	}

	r, err := svc.RunProgram(ctx, p.ID.String(), owner)
	if !assert.NoError(err) {
		return
	}

	assert.True(r.Result.Failed())
	if assert.Len(r.Result.Diagnostics, 1) {
		assert.Equal(minnow.Semantic, r.Result.Diagnostics[0].Category)
	}
	assert.Empty(r.Result.Output)
}

func Test_Service_RunProgram_notFound(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	user := dao.User{ID: uuid.New(), Username: "karkat"}

	_, err := svc.RunProgram(ctx, uuid.New().String(), user)
	assert.ErrorIs(err, serr.ErrNotFound)

	_, err = svc.RunProgram(ctx, "not-a-uuid", user)
	assert.ErrorIs(err, serr.ErrBadArgument)
}

func Test_Service_ExecSource(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	res, err := svc.ExecSource(ctx, "int a = 2;\nint b = 3;\nprint(a + b);\n")
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]string{"5"}, res.Output)
	assert.False(res.Failed())

	// nothing should have been persisted
	progs, err := svc.GetAllPrograms(ctx)
	assert.NoError(err)
	assert.Empty(progs)
}

func Test_Service_UpdateProgram_ownership(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	owner := dao.User{ID: uuid.New(), Username: "vriska", Role: dao.Normal}
	other := dao.User{ID: uuid.New(), Username: "tavros", Role: dao.Normal}
	admin := dao.User{ID: uuid.New(), Username: "admin", Role: dao.Admin}

	p, err := svc.CreateProgram(ctx, owner.ID, "mine", "print(8);")
	if !assert.NoError(err) {
		return
	}

	_, err = svc.UpdateProgram(ctx, p.ID.String(), other, "stolen", "print(0);")
	assert.ErrorIs(err, serr.ErrPermissions)

	updated, err := svc.UpdateProgram(ctx, p.ID.String(), owner, "mine still", "print(88);")
	assert.NoError(err)
	assert.Equal("mine still", updated.Name)

	updated, err = svc.UpdateProgram(ctx, p.ID.String(), admin, "admin touched", "print(888);")
	assert.NoError(err)
	assert.Equal("admin touched", updated.Name)
}

func Test_Service_DeleteProgram_removesRuns(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	svc := Service{DB: inmem.NewDatastore()}

	owner := dao.User{ID: uuid.New(), Username: "terezi", Role: dao.Normal}

	p, err := svc.CreateProgram(ctx, owner.ID, "evidence", "print(413);")
	if !assert.NoError(err) {
		return
	}

	r, err := svc.RunProgram(ctx, p.ID.String(), owner)
	if !assert.NoError(err) {
		return
	}

	_, err = svc.DeleteProgram(ctx, p.ID.String(), owner)
	assert.NoError(err)

	_, err = svc.GetProgram(ctx, p.ID.String())
	assert.ErrorIs(err, serr.ErrNotFound)

	_, err = svc.GetRun(ctx, r.ID.String())
	assert.ErrorIs(err, serr.ErrNotFound)
}
