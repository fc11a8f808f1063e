package inmem

import (
	"context"
	"testing"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_UsersRepo_CreateAndGet(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepo()

	created, err := repo.Create(ctx, dao.User{Username: "nepeta", Password: "x", Role: dao.Normal})
	if !assert.NoError(err) {
		return
	}

	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())
	assert.True(created.LastLoginTime.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(created, byID)

	byName, err := repo.GetByUsername(ctx, "nepeta")
	assert.NoError(err)
	assert.Equal(created, byName)
}

func Test_UsersRepo_Create_duplicateUsername(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepo()

	_, err := repo.Create(ctx, dao.User{Username: "equius"})
	if !assert.NoError(err) {
		return
	}

	_, err = repo.Create(ctx, dao.User{Username: "equius"})
	assert.ErrorIs(err, dao.ErrConstraintViolation)
}

func Test_UsersRepo_Update_changesUsernameIndex(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepo()

	created, err := repo.Create(ctx, dao.User{Username: "old"})
	if !assert.NoError(err) {
		return
	}

	created.Username = "new"
	updated, err := repo.Update(ctx, created.ID, created)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("new", updated.Username)

	_, err = repo.GetByUsername(ctx, "old")
	assert.ErrorIs(err, dao.ErrNotFound)

	got, err := repo.GetByUsername(ctx, "new")
	assert.NoError(err)
	assert.Equal(updated.ID, got.ID)
}

func Test_UsersRepo_Delete(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewUsersRepo()

	created, err := repo.Create(ctx, dao.User{Username: "doomed"})
	if !assert.NoError(err) {
		return
	}

	deleted, err := repo.Delete(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(err, dao.ErrNotFound)
}

func Test_ProgramsRepo_GetAllByOwner(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewProgramsRepo()

	owner1 := uuid.New()
	owner2 := uuid.New()

	_, err := repo.Create(ctx, dao.Program{Owner: owner1, Name: "one", Source: "print(1);"})
	if !assert.NoError(err) {
		return
	}
	_, err = repo.Create(ctx, dao.Program{Owner: owner1, Name: "two", Source: "print(2);"})
	if !assert.NoError(err) {
		return
	}
	_, err = repo.Create(ctx, dao.Program{Owner: owner2, Name: "three", Source: "print(3);"})
	if !assert.NoError(err) {
		return
	}

	all, err := repo.GetAll(ctx)
	assert.NoError(err)
	assert.Len(all, 3)

	owned, err := repo.GetAllByOwner(ctx, owner1)
	assert.NoError(err)
	assert.Len(owned, 2)
	for _, p := range owned {
		assert.Equal(owner1, p.Owner)
	}
}

func Test_RunsRepo_CreateAndGetAllByProgram(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	repo := NewRunsRepo()

	progID := uuid.New()
	userID := uuid.New()

	res := minnow.Result{
		Output: []string{"42"},
	}

	created, err := repo.Create(ctx, dao.Run{ProgramID: progID, UserID: userID, Result: res})
	if !assert.NoError(err) {
		return
	}
	assert.NotEqual(uuid.Nil, created.ID)
	assert.False(created.Created.IsZero())

	_, err = repo.Create(ctx, dao.Run{ProgramID: progID, UserID: userID, Result: res})
	if !assert.NoError(err) {
		return
	}
	_, err = repo.Create(ctx, dao.Run{ProgramID: uuid.New(), UserID: userID, Result: res})
	if !assert.NoError(err) {
		return
	}

	runs, err := repo.GetAllByProgram(ctx, progID)
	assert.NoError(err)
	assert.Len(runs, 2)
	for _, r := range runs {
		assert.Equal(progID, r.ProgramID)
		assert.Equal([]string{"42"}, r.Result.Output)
	}
}

func Test_store_Close(t *testing.T) {
	assert := assert.New(t)

	s := NewDatastore()
	assert.NoError(s.Close())
}
