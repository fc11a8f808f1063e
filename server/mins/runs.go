package mins

import (
	"context"
	"errors"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/serr"
	"github.com/google/uuid"
)

// RunProgram executes the stored program with the given ID and records the
// outcome as a new Run. The program's full output and diagnostics are captured
// in the returned Run; a program whose execution produces errors is still a
// successfully recorded run.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no program with the given
// ID exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if there
// is an issue with one of the arguments, it will match serr.ErrBadArgument.
func (svc Service) RunProgram(ctx context.Context, id string, requester dao.User) (dao.Run, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Run{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	p, err := svc.DB.Programs().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Run{}, serr.ErrNotFound
		}
		return dao.Run{}, serr.WrapDB("could not get program", err)
	}

	// each run gets a fresh interpreter so stored programs cannot see
	// variables from prior runs.
	res := minnow.New().Exec(p.Source)

	newRun := dao.Run{
		ProgramID: p.ID,
		UserID:    requester.ID,
		Result:    res,
	}

	r, err := svc.DB.Runs().Create(ctx, newRun)
	if err != nil {
		return dao.Run{}, serr.WrapDB("could not record run", err)
	}

	return r, nil
}

// ExecSource executes ad-hoc source text without persisting anything. The
// result carries the program output and any diagnostics.
func (svc Service) ExecSource(ctx context.Context, source string) (minnow.Result, error) {
	return minnow.New().Exec(source), nil
}

// GetRun returns the recorded run with the given ID.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no run with that ID exists,
// it will match serr.ErrNotFound. If the error occured due to an unexpected
// problem with the DB, it will match serr.ErrDB. Finally, if there is an issue
// with one of the arguments, it will match serr.ErrBadArgument.
func (svc Service) GetRun(ctx context.Context, id string) (dao.Run, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Run{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	r, err := svc.DB.Runs().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Run{}, serr.ErrNotFound
		}
		return dao.Run{}, serr.WrapDB("could not get run", err)
	}

	return r, nil
}

// GetRunsForProgram returns all recorded runs of the program with the given
// ID, oldest first.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no program with that ID
// exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if there
// is an issue with one of the arguments, it will match serr.ErrBadArgument.
func (svc Service) GetRunsForProgram(ctx context.Context, programID string) ([]dao.Run, error) {
	uuidID, err := uuid.Parse(programID)
	if err != nil {
		return nil, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	if _, err := svc.DB.Programs().GetByID(ctx, uuidID); err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, serr.ErrNotFound
		}
		return nil, serr.WrapDB("could not get program", err)
	}

	runs, err := svc.DB.Runs().GetAllByProgram(ctx, uuidID)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return runs, nil
}
