package mins

import (
	"context"
	"errors"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/serr"
	"github.com/google/uuid"
)

// GetAllPrograms returns all programs currently in persistence.
func (svc Service) GetAllPrograms(ctx context.Context) ([]dao.Program, error) {
	progs, err := svc.DB.Programs().GetAll(ctx)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return progs, nil
}

// GetProgramsByOwner returns all programs owned by the user with the given ID.
func (svc Service) GetProgramsByOwner(ctx context.Context, owner uuid.UUID) ([]dao.Program, error) {
	progs, err := svc.DB.Programs().GetAllByOwner(ctx, owner)
	if err != nil {
		return nil, serr.WrapDB("", err)
	}

	return progs, nil
}

// GetProgram returns the program with the given ID.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no program with that ID
// exists, it will match serr.ErrNotFound. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if there
// is an issue with one of the arguments, it will match serr.ErrBadArgument.
func (svc Service) GetProgram(ctx context.Context, id string) (dao.Program, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Program{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	p, err := svc.DB.Programs().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.ErrNotFound
		}
		return dao.Program{}, serr.WrapDB("could not get program", err)
	}

	return p, nil
}

// CreateProgram stores a new program with the given name and source, owned by
// the given user. The source is not checked for validity at storage time; a
// program that fails to parse can still be saved and its diagnostics are
// produced when it is run.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if one of
// the arguments is invalid, it will match serr.ErrBadArgument.
func (svc Service) CreateProgram(ctx context.Context, owner uuid.UUID, name, source string) (dao.Program, error) {
	if name == "" {
		return dao.Program{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}

	newProg := dao.Program{
		Owner:  owner,
		Name:   name,
		Source: source,
	}

	p, err := svc.DB.Programs().Create(ctx, newProg)
	if err != nil {
		if errors.Is(err, dao.ErrConstraintViolation) {
			return dao.Program{}, serr.ErrAlreadyExists
		}
		return dao.Program{}, serr.WrapDB("could not create program", err)
	}

	return p, nil
}

// UpdateProgram sets the name and source of the program with the given ID.
// Only the owner of a program (or an admin) may update it; callers enforce
// that with requester. Returns the updated program.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no program with the given
// ID exists, it will match serr.ErrNotFound. If the requester does not own the
// program, it will match serr.ErrPermissions. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if one of
// the arguments is invalid, it will match serr.ErrBadArgument.
func (svc Service) UpdateProgram(ctx context.Context, id string, requester dao.User, name, source string) (dao.Program, error) {
	if name == "" {
		return dao.Program{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Program{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	existing, err := svc.DB.Programs().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.ErrNotFound
		}
		return dao.Program{}, serr.WrapDB("", err)
	}

	if existing.Owner != requester.ID && requester.Role < dao.Admin {
		return dao.Program{}, serr.ErrPermissions
	}

	existing.Name = name
	existing.Source = source

	updated, err := svc.DB.Programs().Update(ctx, uuidID, existing)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.ErrNotFound
		}
		return dao.Program{}, serr.WrapDB("could not update program", err)
	}

	return updated, nil
}

// DeleteProgram deletes the program with the given ID along with all of its
// recorded runs. It returns the program just after it was deleted.
//
// The returned error, if non-nil, will return true for various calls to
// errors.Is depending on what caused the error. If no program with that ID
// exists, it will match serr.ErrNotFound. If the requester does not own the
// program, it will match serr.ErrPermissions. If the error occured due to an
// unexpected problem with the DB, it will match serr.ErrDB. Finally, if there
// is an issue with one of the arguments, it will match serr.ErrBadArgument.
func (svc Service) DeleteProgram(ctx context.Context, id string, requester dao.User) (dao.Program, error) {
	uuidID, err := uuid.Parse(id)
	if err != nil {
		return dao.Program{}, serr.New("ID is not valid", serr.ErrBadArgument)
	}

	existing, err := svc.DB.Programs().GetByID(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.ErrNotFound
		}
		return dao.Program{}, serr.WrapDB("", err)
	}

	if existing.Owner != requester.ID && requester.Role < dao.Admin {
		return dao.Program{}, serr.ErrPermissions
	}

	// remove recorded runs first so no run is left pointing at a program
	// that no longer exists.
	runs, err := svc.DB.Runs().GetAllByProgram(ctx, uuidID)
	if err != nil {
		return dao.Program{}, serr.WrapDB("could not list runs of program", err)
	}
	for _, r := range runs {
		if _, err := svc.DB.Runs().Delete(ctx, r.ID); err != nil && !errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.WrapDB("could not delete run of program", err)
		}
	}

	p, err := svc.DB.Programs().Delete(ctx, uuidID)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return dao.Program{}, serr.ErrNotFound
		}
		return dao.Program{}, serr.WrapDB("could not delete program", err)
	}

	return p, nil
}
