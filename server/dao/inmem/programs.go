package inmem

import (
	"context"
	"fmt"
	"time"

	"github.com/dekarrin/minnow/internal/util"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
)

func NewProgramsRepo() *ProgramsRepo {
	return &ProgramsRepo{
		programs: make(map[uuid.UUID]dao.Program),
	}
}

type ProgramsRepo struct {
	programs map[uuid.UUID]dao.Program
}

func (repo *ProgramsRepo) Close() error {
	return nil
}

func (repo *ProgramsRepo) Create(ctx context.Context, p dao.Program) (dao.Program, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Program{}, fmt.Errorf("could not generate ID: %w", err)
	}

	p.ID = newUUID

	now := time.Now()
	p.Created = now
	p.Modified = now

	repo.programs[p.ID] = p

	return p, nil
}

func (repo *ProgramsRepo) GetAll(ctx context.Context) ([]dao.Program, error) {
	all := make([]dao.Program, 0, len(repo.programs))

	for k := range repo.programs {
		all = append(all, repo.programs[k])
	}

	all = util.SortBy(all, func(l, r dao.Program) bool {
		return l.ID.String() < r.ID.String()
	})

	return all, nil
}

func (repo *ProgramsRepo) GetAllByOwner(ctx context.Context, owner uuid.UUID) ([]dao.Program, error) {
	var owned []dao.Program

	for k := range repo.programs {
		if repo.programs[k].Owner == owner {
			owned = append(owned, repo.programs[k])
		}
	}

	owned = util.SortBy(owned, func(l, r dao.Program) bool {
		return l.ID.String() < r.ID.String()
	})

	return owned, nil
}

func (repo *ProgramsRepo) GetByID(ctx context.Context, id uuid.UUID) (dao.Program, error) {
	p, ok := repo.programs[id]
	if !ok {
		return dao.Program{}, dao.ErrNotFound
	}

	return p, nil
}

func (repo *ProgramsRepo) Update(ctx context.Context, id uuid.UUID, p dao.Program) (dao.Program, error) {
	existing, ok := repo.programs[id]
	if !ok {
		return dao.Program{}, dao.ErrNotFound
	}

	if p.ID != id {
		if _, ok := repo.programs[p.ID]; ok {
			return dao.Program{}, dao.ErrConstraintViolation
		}
	}

	p.Created = existing.Created
	p.Modified = time.Now()

	repo.programs[p.ID] = p
	if p.ID != id {
		delete(repo.programs, id)
	}

	return p, nil
}

func (repo *ProgramsRepo) Delete(ctx context.Context, id uuid.UUID) (dao.Program, error) {
	p, ok := repo.programs[id]
	if !ok {
		return dao.Program{}, dao.ErrNotFound
	}

	delete(repo.programs, id)

	return p, nil
}
