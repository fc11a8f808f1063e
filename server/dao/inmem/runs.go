package inmem

import (
	"context"
	"fmt"
	"time"

	"github.com/dekarrin/minnow/internal/util"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
)

func NewRunsRepo() *RunsRepo {
	return &RunsRepo{
		runs: make(map[uuid.UUID]dao.Run),
	}
}

type RunsRepo struct {
	runs map[uuid.UUID]dao.Run
}

func (repo *RunsRepo) Close() error {
	return nil
}

func (repo *RunsRepo) Create(ctx context.Context, r dao.Run) (dao.Run, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Run{}, fmt.Errorf("could not generate ID: %w", err)
	}

	r.ID = newUUID
	r.Created = time.Now()

	repo.runs[r.ID] = r

	return r, nil
}

func (repo *RunsRepo) GetAllByProgram(ctx context.Context, programID uuid.UUID) ([]dao.Run, error) {
	var all []dao.Run

	for k := range repo.runs {
		if repo.runs[k].ProgramID == programID {
			all = append(all, repo.runs[k])
		}
	}

	all = util.SortBy(all, func(l, r dao.Run) bool {
		if l.Created.Equal(r.Created) {
			return l.ID.String() < r.ID.String()
		}
		return l.Created.Before(r.Created)
	})

	return all, nil
}

func (repo *RunsRepo) GetByID(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	r, ok := repo.runs[id]
	if !ok {
		return dao.Run{}, dao.ErrNotFound
	}

	return r, nil
}

func (repo *RunsRepo) Delete(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	r, ok := repo.runs[id]
	if !ok {
		return dao.Run{}, dao.ErrNotFound
	}

	delete(repo.runs, id)

	return r, nil
}
