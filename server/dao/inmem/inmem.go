// Package inmem provides a Store implementation backed entirely by in-memory
// maps. It is intended for testing and for running a throwaway server; data
// does not survive the process.
package inmem

import (
	"fmt"

	"github.com/dekarrin/minnow/server/dao"
)

type store struct {
	users    *UsersRepo
	programs *ProgramsRepo
	runs     *RunsRepo
}

func NewDatastore() dao.Store {
	return &store{
		users:    NewUsersRepo(),
		programs: NewProgramsRepo(),
		runs:     NewRunsRepo(),
	}
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Programs() dao.ProgramRepository {
	return s.programs
}

func (s *store) Runs() dao.RunRepository {
	return s.runs
}

func (s *store) Close() error {
	var err error

	for _, nextErr := range []error{s.users.Close(), s.programs.Close(), s.runs.Close()} {
		if nextErr != nil {
			if err != nil {
				err = fmt.Errorf("%s\nadditionally, %w", err, nextErr)
			} else {
				err = nextErr
			}
		}
	}

	return err
}
