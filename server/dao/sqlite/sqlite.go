// Package sqlite provides a Store implementation backed by a SQLite database
// file on disk, using the pure-Go driver from modernc.org.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dekarrin/minnow/server/dao"
	"modernc.org/sqlite"
)

type store struct {
	dbFilename string

	db *sql.DB

	users    *UsersDB
	programs *ProgramsDB
	runs     *RunsDB
}

func NewDatastore(storageDir string) (dao.Store, error) {
	st := &store{
		dbFilename: "data.db",
	}

	fileName := filepath.Join(storageDir, st.dbFilename)

	var err error
	st.db, err = sql.Open("sqlite", fileName)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st.users = &UsersDB{db: st.db}
	if err := st.users.init(); err != nil {
		return nil, err
	}

	st.programs = &ProgramsDB{db: st.db}
	if err := st.programs.init(); err != nil {
		return nil, err
	}

	st.runs = &RunsDB{db: st.db}
	if err := st.runs.init(); err != nil {
		return nil, err
	}

	return st, nil
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
	err := s.db.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", s.dbFilename, err)
	}
	return nil
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return dao.ErrConstraintViolation
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}
