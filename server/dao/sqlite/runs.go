package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
)

type RunsDB struct {
	db *sql.DB
}

func (repo *RunsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT NOT NULL PRIMARY KEY,
		program_id TEXT NOT NULL REFERENCES programs(id) ON DELETE CASCADE ON UPDATE CASCADE,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE,
		result TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (repo *RunsDB) Create(ctx context.Context, r dao.Run) (dao.Run, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Run{}, fmt.Errorf("could not generate ID: %w", err)
	}

	_, err = repo.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, program_id, user_id, result, created) VALUES (?, ?, ?, ?, ?)`,
		convertToDB_UUID(newUUID),
		convertToDB_UUID(r.ProgramID),
		convertToDB_UUID(r.UserID),
		convertToDB_Result(r.Result),
		convertToDB_Time(time.Now()),
	)
	if err != nil {
		return dao.Run{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *RunsDB) GetAllByProgram(ctx context.Context, programID uuid.UUID) ([]dao.Run, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, program_id, user_id, result, created FROM runs WHERE program_id = ? ORDER BY created, id;`,
		convertToDB_UUID(programID),
	)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Run

	for rows.Next() {
		r, err := scanRun(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, r)
	}

	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func (repo *RunsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, program_id, user_id, result, created FROM runs WHERE id = ?;`,
		convertToDB_UUID(id),
	)
	return scanRun(row.Scan)
}

func (repo *RunsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return existing, err
	}

	_, err = repo.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?;`, convertToDB_UUID(id))
	if err != nil {
		return existing, wrapDBError(err)
	}

	return existing, nil
}

func scanRun(scan func(...interface{}) error) (dao.Run, error) {
	var r dao.Run
	var id string
	var programID string
	var userID string
	var result string
	var created int64

	err := scan(
		&id,
		&programID,
		&userID,
		&result,
		&created,
	)
	if err != nil {
		return dao.Run{}, wrapDBError(err)
	}

	err = convertFromDB_UUID(id, &r.ID)
	if err != nil {
		return dao.Run{}, fmt.Errorf("stored UUID %q is invalid: %w", id, err)
	}
	err = convertFromDB_UUID(programID, &r.ProgramID)
	if err != nil {
		return dao.Run{}, fmt.Errorf("stored program UUID %q is invalid: %w", programID, err)
	}
	err = convertFromDB_UUID(userID, &r.UserID)
	if err != nil {
		return dao.Run{}, fmt.Errorf("stored user UUID %q is invalid: %w", userID, err)
	}
	err = convertFromDB_Result(result, &r.Result)
	if err != nil {
		return dao.Run{}, fmt.Errorf("stored run result is invalid: %w", err)
	}
	convertFromDB_Time(created, &r.Created)

	return r, nil
}
