package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
)

type ProgramsDB struct {
	db *sql.DB
}

func (repo *ProgramsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS programs (
		id TEXT NOT NULL PRIMARY KEY,
		owner TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE,
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (repo *ProgramsDB) Create(ctx context.Context, p dao.Program) (dao.Program, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Program{}, fmt.Errorf("could not generate ID: %w", err)
	}

	now := time.Now()
	_, err = repo.db.ExecContext(
		ctx,
		`INSERT INTO programs (id, owner, name, source, created, modified) VALUES (?, ?, ?, ?, ?, ?)`,
		convertToDB_UUID(newUUID),
		convertToDB_UUID(p.Owner),
		p.Name,
		p.Source,
		convertToDB_Time(now),
		convertToDB_Time(now),
	)
	if err != nil {
		return dao.Program{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *ProgramsDB) GetAll(ctx context.Context) ([]dao.Program, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, owner, name, source, created, modified FROM programs ORDER BY id;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	return collectPrograms(rows)
}

func (repo *ProgramsDB) GetAllByOwner(ctx context.Context, owner uuid.UUID) ([]dao.Program, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, owner, name, source, created, modified FROM programs WHERE owner = ? ORDER BY id;`,
		convertToDB_UUID(owner),
	)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	return collectPrograms(rows)
}

func (repo *ProgramsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Program, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, owner, name, source, created, modified FROM programs WHERE id = ?;`,
		convertToDB_UUID(id),
	)
	return scanProgram(row.Scan)
}

func (repo *ProgramsDB) Update(ctx context.Context, id uuid.UUID, p dao.Program) (dao.Program, error) {
	// deliberately not updating created
	res, err := repo.db.ExecContext(ctx, `UPDATE programs SET id=?, owner=?, name=?, source=?, modified=? WHERE id=?;`,
		convertToDB_UUID(p.ID),
		convertToDB_UUID(p.Owner),
		p.Name,
		p.Source,
		convertToDB_Time(time.Now()),
		convertToDB_UUID(id),
	)
	if err != nil {
		return dao.Program{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.Program{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.Program{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, p.ID)
}

func (repo *ProgramsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Program, error) {
	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return existing, err
	}

	_, err = repo.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?;`, convertToDB_UUID(id))
	if err != nil {
		return existing, wrapDBError(err)
	}

	return existing, nil
}

func collectPrograms(rows *sql.Rows) ([]dao.Program, error) {
	var all []dao.Program

	for rows.Next() {
		p, err := scanProgram(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, p)
	}

	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func scanProgram(scan func(...interface{}) error) (dao.Program, error) {
	var p dao.Program
	var id string
	var owner string
	var created int64
	var modified int64

	err := scan(
		&id,
		&owner,
		&p.Name,
		&p.Source,
		&created,
		&modified,
	)
	if err != nil {
		return dao.Program{}, wrapDBError(err)
	}

	err = convertFromDB_UUID(id, &p.ID)
	if err != nil {
		return dao.Program{}, fmt.Errorf("stored UUID %q is invalid: %w", id, err)
	}
	err = convertFromDB_UUID(owner, &p.Owner)
	if err != nil {
		return dao.Program{}, fmt.Errorf("stored owner UUID %q is invalid: %w", owner, err)
	}
	convertFromDB_Time(created, &p.Created)
	convertFromDB_Time(modified, &p.Modified)

	return p, nil
}
