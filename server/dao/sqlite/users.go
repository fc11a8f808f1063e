package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/google/uuid"
)

type UsersDB struct {
	db *sql.DB
}

func (repo *UsersDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL,
		last_logout_time INTEGER NOT NULL,
		last_login_time INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (repo *UsersDB) Create(ctx context.Context, user dao.User) (dao.User, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("could not generate ID: %w", err)
	}

	now := time.Now()
	_, err = repo.db.ExecContext(
		ctx,
		`INSERT INTO users (id, username, password, role, email, created, modified, last_logout_time, last_login_time) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		convertToDB_UUID(newUUID),
		user.Username,
		user.Password,
		convertToDB_Role(user.Role),
		convertToDB_Email(user.Email),
		convertToDB_Time(now),
		convertToDB_Time(now),
		convertToDB_Time(now),
		convertToDB_Time(time.Time{}),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *UsersDB) GetAll(ctx context.Context) ([]dao.User, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.User

	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, user)
	}

	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func (repo *UsersDB) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	// deliberately not updating created
	res, err := repo.db.ExecContext(ctx, `UPDATE users SET id=?, username=?, password=?, role=?, email=?, last_logout_time=?, last_login_time=?, modified=? WHERE id=?;`,
		convertToDB_UUID(user.ID),
		user.Username,
		user.Password,
		convertToDB_Role(user.Role),
		convertToDB_Email(user.Email),
		convertToDB_Time(user.LastLogoutTime),
		convertToDB_Time(user.LastLoginTime),
		convertToDB_Time(time.Now()),
		convertToDB_UUID(id),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.User{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, user.ID)
}

func (repo *UsersDB) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users WHERE id = ?;`,
		convertToDB_UUID(id),
	)
	return scanUser(row.Scan)
}

func (repo *UsersDB) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users WHERE username = ?;`,
		username,
	)
	return scanUser(row.Scan)
}

func (repo *UsersDB) Delete(ctx context.Context, id uuid.UUID) (dao.User, error) {
	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return existing, err
	}

	_, err = repo.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, convertToDB_UUID(id))
	if err != nil {
		return existing, wrapDBError(err)
	}

	return existing, nil
}

// scanUser reads one users row via the given scan function and converts the
// stored column formats back into a dao.User.
func scanUser(scan func(...interface{}) error) (dao.User, error) {
	var user dao.User
	var id string
	var role string
	var email string
	var created int64
	var modified int64
	var logoutTime int64
	var loginTime int64

	err := scan(
		&id,
		&user.Username,
		&user.Password,
		&role,
		&email,
		&created,
		&modified,
		&logoutTime,
		&loginTime,
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	err = convertFromDB_UUID(id, &user.ID)
	if err != nil {
		return dao.User{}, fmt.Errorf("stored UUID %q is invalid: %w", id, err)
	}
	err = convertFromDB_Role(role, &user.Role)
	if err != nil {
		return dao.User{}, fmt.Errorf("stored role %q is invalid: %w", role, err)
	}
	err = convertFromDB_Email(email, &user.Email)
	if err != nil {
		return dao.User{}, fmt.Errorf("stored email %q is invalid: %w", email, err)
	}
	convertFromDB_Time(created, &user.Created)
	convertFromDB_Time(modified, &user.Modified)
	convertFromDB_Time(logoutTime, &user.LastLogoutTime)
	convertFromDB_Time(loginTime, &user.LastLoginTime)

	return user, nil
}
