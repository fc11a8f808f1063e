package sqlite

// conversion between DB-stored column formats and the entity field types.
// UUIDs and roles are stored as TEXT, times as Unix-seconds INTEGER, and run
// results as base64'd binary-encoded TEXT.

import (
	"encoding/base64"
	"fmt"
	"net/mail"
	"time"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

func convertToDB_UUID(u uuid.UUID) string {
	return u.String()
}

func convertFromDB_UUID(s string, recv *uuid.UUID) error {
	var err error
	*recv, err = uuid.Parse(s)
	return err
}

func convertToDB_Time(t time.Time) int64 {
	return t.Unix()
}

func convertFromDB_Time(i int64, recv *time.Time) error {
	*recv = time.Unix(i, 0)
	return nil
}

func convertToDB_Email(e *mail.Address) string {
	if e == nil {
		return ""
	}
	return e.Address
}

func convertFromDB_Email(s string, recv **mail.Address) error {
	if s == "" {
		*recv = nil
		return nil
	}

	email, err := mail.ParseAddress(s)
	if err != nil {
		return err
	}

	*recv = email
	return nil
}

func convertToDB_Role(r dao.Role) string {
	return r.String()
}

func convertFromDB_Role(s string, recv *dao.Role) error {
	var err error
	*recv, err = dao.ParseRole(s)
	return err
}

func convertToDB_Result(r minnow.Result) string {
	return base64.StdEncoding.EncodeToString(rezi.EncBinary(r))
}

func convertFromDB_Result(s string, recv *minnow.Result) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("result is not valid base64: %w", err)
	}

	_, err = rezi.DecBinary(data, recv)
	if err != nil {
		return fmt.Errorf("result could not be decoded: %w", err)
	}

	return nil
}
