// Package token handles creation and validation of the JWTs used to
// authenticate clients with the Minnow server.
package token

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dekarrin/minnow/server/dao"
	"github.com/dekarrin/minnow/server/serr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	Issuer = "mns"
)

// Generate generates a JWT for the given user, signed with a key derived from
// secret and properties of the user record. Changing the user's password or
// logging out invalidates all previously issued tokens.
func Generate(secret []byte, u dao.User) (string, error) {
	claims := &jwt.MapClaims{
		"iss":        Issuer,
		"exp":        time.Now().Add(time.Hour).Unix(),
		"sub":        u.ID.String(),
		"authorized": true,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokStr, err := tok.SignedString(signingKey(secret, u))
	if err != nil {
		return "", err
	}

	return tokStr, nil
}

// Validate parses and validates tok and returns the user it was issued to.
// The user's current record is loaded from db to derive the signing key, so a
// token issued before the user's last password change or logout will fail
// validation.
func Validate(ctx context.Context, tok string, secret []byte, db dao.UserRepository) (dao.User, error) {
	var user dao.User

	_, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		subj, err := t.Claims.GetSubject()
		if err != nil {
			return nil, fmt.Errorf("cannot get subject: %w", err)
		}

		id, err := uuid.Parse(subj)
		if err != nil {
			return nil, fmt.Errorf("cannot parse subject UUID: %w", err)
		}

		user, err = db.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("cannot retrieve user: %w", err)
		}

		return signingKey(secret, user), nil
	}, jwt.WithValidMethods([]string{"HS512"}), jwt.WithIssuer(Issuer), jwt.WithLeeway(time.Minute))

	if err != nil {
		return dao.User{}, serr.New("invalid token", err, serr.ErrBadCredentials)
	}

	return user, nil
}

// Get retrieves the token from the Authorization header of req. It returns an
// error if the header is missing or is not a bearer token.
func Get(req *http.Request) (string, error) {
	scheme, tok, err := getAuthorization(req)
	if err != nil {
		return "", err
	}

	if scheme != "bearer" {
		return "", fmt.Errorf("unsupported authorization scheme: %q", scheme)
	}

	return tok, nil
}

func getAuthorization(req *http.Request) (scheme string, credentials string, err error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))

	if authHeader == "" {
		return "", "", fmt.Errorf("no authorization header present")
	}

	authParts := strings.SplitN(authHeader, " ", 2)
	if len(authParts) != 2 {
		return "", "", fmt.Errorf("authorization header not in form SCHEME CREDENTIALS")
	}

	return strings.ToLower(authParts[0]), strings.TrimSpace(authParts[1]), nil
}

// signingKey derives the HMAC key for a user's tokens. Tying the key to the
// password hash and last logout time makes both operations revoke any
// outstanding tokens.
func signingKey(secret []byte, u dao.User) []byte {
	key := make([]byte, len(secret))
	copy(key, secret)
	key = append(key, []byte(u.Password)...)
	key = append(key, []byte(fmt.Sprintf("%d", u.LastLogoutTime.Unix()))...)
	return key
}
