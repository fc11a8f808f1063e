// Package mins has services for interacting with the Minnow server backend
// decoupled from the API that accesses it.
package mins

import (
	"github.com/dekarrin/minnow/server/dao"
	"golang.org/x/text/unicode/norm"
)

// Service is a service for interacting with and modifying the Minnow server
// backend. It performs the actions requested and makes calls to server
// persistence to preserve the backend state.
//
// The zero-value of Service is not ready to be used; assign a valid DAO store
// to DB before attempting to use it.
type Service struct {

	// DB is the persistence store of the service.
	DB dao.Store
}

// normalizeUsername puts a username into NFC form so that visually identical
// names cannot refer to distinct accounts.
func normalizeUsername(username string) string {
	return norm.NFC.String(username)
}
