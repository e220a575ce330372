// Package repositories holds the MySQL-backed stores of the application
package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is violated
	ErrDuplicate = errors.New("duplicate record")
)

// mysqlDuplicateEntry is the server error number for a unique key violation
const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a MySQL unique key violation
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// likePattern escapes LIKE wildcards in term and wraps it for a substring match
func likePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(term) + "%"
}
