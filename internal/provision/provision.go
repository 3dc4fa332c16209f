// Package provision holds the account-management operations shared by
// the admin screen and the admin CLI.
package provision

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/mlevine/mathdash/internal/roster"
	"github.com/mlevine/mathdash/internal/store"
)

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PasswordLength is the length of generated initial passwords.
const PasswordLength = 8

// GeneratePassword returns a random alphanumeric password.
func GeneratePassword() string {
	var b strings.Builder
	for i := 0; i < PasswordLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordChars))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; treat it as unrecoverable.
			panic(err)
		}
		b.WriteByte(passwordChars[n.Int64()])
	}
	return b.String()
}

// DefaultUsername derives a login name from a student name: lowercase
// with spaces removed.
func DefaultUsername(student string) string {
	return strings.ToLower(strings.ReplaceAll(student, " ", ""))
}

// Result is one row of a bulk provisioning run.
type Result struct {
	Student  string
	Username string
	Password string
	Created  bool
	Message  string
}

// All creates accounts for every roster student who does not have one
// yet, each with a freshly generated password. Existing accounts are
// left untouched.
func All(ctx context.Context, st *store.Store, r *roster.Roster) ([]Result, error) {
	withAccounts, err := st.StudentsWithAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, student := range r.Students() {
		if withAccounts[student] {
			continue
		}
		username := DefaultUsername(student)
		password := GeneratePassword()

		ok, message := st.CreateUser(ctx, username, password, student)
		res := Result{
			Student:  student,
			Username: username,
			Password: password,
			Created:  ok,
		}
		if !ok {
			res.Password = ""
			res.Message = message
		}
		results = append(results, res)
	}
	return results, nil
}
