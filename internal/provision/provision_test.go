package provision

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlevine/mathdash/internal/roster"
	"github.com/mlevine/mathdash/internal/store"
)

func TestGeneratePassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pw := GeneratePassword()
		if len(pw) != PasswordLength {
			t.Fatalf("password %q has length %d, want %d", pw, len(pw), PasswordLength)
		}
		for _, c := range pw {
			isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			if !isAlnum {
				t.Fatalf("password %q contains non-alphanumeric %q", pw, c)
			}
		}
		seen[pw] = true
	}
	if len(seen) < 2 {
		t.Error("50 generated passwords should not all collide")
	}
}

func TestDefaultUsername(t *testing.T) {
	cases := map[string]string{
		"Jane Smith":     "janesmith",
		"Bob":            "bob",
		"Mary Ann Lee":   "maryannlee",
		"ALL CAPS NAME":  "allcapsname",
	}
	for in, want := range cases {
		if got := DefaultUsername(in); got != want {
			t.Errorf("DefaultUsername(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAll_SkipsExistingAccounts(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	ctx := context.Background()

	r, err := roster.Parse(strings.NewReader(
		"Student,8.EE.7\nJane Smith,0.5\nJohn Doe,0.6\nAmy Wu,0.7\n"))
	if err != nil {
		t.Fatal(err)
	}

	// Jane already has an account.
	if ok, msg := st.CreateUser(ctx, "janesmith", "existing", "Jane Smith"); !ok {
		t.Fatal(msg)
	}

	results, err := All(ctx, st, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 new accounts, got %d: %+v", len(results), results)
	}
	for _, res := range results {
		if res.Student == "Jane Smith" {
			t.Error("existing account should be skipped")
		}
		if !res.Created {
			t.Errorf("account for %s should be created: %s", res.Student, res.Message)
		}
		if res.Password == "" {
			t.Errorf("created account for %s should report its password", res.Student)
		}
		if ok, _ := st.Authenticate(ctx, res.Username, res.Password); !ok {
			t.Errorf("generated credentials for %s should authenticate", res.Student)
		}
	}

	// Second run is a no-op.
	results, err = All(ctx, st, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("second run should create nothing, got %+v", results)
	}
}
