package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	ok, msg := st.CreateUser(ctx, "jsmith", "pw123", "Jane Smith")
	require.True(t, ok, msg)
	require.Equal(t, "User created successfully", msg)

	ok, student := st.Authenticate(ctx, "jsmith", "pw123")
	require.True(t, ok)
	require.Equal(t, "Jane Smith", student)

	ok, _ = st.Authenticate(ctx, "jsmith", "wrong")
	require.False(t, ok)

	ok, _ = st.Authenticate(ctx, "nobody", "pw123")
	require.False(t, ok)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	ok, _ := st.CreateUser(ctx, "jsmith", "pw1", "Jane Smith")
	require.True(t, ok)

	ok, msg := st.CreateUser(ctx, "jsmith", "pw2", "John Smith")
	require.False(t, ok)
	require.Equal(t, "Username already exists", msg)
}

func TestResetPassword(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	ok, _ := st.CreateUser(ctx, "jsmith", "old", "Jane Smith")
	require.True(t, ok)

	ok, msg := st.ResetPassword(ctx, "jsmith", "new")
	require.True(t, ok)
	require.Equal(t, "Password reset successfully", msg)

	ok, _ = st.Authenticate(ctx, "jsmith", "old")
	require.False(t, ok)
	ok, _ = st.Authenticate(ctx, "jsmith", "new")
	require.True(t, ok)

	ok, msg = st.ResetPassword(ctx, "ghost", "x")
	require.False(t, ok)
	require.Equal(t, "User does not exist", msg)
}

func TestStudentsWithAccounts(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	st.CreateUser(ctx, "a", "pw", "Alice Adams")
	st.CreateUser(ctx, "b", "pw", "Bob Brown")

	students, err := st.StudentsWithAccounts(ctx)
	require.NoError(t, err)
	require.True(t, students["Alice Adams"])
	require.True(t, students["Bob Brown"])
	require.False(t, students["Carol Clark"])
}

func TestAppendAndListResults(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, r := range []PracticeResult{
		{Student: "Alice Adams", Standard: "8.EE.7", QuestionText: "q1", UserAnswer: "4", CorrectAnswer: "4", IsCorrect: true},
		{Student: "Alice Adams", Standard: "8.F.3", QuestionText: "q2", UserAnswer: "2", CorrectAnswer: "3", IsCorrect: false},
		{Student: "Bob Brown", Standard: "8.EE.7", QuestionText: "q3", UserAnswer: "x", CorrectAnswer: "x", IsCorrect: true},
	} {
		require.NoError(t, st.AppendResult(ctx, r))
	}

	all, err := st.ListResults(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, r := range all {
		require.NotEmpty(t, r.ID, "append should assign an id")
		require.False(t, r.Timestamp.IsZero(), "append should assign a timestamp")
	}

	alice, err := st.ListResults(ctx, "Alice Adams", 0)
	require.NoError(t, err)
	require.Len(t, alice, 2)

	limited, err := st.ListResults(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestAppendLLMRequest(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	err := st.AppendLLMRequest(ctx, LLMRequestData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    420,
		Success:      true,
	})
	require.NoError(t, err)

	var count int
	err = st.DB().QueryRowContext(ctx, "SELECT COUNT(1) FROM llm_requests").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
