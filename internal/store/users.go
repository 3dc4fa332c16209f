package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// User is a student login record. Passwords are stored as entered;
// credential hardening is out of scope for this tool.
type User struct {
	Username    string
	Password    string
	StudentName string
	CreatedAt   time.Time
}

// CreateUser provisions a login for a student. Returns ok=false with a
// human-readable message when the username is already taken.
func (s *Store) CreateUser(ctx context.Context, username, password, studentName string) (bool, string) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM users WHERE username = ?", username).Scan(&exists)
	if err != nil {
		return false, fmt.Sprintf("Error creating user: %v", err)
	}
	if exists > 0 {
		return false, "Username already exists"
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (username, password, student_name, created_at) VALUES (?, ?, ?, ?)",
		username, password, studentName, time.Now().UTC())
	if err != nil {
		return false, fmt.Sprintf("Error creating user: %v", err)
	}
	return true, "User created successfully"
}

// Authenticate checks a username/password pair. On success it returns
// ok=true and the student name the login is bound to.
func (s *Store) Authenticate(ctx context.Context, username, password string) (bool, string) {
	var stored, studentName string
	err := s.db.QueryRowContext(ctx,
		"SELECT password, student_name FROM users WHERE username = ?", username).
		Scan(&stored, &studentName)
	if err == sql.ErrNoRows {
		return false, ""
	}
	if err != nil {
		return false, ""
	}
	if stored != password {
		return false, ""
	}
	return true, studentName
}

// ResetPassword replaces a user's password. Returns ok=false with a
// message when the user does not exist.
func (s *Store) ResetPassword(ctx context.Context, username, newPassword string) (bool, string) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE users SET password = ? WHERE username = ?", newPassword, username)
	if err != nil {
		return false, fmt.Sprintf("Error resetting password: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Sprintf("Error resetting password: %v", err)
	}
	if affected == 0 {
		return false, "User does not exist"
	}
	return true, "Password reset successfully"
}

// StudentsWithAccounts returns the set of student names that have at
// least one login.
func (s *Store) StudentsWithAccounts(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT student_name FROM users")
	if err != nil {
		return nil, fmt.Errorf("list students with accounts: %w", err)
	}
	defer rows.Close()

	students := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		students[name] = true
	}
	return students, rows.Err()
}

// ListUsers returns all user records ordered by username.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT username, password, student_name, created_at FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.Password, &u.StudentName, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
