package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const userColumns = `id, username, email, password_hash, role, is_active, created_at`

func scanUser(r row) (*User, error) {
	var u User
	if err := r.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts an active account. A username or email that is already taken
// fails with ErrDuplicateUsername or ErrDuplicateEmail.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash, role string) (*User, error) {
	return insertUser(ctx, db.exec, username, email, passwordHash, role)
}

// CreateUserAudited inserts an account and its admin log entry in one transaction.
func (db *DB) CreateUserAudited(ctx context.Context, username, email, passwordHash, role string, entry AuditEntry) (*User, error) {
	var u *User
	err := db.inTx(ctx, func(exec execFunc) error {
		var err error
		if u, err = insertUser(ctx, exec, username, email, passwordHash, role); err != nil {
			return err
		}
		_, err = insertAdminLog(ctx, exec, entry)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func insertUser(ctx context.Context, exec execFunc, username, email, passwordHash, role string) (*User, error) {
	if role == "" {
		role = RoleUser
	}
	u := &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now(),
	}
	_, err := exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", uniqueViolation(err))
	}
	return u, nil
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by exact (case-sensitive) email
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(db.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("user with email %q: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// CheckEmailExists reports whether an account uses email
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	n, err := db.count(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

// CheckUsernameExists reports whether an account uses username
func (db *DB) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	n, err := db.count(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return n > 0, nil
}

// ListUsers returns all accounts, oldest first
func (db *DB) ListUsers(ctx context.Context) ([]User, error) {
	rs, err := db.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rs.Close()

	users := []User{}
	for rs.Next() {
		u, err := scanUser(rs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rs.Err()
}

// SetUserActive sets the is_active flag
func (db *DB) SetUserActive(ctx context.Context, id uuid.UUID, active bool) error {
	n, err := db.exec(ctx, `UPDATE users SET is_active = ? WHERE id = ?`, active, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateUserCredentials replaces the password hash and role of an account
func (db *DB) UpdateUserCredentials(ctx context.Context, id uuid.UUID, passwordHash, role string) error {
	n, err := db.exec(ctx,
		`UPDATE users SET password_hash = ?, role = ?, is_active = ? WHERE id = ?`,
		passwordHash, role, true, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update user credentials: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteUser deletes a user and everything they own (via cascade)
func (db *DB) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return deleteUser(ctx, db.exec, id)
}

// DeleteUserAudited deletes an account and records entry in one transaction. Nothing
// is logged when the user does not exist.
func (db *DB) DeleteUserAudited(ctx context.Context, id uuid.UUID, entry AuditEntry) error {
	return db.inTx(ctx, func(exec execFunc) error {
		if err := deleteUser(ctx, exec, id); err != nil {
			return err
		}
		_, err := insertAdminLog(ctx, exec, entry)
		return err
	})
}

func deleteUser(ctx context.Context, exec execFunc, id uuid.UUID) error {
	n, err := exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
