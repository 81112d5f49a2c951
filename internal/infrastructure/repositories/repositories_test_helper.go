package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT,
		image TEXT,
		bio TEXT,
		portfolio_links TEXT,
		role TEXT,
		email_verified BOOLEAN,
		onboarded BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE skills (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		verified BOOLEAN,
		method TEXT,
		badge TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (user_id, name)
	);`)
	mustExec(t, db, `CREATE TABLE email_verifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		verified_at DATETIME,
		created_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProjectTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		creator_id TEXT NOT NULL,
		tech_stack TEXT,
		status TEXT NOT NULL DEFAULT 'open',
		team_id TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE roles (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		position INTEGER,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		role_id TEXT NOT NULL,
		applicant_id TEXT NOT NULL,
		cover_letter TEXT,
		created_at DATETIME,
		UNIQUE (role_id, applicant_id)
	);`)
}

func createTeamTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		project_id TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		position INTEGER,
		created_at DATETIME,
		UNIQUE (team_id, user_id)
	);`)
}

func createTaskTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		board_column TEXT NOT NULL DEFAULT 'To Do',
		assignee_id TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMessageTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		channel TEXT NOT NULL DEFAULT 'general',
		content TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		content TEXT NOT NULL,
		link TEXT,
		read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}
