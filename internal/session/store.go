package session

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"zahab/internal/domain"
)

// Store persists the admin bearer token and identity per browser session.
// This sqlite file is the app's only durable storage; business data never
// lands here.
type Store struct {
	db *sqlx.DB
}

func OpenStore(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS admin_sessions(
  sid        TEXT PRIMARY KEY,
  token      TEXT NOT NULL,
  username   TEXT NOT NULL,
  role       TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

type Record struct {
	SID      string `db:"sid"`
	Token    string `db:"token"`
	Username string `db:"username"`
	Role     string `db:"role"`
}

func (s *Store) Save(sid, token string, user domain.AdminUser) error {
	_, err := s.db.Exec(`
		INSERT INTO admin_sessions(sid, token, username, role, updated_at)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(sid) DO UPDATE SET
		  token=excluded.token, username=excluded.username, role=excluded.role,
		  updated_at=CURRENT_TIMESTAMP
	`, sid, token, user.Username, user.Role)
	return err
}

// Load returns nil without error when the session has no stored login.
func (s *Store) Load(sid string) (*Record, error) {
	var r Record
	err := s.db.Get(&r, `SELECT sid, token, username, role FROM admin_sessions WHERE sid=?`, sid)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Clear(sid string) error {
	_, err := s.db.Exec(`DELETE FROM admin_sessions WHERE sid=?`, sid)
	return err
}

func (s *Store) Close() error { return s.db.Close() }
