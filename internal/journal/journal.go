package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id  TEXT PRIMARY KEY,
	hour        INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decisions (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id      TEXT NOT NULL,
	kind            TEXT NOT NULL,
	avg_attention   REAL,
	session_minutes REAL,
	should_break    INTEGER,
	break_minutes   REAL,
	query_json      TEXT,
	created_at      TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region types

// Decision kinds stored in the decisions table.
const (
	KindBreakCheck = "break_check"
	KindQuery      = "query"
)

// BreakCheck is one recorded guardrail verdict.
type BreakCheck struct {
	SessionID      string
	AvgAttention   float64
	SessionMinutes float64
	ShouldBreak    bool
	BreakMinutes   float64
	CreatedAt      time.Time
}

// QueryRecord is one recorded generated query.
type QueryRecord struct {
	SessionID string
	Tokens    []string
	CreatedAt time.Time
}

// #endregion types

// #region journal

// Journal persists per-session guardrail verdicts and generated queries in
// SQLite. Diagnostics only — the engine and guardrail never read it back.
type Journal struct {
	db *sql.DB
}

// Open opens (or creates) the journal database and runs migrations.
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// #endregion journal

// #region write

// BeginSession registers a new viewing session and returns its ID.
func (j *Journal) BeginSession(hour int) (string, error) {
	id := uuid.New().String()
	_, err := j.db.Exec(
		`INSERT INTO sessions (session_id, hour, created_at) VALUES (?, ?, ?)`,
		id, hour, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// LogBreakCheck records one guardrail verdict for the session.
func (j *Journal) LogBreakCheck(c BreakCheck) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := j.db.Exec(
		`INSERT INTO decisions (session_id, kind, avg_attention, session_minutes, should_break, break_minutes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.SessionID, KindBreakCheck, c.AvgAttention, c.SessionMinutes,
		boolToInt(c.ShouldBreak), c.BreakMinutes,
		c.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log break check: %w", err)
	}
	return nil
}

// LogQuery records one generated query for the session.
func (j *Journal) LogQuery(sessionID string, tokens []string) error {
	payload, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}
	_, err = j.db.Exec(
		`INSERT INTO decisions (session_id, kind, query_json, created_at)
		 VALUES (?, ?, ?, ?)`,
		sessionID, KindQuery, string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log query: %w", err)
	}
	return nil
}

// #endregion write

// #region read

// BreakChecks returns all recorded verdicts for a session, oldest first.
func (j *Journal) BreakChecks(sessionID string) ([]BreakCheck, error) {
	rows, err := j.db.Query(
		`SELECT avg_attention, session_minutes, should_break, break_minutes, created_at
		 FROM decisions WHERE session_id = ? AND kind = ? ORDER BY id ASC`,
		sessionID, KindBreakCheck,
	)
	if err != nil {
		return nil, fmt.Errorf("query break checks: %w", err)
	}
	defer rows.Close()

	var checks []BreakCheck
	for rows.Next() {
		c := BreakCheck{SessionID: sessionID}
		var shouldBreak int
		var createdAt string
		if err := rows.Scan(&c.AvgAttention, &c.SessionMinutes, &shouldBreak, &c.BreakMinutes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan break check: %w", err)
		}
		c.ShouldBreak = shouldBreak != 0
		c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate break checks: %w", err)
	}
	return checks, nil
}

// Queries returns all recorded queries for a session, oldest first.
func (j *Journal) Queries(sessionID string) ([]QueryRecord, error) {
	rows, err := j.db.Query(
		`SELECT query_json, created_at FROM decisions
		 WHERE session_id = ? AND kind = ? ORDER BY id ASC`,
		sessionID, KindQuery,
	)
	if err != nil {
		return nil, fmt.Errorf("query queries: %w", err)
	}
	defer rows.Close()

	var records []QueryRecord
	for rows.Next() {
		r := QueryRecord{SessionID: sessionID}
		var payload string
		var createdAt string
		if err := rows.Scan(&payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan query: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &r.Tokens); err != nil {
			return nil, fmt.Errorf("unmarshal query: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate queries: %w", err)
	}
	return records, nil
}

// #endregion read

// #region helpers
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion helpers
