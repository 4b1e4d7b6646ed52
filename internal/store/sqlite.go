package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v: %w", path, err)
	}

	initStatement := `
	create table if not exists kv
	  (
		  key text not null primary key,
		  value text not null
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create kv table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// DB is shared with the score history
func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("select value from kv where key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if nil != err {
		return "", false, fmt.Errorf("unable to read %v: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec("insert into kv(key, value) values(?, ?) on conflict(key) do update set value = excluded.value", key, value)
	if nil != err {
		return fmt.Errorf("unable to write %v: %w", key, err)
	}
	return nil
}
