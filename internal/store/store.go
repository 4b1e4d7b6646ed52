package store

import (
	"fmt"
	"strconv"
)

// Keys the game reads and writes
const (
	KeyVisited      = "has-visited"
	KeyStreak       = "streak"
	KeyVisitedGame  = "has-visited-game"
	KeyUsedMessages = "used-messages"
	KeyLastWin      = "last-win-date"
)

// Store is a string valued key-value store
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Int reads an integer, a missing or unparsable value reads as def
func Int(s Store, key string, def int) int {
	v, ok, err := s.Get(key)
	if nil != err || !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if nil != err {
		return def
	}
	return i
}

func SetInt(s Store, key string, value int) error {
	return s.Set(key, strconv.Itoa(value))
}

// FirstVisit reports whether key was unset, and marks it visited
func FirstVisit(s Store, key string) (bool, error) {
	_, ok, err := s.Get(key)
	if nil != err {
		return false, err
	}
	if ok {
		return false, nil
	}
	if err := s.Set(key, "true"); nil != err {
		return true, fmt.Errorf("unable to mark %v visited: %w", key, err)
	}
	return true, nil
}
