package store

import (
	"path/filepath"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	db, err := Open(filepath.Join(t.TempDir(), "rhythm.db"))
	if nil != err {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": db,
	}
}

func TestGetSet(t *testing.T) {
	for name, s := range stores(t) {
		if _, ok, err := s.Get(KeyStreak); ok || nil != err {
			t.Fatalf("%v: expected missing key, got %v %v", name, ok, err)
		}
		if err := s.Set(KeyStreak, "3"); nil != err {
			t.Fatalf("%v: %v", name, err)
		}
		if err := s.Set(KeyStreak, "4"); nil != err {
			t.Fatalf("%v: overwrite: %v", name, err)
		}
		v, ok, err := s.Get(KeyStreak)
		if !ok || nil != err || v != "4" {
			t.Fatalf("%v: got %q %v %v", name, v, ok, err)
		}
	}
}

func TestInt(t *testing.T) {
	for name, s := range stores(t) {
		if i := Int(s, KeyStreak, 0); i != 0 {
			t.Errorf("%v: default = %v", name, i)
		}
		s.Set(KeyStreak, "not a number")
		if i := Int(s, KeyStreak, 0); i != 0 {
			t.Errorf("%v: unparsable = %v", name, i)
		}
		if err := SetInt(s, KeyStreak, 12); nil != err {
			t.Fatal(err)
		}
		if i := Int(s, KeyStreak, 0); i != 12 {
			t.Errorf("%v: stored = %v", name, i)
		}
	}
}

func TestFirstVisit(t *testing.T) {
	for name, s := range stores(t) {
		first, err := FirstVisit(s, KeyVisited)
		if !first || nil != err {
			t.Fatalf("%v: first visit = %v %v", name, first, err)
		}
		first, err = FirstVisit(s, KeyVisited)
		if first || nil != err {
			t.Fatalf("%v: second visit = %v %v", name, first, err)
		}
	}
}
