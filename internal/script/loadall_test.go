package script

import (
	"errors"
	"testing"
)

func TestLoadAllStopsNeitherOnFailure(t *testing.T) {
	l := NewList()
	sources := []Source{
		{Name: "good1", Data: []byte("ok")},
		{Path: "/nonexistent/path/does-not-exist.chalk"},
		{Name: "good2", Data: []byte("ok too")},
	}

	parse := func(data []byte) (any, any, error) { return string(data), nil, nil }

	loaded, err := LoadAll(l, sources, parse, nil)
	if err == nil {
		t.Fatal("want an aggregated error for the missing file")
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d scripts, want 2 (the failure should not block the rest)", len(loaded))
	}
	if l.Len() != 2 {
		t.Fatalf("list Len = %d, want 2", l.Len())
	}
}

func TestLoadAllParseFailureIsAggregated(t *testing.T) {
	l := NewList()
	sources := []Source{{Name: "bad", Data: []byte("broken")}}
	boom := errors.New("syntax error")

	_, err := LoadAll(l, sources, func(data []byte) (any, any, error) { return nil, nil, boom }, nil)
	if err == nil {
		t.Fatal("want a parse error")
	}
}

func TestLoadAllAllSucceed(t *testing.T) {
	l := NewList()
	sources := []Source{{Name: "a", Data: []byte("1")}, {Name: "b", Data: []byte("2")}}

	loaded, err := LoadAll(l, sources, func(data []byte) (any, any, error) { return nil, nil, nil }, nil)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d scripts, want 2", len(loaded))
	}
}
