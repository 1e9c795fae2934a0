package services

import (
	"context"
	"fmt"
	"sync"

	"evermore/internal/store"
)

type storeCall struct {
	Op     string // "list", "create", "setfield"
	Kind   store.Kind
	ID     string
	Field  string
	Value  any
	Values store.Record
}

// fakeStore is an in-memory store.Client that records every call.
type fakeStore struct {
	mu      sync.Mutex
	records map[store.Kind][]store.Record
	calls   []storeCall
	nextID  int

	listErr     error
	createErr   error
	setFieldErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[store.Kind][]store.Record{}}
}

func (f *fakeStore) add(kind store.Kind, rec store.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[kind] = append(f.records[kind], rec)
}

func (f *fakeStore) List(ctx context.Context, kind store.Kind, filters store.Filters) ([]store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{Op: "list", Kind: kind})
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Record
	for _, rec := range f.records[kind] {
		match := true
		for k, v := range filters {
			if fmt.Sprintf("%v", rec[k]) != fmt.Sprintf("%v", v) {
				match = false
				break
			}
		}
		if match {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, kind store.Kind, values store.Record) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{Op: "create", Kind: kind, Values: values})
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("%s-%d", kind, f.nextID)
	rec := store.Record{"id": id}
	for k, v := range values {
		rec[k] = v
	}
	f.records[kind] = append(f.records[kind], rec)
	return id, nil
}

func (f *fakeStore) SetField(ctx context.Context, kind store.Kind, id, field string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{Op: "setfield", Kind: kind, ID: id, Field: field, Value: value})
	if f.setFieldErr != nil {
		return f.setFieldErr
	}
	for _, rec := range f.records[kind] {
		if fmt.Sprintf("%v", rec["id"]) == id {
			rec[field] = value
			return nil
		}
	}
	return &store.APIError{Status: 404, Message: fmt.Sprintf("no %s record with id %s", kind, id)}
}

func (f *fakeStore) callsOf(op string) []storeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []storeCall
	for _, c := range f.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// writeCalls returns create and setfield calls in order, ignoring reads.
func (f *fakeStore) writeCalls() []storeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []storeCall
	for _, c := range f.calls {
		if c.Op != "list" {
			out = append(out, c)
		}
	}
	return out
}
