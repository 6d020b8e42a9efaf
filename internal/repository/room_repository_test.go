package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
)

// roomStateStub stands in for the database during claim tests. Its
// ExecContext behaves like MySQL's conditional update: the status flip
// succeeds (one affected row) only when the room is still Available,
// and the mutex gives the same one-winner guarantee row locking does.
type roomStateStub struct {
	mu     sync.Mutex
	status map[uint64]string
}

type stubResult struct{ affected int64 }

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return r.affected, nil }

func (s *roomStateStub) ExecContext(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
	id, ok := args[0].(uint64)
	if !ok {
		return nil, errors.New("first arg must be the room id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status[id] == "Available" {
		s.status[id] = "Booked"
		return stubResult{affected: 1}, nil
	}
	return stubResult{affected: 0}, nil
}

func TestClaimFirstSkipsTakenRooms(t *testing.T) {
	stub := &roomStateStub{status: map[uint64]string{1: "Booked", 2: "Available", 3: "Available"}}
	id, err := claimFirst(context.Background(), stub, []uint64{1, 2, 3})
	if err != nil {
		t.Fatalf("claimFirst: %v", err)
	}
	if id != 2 {
		t.Errorf("claimed room %d, want 2 (lowest still Available)", id)
	}
	if stub.status[2] != "Booked" {
		t.Error("claimed room was not flipped to Booked")
	}
	if stub.status[3] != "Available" {
		t.Error("later candidate must stay Available")
	}
}

func TestClaimFirstNoAvailability(t *testing.T) {
	stub := &roomStateStub{status: map[uint64]string{1: "Booked", 2: "Booked"}}
	if _, err := claimFirst(context.Background(), stub, []uint64{1, 2}); !errors.Is(err, ErrNoAvailability) {
		t.Errorf("err = %v, want ErrNoAvailability", err)
	}
	if _, err := claimFirst(context.Background(), stub, nil); !errors.Is(err, ErrNoAvailability) {
		t.Errorf("empty candidates: err = %v, want ErrNoAvailability", err)
	}
}

// Two concurrent allocations racing for the last Available room must
// resolve to exactly one winner; the loser sees ErrNoAvailability.
func TestClaimFirstConcurrentLastRoom(t *testing.T) {
	stub := &roomStateStub{status: map[uint64]string{7: "Available"}}

	type outcome struct {
		id  uint64
		err error
	}
	results := make(chan outcome, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := claimFirst(context.Background(), stub, []uint64{7})
			results <- outcome{id: id, err: err}
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for r := range results {
		switch {
		case r.err == nil && r.id == 7:
			wins++
		case errors.Is(r.err, ErrNoAvailability):
			losses++
		default:
			t.Fatalf("unexpected outcome id=%d err=%v", r.id, r.err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Errorf("wins=%d losses=%d, want exactly one of each", wins, losses)
	}
	if stub.status[7] != "Booked" {
		t.Error("room must end Booked after the race")
	}
}
