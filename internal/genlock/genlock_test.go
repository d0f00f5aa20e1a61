package genlock

import (
	"sync"
	"testing"
)

func TestTryAcquireRelease(t *testing.T) {
	r := NewRegistry()

	if !r.TryAcquire("course-1") {
		t.Fatal("first acquire should succeed")
	}
	if r.TryAcquire("course-1") {
		t.Fatal("second acquire of held lock should fail")
	}
	if !r.TryAcquire("course-2") {
		t.Fatal("acquire of a different id should succeed")
	}

	r.Release("course-1")
	if !r.TryAcquire("course-1") {
		t.Fatal("acquire after release should succeed")
	}
}

func TestInFlight(t *testing.T) {
	r := NewRegistry()
	if r.InFlight("m1") {
		t.Fatal("nothing should be in flight initially")
	}
	r.TryAcquire("m1")
	if !r.InFlight("m1") {
		t.Fatal("m1 should be in flight after acquire")
	}
}

func TestConcurrentAcquire(t *testing.T) {
	r := NewRegistry()

	const goroutines = 50
	var wg sync.WaitGroup
	acquired := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acquired <- r.TryAcquire("same-course")
		}()
	}
	wg.Wait()
	close(acquired)

	wins := 0
	for ok := range acquired {
		if ok {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", wins)
	}
}
