package cache

import (
	"sync"
	"testing"

	"github.com/corvid-labs/sqlbind/rewrite"
)

// --- Get ---

func TestGetParsesOnMiss(t *testing.T) {
	t.Parallel()

	c := New(4)
	st := c.Get("select * from users where id = :id")

	if got, want := st.SQL(), "select * from users where id = ?"; got != want {
		t.Fatalf("SQL() = %q, want %q", got, want)
	}
	if got, want := c.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestGetReturnsSharedStatement(t *testing.T) {
	t.Parallel()

	c := New(4)
	sql := "update users set name = :name where id = :id"

	first := c.Get(sql)
	second := c.Get(sql)

	if first != second {
		t.Fatalf("Get parsed twice for the same text: %p vs %p", first, second)
	}
	if got, want := c.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestGetDistinctTexts(t *testing.T) {
	t.Parallel()

	c := New(4)
	a := c.Get("select 1 where x = :x")
	b := c.Get("select 2 where y = :y")

	if a == b {
		t.Fatal("distinct texts share a cached statement")
	}
	if got, want := c.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestConcurrentGet(t *testing.T) {
	t.Parallel()

	c := New(4)
	sql := "select * from t where a = :a"

	const workers = 16
	got := make([]*rewrite.Statement, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.Get(sql)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d got a different statement", i)
		}
	}
}

// --- capacity ---

func TestEvictionBound(t *testing.T) {
	t.Parallel()

	c := New(2)
	oldest := c.Get("select 1 where a = :a")
	c.Get("select 2 where b = :b")
	c.Get("select 3 where c = :c")

	if got, want := c.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	// The least recently used entry was dropped, so the next Get re-parses.
	if again := c.Get("select 1 where a = :a"); again == oldest {
		t.Fatal("evicted statement still served from cache")
	}
}

func TestNewClampsSize(t *testing.T) {
	t.Parallel()

	c := New(0)
	c.Get("select :v")
	if got, want := c.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestPurge(t *testing.T) {
	t.Parallel()

	c := New(4)
	before := c.Get("select :v")
	c.Purge()

	if got, want := c.Len(), 0; got != want {
		t.Fatalf("Len() after Purge = %d, want %d", got, want)
	}
	if after := c.Get("select :v"); after == before {
		t.Fatal("purged statement still served from cache")
	}
}

// --- Fingerprint ---

func TestFingerprint(t *testing.T) {
	t.Parallel()

	if Fingerprint("select 1") != Fingerprint("select 1") {
		t.Fatal("fingerprint is not deterministic")
	}
	if Fingerprint("select 1") == Fingerprint("select 2") {
		t.Fatal("distinct texts collide")
	}
}
