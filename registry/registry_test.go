package registry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tarmac-project/weblog/console"
	kvmock "github.com/tarmac-project/weblog/kv/mock"
	"github.com/tarmac-project/weblog/level"
)

type lifecycle struct {
	created, removed int
	appended         int
}

func (m *lifecycle) EntryAppended(level.Level) { m.appended++ }
func (m *lifecycle) EntryDropped(level.Level)  {}
func (m *lifecycle) Persisted(int)             {}
func (m *lifecycle) LoggerCreated()            { m.created++ }
func (m *lifecycle) LoggerRemoved()            { m.removed++ }

func TestCreate(t *testing.T) {
	r := New(Config{Console: console.Discard{}})

	l, err := r.Create("X", Options{Level: level.Info})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if l.Name() != "X" || l.Level() != level.Info {
		t.Fatalf("unexpected logger %q at %s", l.Name(), l.Level())
	}

	got, ok := r.Get("X")
	if !ok || got != l {
		t.Fatalf("Get did not return the created logger")
	}
}

func TestCreateDefaults(t *testing.T) {
	r := New(Config{Console: console.Discard{}})

	l, err := r.Create("", Options{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !strings.HasPrefix(l.Name(), DefaultNamePrefix) {
		t.Fatalf("generated name %q lacks prefix", l.Name())
	}
	if l.Level() != level.Error {
		t.Fatalf("expected default threshold Error, got %s", l.Level())
	}

	l.Warning("dropped")
	l.Error("kept")
	if l.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", l.Len())
	}

	other, err := r.Create("", Options{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if other.Name() == l.Name() {
		t.Fatalf("generated names collide: %q", l.Name())
	}
}

func TestCreateDuplicate(t *testing.T) {
	store := kvmock.New(kvmock.Config{})
	m := &lifecycle{}
	r := New(Config{Store: store, Console: console.Discard{}, Metrics: m})

	first, err := r.Create("X", Options{Level: level.Trace})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	first.Info("hello")
	if err := first.Persist(); err != nil {
		t.Fatalf("Persist returned error: %v", err)
	}

	t.Run("without override", func(t *testing.T) {
		_, err := r.Create("X", Options{})
		if !errors.Is(err, ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
		if got, _ := r.Get("X"); got != first {
			t.Fatalf("failed create replaced the logger")
		}
		if first.Len() != 1 {
			t.Fatalf("failed create touched existing entries")
		}
	})

	t.Run("with override", func(t *testing.T) {
		fresh, err := r.Create("X", Options{Override: true})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if fresh == first {
			t.Fatalf("override returned the prior logger")
		}
		if fresh.Len() != 0 {
			t.Fatalf("expected an empty logger, got %d entries", fresh.Len())
		}
		if first.Len() != 0 {
			t.Fatalf("prior logger was not cleared")
		}
		if _, ok := store.Value("X"); ok {
			t.Fatalf("prior persisted copy was not removed")
		}
		if got, _ := r.Get("X"); got != fresh {
			t.Fatalf("registry does not point at the fresh logger")
		}
	})

	if m.created != 2 || m.removed != 1 {
		t.Fatalf("unexpected lifecycle counts: %+v", m)
	}
}

func TestRemove(t *testing.T) {
	store := kvmock.New(kvmock.Config{})
	m := &lifecycle{}
	r := New(Config{Store: store, Console: console.Discard{}, Metrics: m})

	l, err := r.Create("gone", Options{})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	l.Error("keep me")
	if err := l.Persist(); err != nil {
		t.Fatalf("Persist returned error: %v", err)
	}

	r.Remove("gone")
	r.Remove("gone")
	r.Remove("never-existed")

	if _, ok := r.Get("gone"); ok {
		t.Fatalf("logger still registered")
	}
	if _, ok := store.Value("gone"); !ok {
		t.Fatalf("Remove must not clear persisted data")
	}
	if m.removed != 1 {
		t.Fatalf("expected one removal, got %d", m.removed)
	}

	if _, err := r.Create("gone", Options{}); err != nil {
		t.Fatalf("name should be reusable after Remove: %v", err)
	}
}

func TestNames(t *testing.T) {
	r := New(Config{Console: console.Discard{}})
	for _, name := range []string{"b", "c", "a"} {
		if _, err := r.Create(name, Options{}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	got := r.Names()
	if strings.Join(got, ",") != "a,b,c" {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestSharedCollaborators(t *testing.T) {
	fixed := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	r := New(Config{
		Console:    console.Discard{},
		Clock:      func() time.Time { return fixed },
		TimeLayout: time.RFC3339,
		Location:   time.UTC,
	})

	l, err := r.Create("clocked", Options{Level: level.Debug})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	l.Debug("tick")

	if got := l.Text(); got != "2020-01-02T03:04:05Z - DEBUG - tick" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestGenerateNameFallback(t *testing.T) {
	fixed := time.UnixMilli(1448100000000)
	r := New(Config{Console: console.Discard{}, Clock: func() time.Time { return fixed }, NamePrefix: "app_"})
	r.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("no entropy") }

	want := []string{"app_1448100000000", "app_1448100000000_1", "app_1448100000000_2"}
	for _, w := range want {
		l, err := r.Create("", Options{})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if l.Name() != w {
			t.Fatalf("want name %q, got %q", w, l.Name())
		}
	}
}
