package folio

import (
	"errors"
	"testing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(DefaultPosts())
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}
	return repo
}

func TestNewRepositoryRejectsInvalidPosts(t *testing.T) {
	tests := []struct {
		name  string
		posts []BlogPost
	}{
		{"zero id", []BlogPost{{ID: 0, Title: "Zero"}}},
		{"negative id", []BlogPost{{ID: -3, Title: "Negative"}}},
		{"empty title", []BlogPost{{ID: 1, Title: "  "}}},
		{"duplicate id", []BlogPost{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}, {ID: 1, Title: "C"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(tt.posts)
			if !errors.Is(err, ErrInvalidPost) {
				t.Errorf("NewRepository error = %v, want ErrInvalidPost", err)
			}
		})
	}
}

func TestNewRepositoryEmpty(t *testing.T) {
	repo, err := NewRepository(nil)
	if err != nil {
		t.Fatalf("NewRepository(nil) failed: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("Len = %d, want 0", repo.Len())
	}
	if got := repo.All(); len(got) != 0 {
		t.Errorf("All = %v, want empty", got)
	}
}

func TestRepositoryAllKeepsOrder(t *testing.T) {
	repo := newTestRepo(t)
	got := repo.All()
	if len(got) != 4 {
		t.Fatalf("All count = %d, want 4", len(got))
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Errorf("All()[%d].ID = %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestRepositoryAllReturnsCopy(t *testing.T) {
	repo := newTestRepo(t)
	first := repo.All()
	first[0].Title = "changed"

	again := repo.All()
	if again[0].Title != "Welcome to My Blog" {
		t.Errorf("repository was mutated through All: title = %q", again[0].Title)
	}
}

func TestNewRepositoryCopiesInput(t *testing.T) {
	posts := DefaultPosts()
	repo, err := NewRepository(posts)
	if err != nil {
		t.Fatalf("NewRepository failed: %v", err)
	}
	posts[1].Title = "changed"
	got, err := repo.Get(2)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Learning Next.js" {
		t.Errorf("Title = %q, want %q", got.Title, "Learning Next.js")
	}
}

func TestRepositoryLookup(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Lookup("2")
	if err != nil {
		t.Fatalf("Lookup(\"2\") failed: %v", err)
	}
	if got.ID != 2 || got.Title != "Learning Next.js" {
		t.Errorf("Lookup(\"2\") = %+v, want post 2", got)
	}

	hits := []struct {
		token string
		want  int
	}{
		{"1", 1},
		{"+2", 2},
		{"2abc", 2},
		{" 2", 2},
		{"\t3", 3},
		{"1.5", 1},
		{"04", 4},
		{"3 ", 3},
	}
	for _, tt := range hits {
		got, err := repo.Lookup(tt.token)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.token, err)
			continue
		}
		if got.ID != tt.want {
			t.Errorf("Lookup(%q) = post %d, want post %d", tt.token, got.ID, tt.want)
		}
	}

	misses := []string{"99", "0", "-1", "-2", "abc", "", " ", "+", "a2", ".5", "99999999999999999999999"}
	for _, token := range misses {
		if _, err := repo.Lookup(token); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q) error = %v, want ErrNotFound", token, err)
		}
	}
}

func TestRepositoryLookupEveryPost(t *testing.T) {
	repo := newTestRepo(t)
	for _, want := range repo.All() {
		got, err := repo.Get(want.ID)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", want.ID, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %+v, want %+v", want.ID, got, want)
		}
	}
}
