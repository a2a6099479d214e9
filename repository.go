package folio

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

var (
	// ErrNotFound is returned when a requested post does not exist. A malformed
	// id is reported the same way as a missing one.
	ErrNotFound = errors.New("folio: post not found")

	// ErrInvalidPost is returned by NewRepository when the post set breaks an
	// identity rule (non-positive id, duplicate id, empty title).
	ErrInvalidPost = errors.New("folio: invalid post")
)

// Repository is the read-only, in-memory post set. It is populated once by
// NewRepository and never mutated afterwards, so concurrent readers need no
// locking.
type Repository struct {
	posts []BlogPost
	index map[int]int
}

// NewRepository validates posts and returns a Repository holding a private
// copy of them in the given order.
func NewRepository(posts []BlogPost) (*Repository, error) {
	r := &Repository{
		posts: make([]BlogPost, len(posts)),
		index: make(map[int]int, len(posts)),
	}
	copy(r.posts, posts)
	for i, p := range r.posts {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d is not positive", ErrInvalidPost, p.ID)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("%w: id %d has an empty title", ErrInvalidPost, p.ID)
		}
		if _, dup := r.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidPost, p.ID)
		}
		r.index[p.ID] = i
	}
	return r, nil
}

// All returns every post in insertion order. The slice is a copy.
func (r *Repository) All() []BlogPost {
	out := make([]BlogPost, len(r.posts))
	copy(out, r.posts)
	return out
}

// Len reports the number of posts.
func (r *Repository) Len() int {
	return len(r.posts)
}

// Get returns the post with the given id.
func (r *Repository) Get(id int) (BlogPost, error) {
	i, ok := r.index[id]
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	return r.posts[i], nil
}

// Lookup resolves a path token such as "2" to a post. The id is read from the
// leading digits of the token, so "2abc" and "1.5" resolve to posts 2 and 1.
// Tokens without leading digits resolve to ErrNotFound, same as unknown ids.
func (r *Repository) Lookup(token string) (BlogPost, error) {
	id, ok := leadingInt(token)
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	return r.Get(id)
}

// leadingInt parses an optionally signed run of decimal digits after any
// leading whitespace and ignores whatever follows it. It fails when there are
// no digits or the value does not fit in an int.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// Search returns the posts matching query, in repository order.
func (r *Repository) Search(query string) []BlogPost {
	return Filter(r.posts, query)
}
