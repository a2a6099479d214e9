package folio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSource is returned for a posts source with an unsupported scheme.
var ErrUnknownSource = errors.New("folio: unknown posts source")

// Source kinds accepted in SiteConfig.PostsSource.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
)

// ParseSource splits a posts source such as "yaml:posts.yml" into its kind and
// location. "builtin" takes no location.
func ParseSource(source string) (kind, location string, err error) {
	if source == "" || source == SourceBuiltin {
		return SourceBuiltin, "", nil
	}
	kind, location, ok := strings.Cut(source, ":")
	if !ok || location == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	switch kind {
	case SourceYAML, SourceSQLite:
		return kind, location, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownSource, source)
}

// LoadPosts reads the full post set from source in its stored order.
func LoadPosts(ctx context.Context, source string) ([]BlogPost, error) {
	kind, location, err := ParseSource(source)
	if err != nil {
		return nil, err
	}
	switch kind {
	case SourceYAML:
		return loadYAML(location)
	case SourceSQLite:
		store, err := OpenStore(location, true)
		if err != nil {
			return nil, fmt.Errorf("folio: open %s: %w", location, err)
		}
		defer store.Close()
		return store.ListPosts(ctx)
	}
	return DefaultPosts(), nil
}

type postsFile struct {
	Posts []BlogPost `yaml:"posts"`
}

func loadYAML(path string) ([]BlogPost, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePostsYAML(b)
}

// DecodePostsYAML decodes a document of the form
//
//	posts:
//	  - id: 1
//	    title: Hello
//	    ...
//
// Unknown keys are rejected. An empty document yields no posts.
func DecodePostsYAML(b []byte) ([]BlogPost, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var f postsFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("folio: decode posts yaml: %w", err)
	}
	return f.Posts, nil
}

// EncodePostsYAML is the inverse of DecodePostsYAML.
func EncodePostsYAML(posts []BlogPost) ([]byte, error) {
	return yaml.Marshal(postsFile{Posts: posts})
}
