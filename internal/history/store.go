// Package history persists generated posts. Writes happen fire-and-forget
// from the pipeline: a storage hiccup is logged, never surfaced as a
// generation failure.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/artflaneur/contentfactory/internal/logger"
	"github.com/artflaneur/contentfactory/internal/models"
)

// Store keeps generated posts as JSON files under dated directories.
type Store struct {
	basePath string
	archiver *Archiver
	mu       sync.RWMutex
}

// NewStore creates the storage directories and wires an optional archiver.
func NewStore(basePath string, archiver *Archiver) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(basePath, "posts"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &Store{basePath: basePath, archiver: archiver}, nil
}

// Save writes a post to disk and, when an archiver is configured, uploads a
// copy. Archive failures are logged only; the local write is authoritative.
func (s *Store) Save(ctx context.Context, post *models.GeneratedPost) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	datePath := filepath.Join(s.basePath, "posts", time.Now().Format("2006/01/02"))
	if err := os.MkdirAll(datePath, 0755); err != nil {
		return fmt.Errorf("failed to create date directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s.json", time.Now().Unix(), post.ID)
	filePath := filepath.Join(datePath, filename)

	data, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write post file: %w", err)
	}
	post.FilePath = filePath

	if s.archiver != nil {
		key := "posts/" + time.Now().Format("2006/01/02") + "/" + filename
		if err := s.archiver.Upload(ctx, key, data); err != nil {
			logger.Get().Error().Err(err).Str("key", key).Msg("Error archiving post")
		}
	}

	return nil
}

// GetByID retrieves a post by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (*models.GeneratedPost, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *models.GeneratedPost
	err := filepath.WalkDir(filepath.Join(s.basePath, "posts"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		// Filenames are "<unix>_<id>.json"; an exact suffix match keeps a
		// short id from colliding with another file's timestamp prefix.
		if !strings.HasSuffix(d.Name(), "_"+id+".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		var post models.GeneratedPost
		if err := json.Unmarshal(data, &post); err != nil {
			return fmt.Errorf("failed to unmarshal post: %w", err)
		}
		post.FilePath = path
		found = &post
		return filepath.SkipAll
	})
	if err != nil {
		return nil, fmt.Errorf("error walking history path: %w", err)
	}
	if found == nil {
		return nil, fmt.Errorf("post with ID %s not found", id)
	}
	return found, nil
}

// List returns a page of posts, newest first.
func (s *Store) List(ctx context.Context, page, pageSize int) ([]*models.GeneratedPost, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var files []string
	err := filepath.WalkDir(filepath.Join(s.basePath, "posts"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking history path: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		info1, _ := os.Stat(files[i])
		info2, _ := os.Stat(files[j])
		if info1 == nil || info2 == nil {
			return files[i] > files[j]
		}
		return info1.ModTime().After(info2.ModTime())
	})

	start := (page - 1) * pageSize
	if start >= len(files) {
		return []*models.GeneratedPost{}, nil
	}
	end := start + pageSize
	if end > len(files) {
		end = len(files)
	}

	posts := make([]*models.GeneratedPost, 0, end-start)
	for _, file := range files[start:end] {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file %s: %w", file, err)
		}
		var post models.GeneratedPost
		if err := json.Unmarshal(data, &post); err != nil {
			return nil, fmt.Errorf("error unmarshaling post: %w", err)
		}
		post.FilePath = file
		posts = append(posts, &post)
	}

	return posts, nil
}

// Delete removes a stored post by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(post.FilePath); err != nil {
		return fmt.Errorf("failed to delete post file: %w", err)
	}
	return nil
}
