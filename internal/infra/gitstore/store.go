// Package gitstore provides a Git plumbing-based implementation of domain.Slot.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Ensure Store implements domain.Slot.
var _ domain.Slot = (*Store)(nil)

// Store implements domain.Slot using Git refs and blobs.
//
// Data structure:
//
//	refs/<namespace>/
//	  <key> → blob (slot value)
//
// The refs live outside refs/heads, so they never show up as branches
// and are untouched by checkout or gc of the working tree.
type Store struct {
	repo      *git.Repository
	namespace string // e.g., "todo"
	mu        sync.RWMutex
}

// New opens the repository at repoPath, creating a bare repository when
// none exists yet.
func New(repoPath, namespace string) (*Store, error) {
	repo, err := git.PlainOpen(repoPath)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(repoPath, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string) *Store {
	return &Store{
		repo:      repo,
		namespace: namespace,
	}
}

// refName returns the ref that holds key.
func (s *Store) refName(key string) plumbing.ReferenceName {
	return plumbing.ReferenceName("refs/" + s.namespace + "/" + key)
}

// Read returns the blob the key's ref points to.
func (s *Store) Read(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.refName(key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("get slot ref: %w", err)
	}

	return s.readBlob(ref.Hash())
}

// Write stores data as a new blob and points the key's ref at it.
func (s *Store) Write(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob(data)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.refName(key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set slot ref: %w", err)
	}
	return nil
}

// writeBlob writes data to a blob and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// readBlob reads the full contents of a blob.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}
