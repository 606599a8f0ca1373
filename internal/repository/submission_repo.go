package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/salgadostudio/booking-site/internal/models"
)

// ErrNotFound is returned when no submission matches the requested id.
var ErrNotFound = errors.New("submission not found")

const submissionsFileName = "submissions.json"

// SubmissionRepo persists the whole collection as one pretty-printed JSON
// array in a single file. Every operation is a full read, in-memory
// transform, full rewrite; mutations are serialized through mu so two
// overlapping writers cannot silently drop each other's changes.
type SubmissionRepo struct {
	path string
	mu   sync.Mutex
}

func NewSubmissionRepo(dataDir string) *SubmissionRepo {
	return &SubmissionRepo{path: filepath.Join(dataDir, submissionsFileName)}
}

// Init creates the data directory and an empty collection file when missing.
// Must complete before the server accepts traffic.
func (r *SubmissionRepo) Init() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat submissions file: %w", err)
	}
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create submissions file: %w", err)
	}
	return nil
}

// List returns the full collection in stored (newest-first) order.
func (r *SubmissionRepo) List() ([]models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Insert prepends sub so the collection stays newest-first.
func (r *SubmissionRepo) Insert(sub *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, err := r.load()
	if err != nil {
		return err
	}
	subs = append([]models.Submission{*sub}, subs...)
	return r.save(subs)
}

// Update finds the submission by id, applies mutate, and persists the
// collection. Returns the mutated record, or ErrNotFound.
func (r *SubmissionRepo) Update(id string, mutate func(*models.Submission)) (*models.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, err := r.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(subs, id)
	if i == -1 {
		return nil, ErrNotFound
	}
	mutate(&subs[i])
	if err := r.save(subs); err != nil {
		return nil, err
	}
	updated := subs[i]
	return &updated, nil
}

// Delete removes the submission by id, or returns ErrNotFound.
func (r *SubmissionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, err := r.load()
	if err != nil {
		return err
	}
	i := indexOf(subs, id)
	if i == -1 {
		return ErrNotFound
	}
	subs = append(subs[:i], subs[i+1:]...)
	return r.save(subs)
}

func (r *SubmissionRepo) load() ([]models.Submission, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read submissions file: %w", err)
	}
	var subs []models.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, fmt.Errorf("parse submissions file: %w", err)
	}
	return subs, nil
}

func (r *SubmissionRepo) save(subs []models.Submission) error {
	if subs == nil {
		subs = []models.Submission{}
	}
	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write submissions file: %w", err)
	}
	return nil
}

func indexOf(subs []models.Submission, id string) int {
	for i := range subs {
		if subs[i].ID == id {
			return i
		}
	}
	return -1
}
