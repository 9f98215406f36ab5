package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gym-admin/internal/domain"
	"gym-admin/internal/repository"
)

// image is the durable shape of the database file: four named collections.
// It doubles as the in-memory working state.
type image struct {
	Users    []domain.User    `json:"users"`
	Members  []domain.Member  `json:"members"`
	Classes  []domain.Class   `json:"classes"`
	Trainers []domain.Trainer `json:"trainers"`
}

// Store owns the canonical copies of all collections. A single RWMutex lets
// reads run concurrently while a write excludes everything for the whole
// read-modify-persist-commit sequence.
//
// Mutations are applied to a deep copy of the image. The copy is persisted
// with a temp-file + rename so a crash mid-write can never leave a partial
// file, and only a successful persist commits the copy to memory. In-memory
// and on-disk state therefore never diverge across a successful call.
type Store struct {
	path string

	mu   sync.RWMutex
	data image

	// Per-collection ID sequences. Monotonic for the life of the process and
	// re-seeded from the highest existing suffix on open; a sequence number is
	// never handed out twice, even when a persist fails or a record is deleted.
	memberSeq  int
	classSeq   int
	trainerSeq int
}

// Open loads the database file at path, creating it with empty collections if
// it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.data = emptyImage()
		if err := writeImage(path, &s.data); err != nil {
			return nil, fmt.Errorf("%w: initialize database file: %v", repository.ErrStorage, err)
		}
	case err != nil:
		return nil, fmt.Errorf("%w: read database file: %v", repository.ErrStorage, err)
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("%w: parse database file %s: %v", repository.ErrStorage, path, err)
		}
		// Tolerate files written before a collection existed.
		normalize(&s.data)
	}

	s.memberSeq = seedSequence(memberIDPrefix, memberIDs(s.data.Members))
	s.classSeq = seedSequence(classIDPrefix, classIDs(s.data.Classes))
	s.trainerSeq = seedSequence(trainerIDPrefix, trainerIDs(s.data.Trainers))

	return s, nil
}

// Path reports the database file location.
func (s *Store) Path() string {
	return s.path
}

// view runs read under the shared lock. read must not retain references to
// image internals beyond the call.
func (s *Store) view(ctx context.Context, read func(*image) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return read(&s.data)
}

// update runs mutate against a deep copy of the image under the exclusive
// lock, persists the copy, and commits it to memory only on success.
func (s *Store) update(ctx context.Context, mutate func(*image) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.clone()
	if err := mutate(&next); err != nil {
		return err
	}
	if err := writeImage(s.path, &next); err != nil {
		return fmt.Errorf("%w: persist database: %v", repository.ErrStorage, err)
	}
	s.data = next
	return nil
}

// Snapshot returns one consistent deep copy of the record collections.
func (s *Store) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.view(ctx, func(img *image) error {
		c := img.clone()
		snap = domain.Snapshot{
			Members:  c.Members,
			Classes:  c.Classes,
			Trainers: c.Trainers,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Export serializes the full database image, users included, exactly as it
// would be written to disk.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	var out []byte
	err := s.view(ctx, func(img *image) error {
		var mErr error
		out, mErr = json.MarshalIndent(img, "", "  ")
		return mErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// writeImage atomically replaces the file at path with the serialized image:
// write to a temp file in the same directory, sync, then rename into place.
func writeImage(path string, img *image) error {
	payload, err := json.MarshalIndent(img, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".gymdb-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func emptyImage() image {
	return image{
		Users:    []domain.User{},
		Members:  []domain.Member{},
		Classes:  []domain.Class{},
		Trainers: []domain.Trainer{},
	}
}

func normalize(img *image) {
	if img.Users == nil {
		img.Users = []domain.User{}
	}
	if img.Members == nil {
		img.Members = []domain.Member{}
	}
	if img.Classes == nil {
		img.Classes = []domain.Class{}
	}
	if img.Trainers == nil {
		img.Trainers = []domain.Trainer{}
	}
}

// clone deep-copies the image, including the nested slices on classes and
// trainers, so a mutation can be abandoned without touching committed state.
func (img image) clone() image {
	out := image{
		Users:    append([]domain.User{}, img.Users...),
		Members:  append([]domain.Member{}, img.Members...),
		Classes:  append([]domain.Class{}, img.Classes...),
		Trainers: append([]domain.Trainer{}, img.Trainers...),
	}
	for i := range out.Classes {
		out.Classes[i].Attendees = append([]string{}, out.Classes[i].Attendees...)
	}
	for i := range out.Trainers {
		out.Trainers[i].Specialties = append([]string{}, out.Trainers[i].Specialties...)
	}
	return out
}

// --- ID allocation ---

const (
	memberIDPrefix  = "M"
	classIDPrefix   = "C"
	trainerIDPrefix = "T"
)

// formatID renders a sequence number with the collection's human-readable
// prefix. The zero-padding is cosmetic; uniqueness comes from the sequence.
func formatID(prefix string, seq int) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// seedSequence finds the highest numeric suffix among existing IDs so newly
// allocated IDs continue past records created by earlier runs.
func seedSequence(prefix string, ids []string) int {
	max := 0
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

func memberIDs(members []domain.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func classIDs(classes []domain.Class) []string {
	ids := make([]string, len(classes))
	for i, c := range classes {
		ids[i] = c.ID
	}
	return ids
}

func trainerIDs(trainers []domain.Trainer) []string {
	ids := make([]string, len(trainers))
	for i, t := range trainers {
		ids[i] = t.ID
	}
	return ids
}
