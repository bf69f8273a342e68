package quest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/saulo-duarte/eternal-quest/internal/codec"
)

type Repository interface {
	Save(ctx context.Context, location string, snap codec.Snapshot) error
	Load(ctx context.Context, location string) (codec.Snapshot, error)
}

type fileRepository struct{}

// NewFileRepository stores saves as plain files; the location is a path.
func NewFileRepository() Repository {
	return &fileRepository{}
}

func (r *fileRepository) Save(_ context.Context, location string, snap codec.Snapshot) error {
	dir := filepath.Dir(location)
	tmp, err := os.CreateTemp(dir, filepath.Base(location)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := codec.Encode(tmp, snap); err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, location); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	committed = true
	return nil
}

func (r *fileRepository) Load(_ context.Context, location string) (codec.Snapshot, error) {
	f, err := os.Open(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return codec.Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, location)
		}
		return codec.Snapshot{}, err
	}
	defer f.Close()

	return codec.Decode(f)
}
