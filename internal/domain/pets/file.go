package pets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const snapshotFileMode = 0o644

// writeFileAtomic escribe en un temporal al lado del destino y lo renombra,
// así un save fallido no deja el snapshot anterior truncado.
func writeFileAtomic(path string, b []byte) (err error) {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+".tmp-"+uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, snapshotFileMode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return b, nil
}
