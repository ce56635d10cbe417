package assets

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/iconshelf/internal/catalog"
)

// copyTheme copies the asset files directly under src into dst. Files whose
// content already matches are left alone. Subdirectories are not descended.
func copyTheme(src, dst string, naming catalog.Naming) (copied, unchanged int, err error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, 0, err
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return 0, 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !naming.IsAsset(entry.Name()) {
			continue
		}

		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		same, err := sameContent(from, to)
		if err != nil {
			return copied, unchanged, err
		}
		if same {
			unchanged++
			continue
		}

		if err := copyFile(from, to); err != nil {
			return copied, unchanged, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		copied++
	}

	return copied, unchanged, nil
}

func sameContent(a, b string) (bool, error) {
	if _, err := os.Stat(b); os.IsNotExist(err) {
		return false, nil
	}
	ha, err := hashFile(a)
	if err != nil {
		return false, err
	}
	hb, err := hashFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ha, hb), nil
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}
