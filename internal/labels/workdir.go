package labels

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prepare makes sure dir exists and holds no regular files from an earlier
// run. Sub-directories and other non-regular entries are left alone.
func Prepare(dir string, log logrus.FieldLogger) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		log.WithField("dir", dir).Info("creating directory")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(ErrDirectory, "failed to create %s: %v", dir, err)
		}
		return nil
	}
	if err != nil {
		return errors.Wrapf(ErrDirectory, "failed to stat %s: %v", dir, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrDirectory, "%s is not a directory", dir)
	}

	log.WithField("dir", dir).Info("directory already exists, wiping previous data")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(ErrDirectory, "failed to list %s: %v", dir, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return errors.Wrapf(ErrDirectory, "failed to delete %s: %v", path, err)
		}
		log.WithField("file", path).Debug("deleted file")
	}

	return nil
}
