package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"vidfetch/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Workspace owns every file one request produces. Files are
// namespaced by a per-request identifier so concurrent requests
// never collide on disk; Release is the only destructor and is safe
// on every exit path.
type Workspace struct {
	ID  string
	Dir string

	releaseOnce sync.Once
}

func NewWorkspace(dir string) *Workspace {
	return &Workspace{
		ID:  uuid.NewString(),
		Dir: dir,
	}
}

// OutputTemplate is the backend output name template; it embeds the
// request identifier so the backend names its files inside this
// workspace's namespace.
func (ws *Workspace) OutputTemplate() string {
	return filepath.Join(ws.Dir, ws.ID+".%(ext)s")
}

func (ws *Workspace) Path(ext string) string {
	return filepath.Join(ws.Dir, fmt.Sprintf("%s.%s", ws.ID, ext))
}

// DerivedPath names the post-processor output for this request.
func (ws *Workspace) DerivedPath(ext string) string {
	return filepath.Join(ws.Dir, fmt.Sprintf("%s_clean.%s", ws.ID, ext))
}

// FramePath is the scratch file for single-frame sampling.
func (ws *Workspace) FramePath() string {
	return filepath.Join(ws.Dir, fmt.Sprintf("%s_frame.png", ws.ID))
}

// Locate resolves the file the backend actually produced: exact name
// first, then a prefix scan of the directory. The backend's own
// post-processing can change the container, which makes the declared
// extension unreliable. When several entries share the prefix the
// first one in listing order wins; that ambiguity is accepted.
func (ws *Workspace) Locate(ext string) (string, error) {
	exact := ws.Path(ext)
	if _, err := os.Stat(exact); err == nil {
		return exact, nil
	}

	entries, err := os.ReadDir(ws.Dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrOutputMissing, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ws.ID) {
			return filepath.Join(ws.Dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("%w: no file with prefix %s", util.ErrOutputMissing, ws.ID)
}

// Release deletes every file this request produced, including
// partial artifacts of a failed pipeline. It runs at most once;
// already-gone files are fine and delete errors are logged, never
// propagated.
func (ws *Workspace) Release() {
	ws.releaseOnce.Do(func() {
		entries, err := os.ReadDir(ws.Dir)
		if err != nil {
			zap.S().Warnf("workspace %s: release scan failed: %v", ws.ID, err)
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasPrefix(entry.Name(), ws.ID) {
				continue
			}
			path := filepath.Join(ws.Dir, entry.Name())
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				zap.S().Warnf("workspace %s: failed to remove %s: %v", ws.ID, path, err)
			}
		}
	})
}
