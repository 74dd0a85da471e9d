package wind

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

// Winds keeps the GRIB files of a directory loaded, by file name.
type Winds struct {
	dir      string
	winds    map[string]*Wind
	watchers []*Watcher
	lock     sync.RWMutex
}

func NewWinds(dir string) *Winds {
	return &Winds{
		dir:   dir,
		winds: make(map[string]*Wind),
	}
}

// InitWinds loads the directory and merges it again every given seconds.
func InitWinds(dir string, every uint64) *Winds {
	w := NewWinds(dir)
	w.Merge()

	s := gocron.NewScheduler()
	jobxx := s.Every(every).Seconds()
	jobxx.Do(w.Merge)

	go s.Start()

	return w
}

// Watch checks the watcher against the latest file on every merge.
func (w *Winds) Watch(watcher *Watcher) {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.watchers = append(w.watchers, watcher)
}

// Add registers a wind under its file name, replacing any previous one.
func (w *Winds) Add(wi *Wind) {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.winds[wi.File] = wi
}

func (w *Winds) Find(file string) (*Wind, bool) {
	w.lock.RLock()
	defer w.lock.RUnlock()

	wi, found := w.winds[file]
	return wi, found
}

// Files returns the loaded file names, sorted.
func (w *Winds) Files() []string {
	w.lock.RLock()
	defer w.lock.RUnlock()

	return w.files()
}

func (w *Winds) files() []string {
	files := make([]string, 0, len(w.winds))
	for f := range w.winds {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

func (w *Winds) list() ([]string, error) {
	var files []string
	err := filepath.Walk(w.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithError(err).Errorf("Error walking file '%s'", path)
		} else if info.Mode().IsRegular() && !strings.HasSuffix(info.Name(), ".tmp") {
			files = append(files, info.Name())
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

// Merge drops the files gone from the directory and loads the new ones, then
// checks the watchers against the latest file. Notifications go out once the
// store is unlocked.
func (w *Winds) Merge() error {
	latest, watchers, err := w.merge()
	if err != nil {
		return err
	}
	if latest == nil {
		return nil
	}

	for _, watcher := range watchers {
		if _, err := watcher.Check(latest); err != nil {
			log.WithError(err).Errorf("Error notifying watcher '%s'", watcher.Name)
		}
	}

	return nil
}

func (w *Winds) merge() (*Wind, []*Watcher, error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	var toRemove []string
	for file := range w.winds {
		if _, err := os.Stat(filepath.Join(w.dir, file)); os.IsNotExist(err) {
			toRemove = append(toRemove, file)
		}
	}
	for _, file := range toRemove {
		log.Infof("Remove from winds %s", file)
		delete(w.winds, file)
	}

	files, err := w.list()
	if err != nil {
		log.WithError(err).Error("Error walking grib files")
		return nil, nil, err
	}

	for _, file := range files {
		if _, found := w.winds[file]; found {
			continue
		}

		wind, err := Load(w.dir, file)
		if err != nil {
			log.WithError(err).Errorf("Error loading grib file '%s'", file)
			continue
		}
		log.Debugf("Init %s", wind.File)
		w.winds[file] = wind
	}

	files = w.files()
	if len(files) == 0 {
		return nil, nil, nil
	}
	watchers := make([]*Watcher, len(w.watchers))
	copy(watchers, w.watchers)
	return w.winds[files[len(files)-1]], watchers, nil
}
