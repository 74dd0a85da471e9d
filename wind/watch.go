package wind

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/angle-server/angle"
)

type Notifier interface {
	Send(message string) error
}

// Watcher follows the wind at one position and sends a message when it moves
// to another compass sector.
type Watcher struct {
	Name     string
	Lat      float64
	Lon      float64
	Wiggle   float64
	notifier Notifier

	lock      sync.Mutex
	seen      bool
	direction float64
}

func NewWatcher(name string, lat, lon, wiggle float64, notifier Notifier) *Watcher {
	return &Watcher{
		Name:     name,
		Lat:      lat,
		Lon:      lon,
		Wiggle:   wiggle,
		notifier: notifier,
	}
}

// Check compares the wind with the last direction that was reported. Shifts
// smaller than Wiggle are ignored and the reference direction stays put, so
// a slow drift is still reported once it adds up.
func (wa *Watcher) Check(w *Wind) (bool, error) {
	wa.lock.Lock()
	defer wa.lock.Unlock()

	direction, speed := w.Interpolate(wa.Lat, wa.Lon)

	if !wa.seen {
		wa.seen = true
		wa.direction = direction
		log.Debugf("Watch %s starts at %s", wa.Name, angle.Explain2(direction))
		return false, nil
	}

	if angle.EqualsWithin(wa.direction, direction, wa.Wiggle) {
		return false, nil
	}

	from := angle.Explain2(wa.direction)
	to := angle.Explain2(direction)
	if from == to {
		return false, nil
	}

	shift := "veered"
	if angle.DifferenceSign(direction, wa.direction) > 0 {
		shift = "backed"
	}
	wa.direction = direction

	message := fmt.Sprintf("%s: wind %s from %s to %s, %.0f° %.1f kt", wa.Name, shift, from, to, Compass(direction), speed*MsToKts)
	log.Info(message)

	return true, wa.notifier.Send(message)
}
