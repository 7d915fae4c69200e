package store

import (
	"sync"

	"github.com/MKhiriev/founder-directory/models"
)

// changeFeedBuffer is the per-subscriber queue length. Events beyond it are
// dropped for that subscriber only.
const changeFeedBuffer = 64

// changeFeed fans committed store mutations out to subscribers without
// ever blocking the writer.
type changeFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan models.ChangeEvent
}

func newChangeFeed() *changeFeed {
	return &changeFeed{subs: make(map[int]chan models.ChangeEvent)}
}

func (c *changeFeed) subscribe() (<-chan models.ChangeEvent, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan models.ChangeEvent, changeFeedBuffer)
	c.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

func (c *changeFeed) publish(event models.ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, ch := range c.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
