package service

import (
	"sync"

	"github.com/MKhiriev/notesync/models"
)

// eventBus fans engine events out to subscribers and callbacks. Publishing
// never blocks: a subscriber whose buffer is full misses the event, while
// callbacks registered with listen queue every event of their kind.
type eventBus struct {
	mu        sync.Mutex
	next      uint64
	subs      map[uint64]chan models.SyncEvent
	listeners map[uint64]*listener
	closed    bool
}

func newEventBus() *eventBus {
	return &eventBus{
		subs:      make(map[uint64]chan models.SyncEvent),
		listeners: make(map[uint64]*listener),
	}
}

func (b *eventBus) subscribe(buffer int) (<-chan models.SyncEvent, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan models.SyncEvent, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.next++
	id := b.next
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *eventBus) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// publish delivers ev to every subscriber and matching callback and reports
// how many subscribers dropped it.
func (b *eventBus) publish(ev models.SyncEvent) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, l := range b.listeners {
		if l.kind == ev.Kind {
			l.enqueue(ev)
		}
	}

	dropped := 0
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			dropped++
		}
	}
	return dropped
}

func (b *eventBus) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	for id, l := range b.listeners {
		delete(b.listeners, id)
		close(l.done)
	}
}

// listen runs fn for every event of kind on its own goroutine until the
// returned function is called or the bus is closed. Events are handled in
// publish order; a slow fn delays later events but never loses them.
func (b *eventBus) listen(kind models.SyncEventKind, fn func(models.SyncEvent)) func() {
	l := &listener{
		kind: kind,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return func() {}
	}
	b.next++
	id := b.next
	b.listeners[id] = l
	b.mu.Unlock()

	go l.run(fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.listeners[id]; ok {
				delete(b.listeners, id)
				close(l.done)
			}
		})
	}
}

type listener struct {
	kind  models.SyncEventKind
	mu    sync.Mutex
	queue []models.SyncEvent
	wake  chan struct{}
	done  chan struct{}
}

func (l *listener) enqueue(ev models.SyncEvent) {
	l.mu.Lock()
	l.queue = append(l.queue, ev)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *listener) run(fn func(models.SyncEvent)) {
	for {
		select {
		case <-l.done:
			return
		case <-l.wake:
		}

		for {
			l.mu.Lock()
			if len(l.queue) == 0 {
				l.mu.Unlock()
				break
			}
			ev := l.queue[0]
			l.queue = l.queue[1:]
			l.mu.Unlock()

			select {
			case <-l.done:
				return
			default:
			}
			fn(ev)
		}
	}
}
