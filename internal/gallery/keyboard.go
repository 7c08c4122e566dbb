package gallery

import "sync"

// Key is a key name as reported by the client
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// KeySource delivers key presses to subscribers. The returned func unsubscribes.
type KeySource interface {
	Subscribe(fn func(Key)) (unsubscribe func())
}

// KeyboardBus is an in-process KeySource
type KeyboardBus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Key)
}

// NewKeyboardBus creates an empty bus
func NewKeyboardBus() *KeyboardBus {
	return &KeyboardBus{listeners: make(map[int]func(Key))}
}

// Subscribe registers fn
func (b *KeyboardBus) Subscribe(fn func(Key)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers key to every listener
func (b *KeyboardBus) Dispatch(key Key) {
	b.mu.Lock()
	fns := make([]func(Key), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// Listeners returns the number of registered listeners
func (b *KeyboardBus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
