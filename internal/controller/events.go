package controller

import "sync"

// Events управляет подписчиками на снимки состояния контроллера.
// Слой представления подписывается и получает новый снимок после
// каждого изменения состояния.
type Events struct {
	subscribers map[chan State]bool
	mu          sync.RWMutex
}

// NewEvents создает новый экземпляр Events
func NewEvents() *Events {
	return &Events{
		subscribers: make(map[chan State]bool),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения снимков
func (e *Events) Subscribe() chan State {
	ch := make(chan State, 16) // Буферизованный канал для защиты от backpressure
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (e *Events) Unsubscribe(ch chan State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.subscribers[ch]; ok {
		close(ch)
		delete(e.subscribers, ch)
	}
}

// Publish отправляет снимок всем подписчикам.
// Если канал подписчика переполнен, снимок пропускается — подписчик
// в любом случае получит более свежий следующим.
func (e *Events) Publish(snapshot State) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for ch := range e.subscribers {
		select {
		case ch <- snapshot:
			// Снимок успешно отправлен
		default:
			// Канал переполнен, пропускаем
		}
	}
}
