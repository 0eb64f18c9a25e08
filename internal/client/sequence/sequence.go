// Package sequence выдает серверные номера запросов, по которым сервер
// распознает повторную отправку одного и того же запроса.
package sequence

import (
	"context"
	"fmt"
	"sync"
)

// ControlKey - ключ счетчика в таблице requestcontrol
const ControlKey = "nextserverrequestnr"

// ControlStore хранит счетчик между запусками
type ControlStore interface {
	ControlValue(ctx context.Context, key string) (int64, bool, error)
	SetControlValue(ctx context.Context, key string, value int64) error
}

// Counter - логические часы Лампорта между клиентом и сервером:
// next = max(local, server) + 1
type Counter struct {
	counter int64      // последний выданный номер
	loaded  bool       // counter синхронизирован с ControlStore
	mu      sync.Mutex // мьютекс для потокобезопасности
}

// New создает счетчик; значение читается из хранилища при первом Next
func New() *Counter {
	return &Counter{}
}

// Next возвращает следующий номер с учетом счетчика сервера и сохраняет его.
// Вызывается внутри транзакции, в которой номер записывается в запрос.
func (c *Counter) Next(ctx context.Context, store ControlStore, serverCounter int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		value, _, err := store.ControlValue(ctx, ControlKey)
		if err != nil {
			return 0, fmt.Errorf("failed to load server request counter: %w", err)
		}
		if value > c.counter {
			c.counter = value
		}
		c.loaded = true
	}

	next := c.counter
	if serverCounter > next {
		next = serverCounter
	}
	next++

	if err := store.SetControlValue(ctx, ControlKey, next); err != nil {
		// транзакция откатится, следующий вызов перечитает значение
		c.loaded = false
		return 0, fmt.Errorf("failed to save server request counter: %w", err)
	}

	c.counter = next
	return next, nil
}

// Current возвращает последний выданный номер без его изменения
func (c *Counter) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counter
}

// Reset сбрасывает счетчик, например после EmptyAll
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter = 0
	c.loaded = false
}
