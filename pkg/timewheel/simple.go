package timewheel

import (
	"sync"
	"time"
)

// SimpleTimeWheel 单层时间轮，用于心跳这类允许 1 个 tick 误差的延迟任务。
// 同一个 key 重复 Add 会覆盖旧任务。
type SimpleTimeWheel[T any] struct {
	interval time.Duration
	slotNum  int

	mu      sync.Mutex
	slots   []map[string]*task[T]
	current int
	keys    map[string]int // key -> slot index

	handler func(*SimpleTimeWheel[T], string, T)

	stopOnce sync.Once
	stopCh   chan struct{}
}

type task[T any] struct {
	key    string
	value  T
	rounds int
}

func NewSimpleTimeWheel[T any](interval time.Duration, slotNum int, handler func(*SimpleTimeWheel[T], string, T)) *SimpleTimeWheel[T] {
	w := &SimpleTimeWheel[T]{
		interval: interval,
		slotNum:  slotNum,
		slots:    make([]map[string]*task[T], slotNum),
		keys:     make(map[string]int),
		handler:  handler,
		stopCh:   make(chan struct{}),
	}
	for i := range w.slots {
		w.slots[i] = make(map[string]*task[T])
	}
	return w
}

func (w *SimpleTimeWheel[T]) Start() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *SimpleTimeWheel[T]) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

func (w *SimpleTimeWheel[T]) Add(key string, value T, delay time.Duration) {
	ticks := int(delay / w.interval)
	if ticks < 1 {
		ticks = 1
	}

	w.mu.Lock()
	if idx, ok := w.keys[key]; ok {
		delete(w.slots[idx], key)
	}
	idx := (w.current + ticks%w.slotNum) % w.slotNum
	w.slots[idx][key] = &task[T]{
		key:    key,
		value:  value,
		rounds: ticks / w.slotNum,
	}
	w.keys[key] = idx
	w.mu.Unlock()
}

func (w *SimpleTimeWheel[T]) Remove(key string) {
	w.mu.Lock()
	if idx, ok := w.keys[key]; ok {
		delete(w.slots[idx], key)
		delete(w.keys, key)
	}
	w.mu.Unlock()
}

func (w *SimpleTimeWheel[T]) tick() {
	w.mu.Lock()
	w.current = (w.current + 1) % w.slotNum
	slot := w.slots[w.current]

	var due []*task[T]
	for key, t := range slot {
		if t.rounds > 0 {
			t.rounds--
			continue
		}
		due = append(due, t)
		delete(slot, key)
		delete(w.keys, key)
	}
	w.mu.Unlock()

	// 回调放到锁外，handler 里可以继续 Add
	for _, t := range due {
		go w.handler(w, t.key, t.value)
	}
}
