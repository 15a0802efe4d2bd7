package timewheel

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSimpleTimeWheel_Fire(t *testing.T) {
	var fired int32
	obj := NewSimpleTimeWheel[int](
		10*time.Millisecond,
		10,
		func(wheel *SimpleTimeWheel[int], key string, value int) {
			atomic.AddInt32(&fired, 1)
		},
	)

	go obj.Start()
	defer obj.Stop()

	obj.Add("a", 1, 20*time.Millisecond)
	obj.Add("b", 2, 30*time.Millisecond)

	time.Sleep(200 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 2 {
		t.Fatalf("expected 2 fires, got %d", n)
	}
}

func TestSimpleTimeWheel_Remove(t *testing.T) {
	var fired int32
	obj := NewSimpleTimeWheel[int](
		10*time.Millisecond,
		10,
		func(wheel *SimpleTimeWheel[int], key string, value int) {
			atomic.AddInt32(&fired, 1)
		},
	)

	go obj.Start()
	defer obj.Stop()

	obj.Add("a", 1, 50*time.Millisecond)
	obj.Remove("a")

	time.Sleep(200 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 0 {
		t.Fatalf("removed task still fired %d times", n)
	}
}

// 同 key 重复 Add 只保留最后一个
func TestSimpleTimeWheel_Overwrite(t *testing.T) {
	var fired int32
	var last int32
	obj := NewSimpleTimeWheel[int](
		10*time.Millisecond,
		10,
		func(wheel *SimpleTimeWheel[int], key string, value int) {
			atomic.AddInt32(&fired, 1)
			atomic.StoreInt32(&last, int32(value))
		},
	)

	go obj.Start()
	defer obj.Stop()

	obj.Add("a", 1, 30*time.Millisecond)
	obj.Add("a", 2, 30*time.Millisecond)

	time.Sleep(200 * time.Millisecond)

	if n := atomic.LoadInt32(&fired); n != 1 {
		t.Fatalf("expected 1 fire, got %d", n)
	}
	if v := atomic.LoadInt32(&last); v != 2 {
		t.Fatalf("expected last value 2, got %d", v)
	}
}

// 回调里可以继续 Add，心跳就是这么循环的
func TestSimpleTimeWheel_Reschedule(t *testing.T) {
	var fired int32
	var wg sync.WaitGroup
	wg.Add(3)

	obj := NewSimpleTimeWheel[int](
		10*time.Millisecond,
		10,
		func(wheel *SimpleTimeWheel[int], key string, value int) {
			if atomic.AddInt32(&fired, 1) <= 3 {
				wg.Done()
				wheel.Add(key, value, 20*time.Millisecond)
			}
		},
	)

	go obj.Start()
	defer obj.Stop()

	obj.Add("hb", 1, 20*time.Millisecond)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("reschedule chain stalled, fired=%d", atomic.LoadInt32(&fired))
	}
}
