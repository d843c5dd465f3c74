package util

import "sync/atomic"

// SafeCounter is safe to use concurrently.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a new SafeCounter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int64 {
	return sc.value.Add(1)
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int64 {
	return sc.value.Load()
}

// Is reports whether the counter still holds v.
func (sc *SafeCounter) Is(v int64) bool {
	return sc.value.Load() == v
}

// SafeFlag is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag creates a new SafeFlag, initially false.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(newValue bool) bool {
	sf.value.Store(newValue)
	return newValue
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// TrySet sets the flag if it was clear and reports whether it did.
func (sf *SafeFlag) TrySet() bool {
	return sf.value.CompareAndSwap(false, true)
}
