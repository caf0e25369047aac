package ports

// Clock is a monotonic time source that keeps counting across system sleep
type Clock interface {
	// NowMs returns milliseconds since an arbitrary fixed origin
	NowMs() int64
}
