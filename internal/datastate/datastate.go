// Package datastate carries the status of one asynchronous load: a loading
// flag switched on, then a result or an error, then the loading flag
// switched off.
package datastate

import "context"

type Kind int

const (
	KindLoading Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is one emission. Loading is meaningful for KindLoading, Data for
// KindSuccess and Message for KindError.
type State[T any] struct {
	Kind    Kind
	Loading bool
	Data    T
	Message string
}

func Loading[T any](loading bool) State[T] {
	return State[T]{Kind: KindLoading, Loading: loading}
}

func Success[T any](data T) State[T] {
	return State[T]{Kind: KindSuccess, Data: data}
}

func Error[T any](message string) State[T] {
	return State[T]{Kind: KindError, Message: message}
}

// emissions per Run: loading-start, result, loading-end.
const streamSize = 3

// Run executes fn on its own goroutine and reports through the returned
// channel: Loading(true), then Success or Error, then Loading(false). The
// channel is closed afterwards. It is buffered for every emission, so a
// consumer may stop reading at any point without leaking the producer.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan State[T] {
	out := make(chan State[T], streamSize)
	go func() {
		defer close(out)
		out <- Loading[T](true)
		defer func() { out <- Loading[T](false) }()

		data, err := fn(ctx)
		if err != nil {
			out <- Error[T](err.Error())
			return
		}
		out <- Success(data)
	}()
	return out
}

// Result is the outcome of a drained stream.
type Result[T any] struct {
	Data    T
	OK      bool
	Message string
}

// Collect drains states, calling onLoading for every loading transition, and
// returns the result it carried. A stream without a result (for example a
// write that reported nothing) yields OK=false and an empty Message.
func Collect[T any](states <-chan State[T], onLoading func(bool)) Result[T] {
	var res Result[T]
	for st := range states {
		switch st.Kind {
		case KindLoading:
			if onLoading != nil {
				onLoading(st.Loading)
			}
		case KindSuccess:
			res = Result[T]{Data: st.Data, OK: true}
		case KindError:
			res = Result[T]{Message: st.Message}
		}
	}
	return res
}

// Map converts the Success payloads of in with fn and forwards every other
// emission unchanged.
func Map[T, U any](in <-chan State[T], fn func(T) U) <-chan State[U] {
	out := make(chan State[U], streamSize)
	go func() {
		defer close(out)
		for st := range in {
			switch st.Kind {
			case KindLoading:
				out <- Loading[U](st.Loading)
			case KindSuccess:
				out <- Success(fn(st.Data))
			case KindError:
				out <- Error[U](st.Message)
			}
		}
	}()
	return out
}
