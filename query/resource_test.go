package query

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philjs-dev/philjs/vnode"
)

func TestNewResource(t *testing.T) {
	fetcher := func() (string, error) {
		return "data", nil
	}

	r := New(fetcher)

	require.NotNil(t, r)
}

func TestResourceSuccess(t *testing.T) {
	done := make(chan struct{})
	fetcher := func() (string, error) {
		return "success", nil
	}

	r := New(fetcher).OnSuccess(func(data string) {
		assert.Equal(t, "success", data)
		close(done)
	})

	select {
	case <-done:
		assert.True(t, r.IsReady())
		assert.Equal(t, "success", r.Data())
		assert.NoError(t, r.Error())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for resource success")
	}
}

func TestResourceError(t *testing.T) {
	done := make(chan struct{})
	expectedErr := errors.New("fail")

	fetcher := func() (string, error) {
		return "", expectedErr
	}

	r := New(fetcher).OnError(func(err error) {
		assert.Equal(t, expectedErr, err)
		close(done)
	})

	select {
	case <-done:
		assert.True(t, r.IsError())
		assert.Equal(t, expectedErr, r.Error())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for resource error")
	}
}

func TestResourceStaleTime(t *testing.T) {
	calls := 0
	fetcher := func() (string, error) {
		calls++
		return "data", nil
	}

	done := make(chan struct{})
	r := New(fetcher).
		StaleTime(100 * time.Millisecond).
		OnSuccess(func(string) {
			if calls == 1 {
				close(done)
			}
		})

	<-done

	// Fetch immediately should not trigger a new fetch due to StaleTime.
	r.Fetch()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 1, calls)

	// After StaleTime passes, Fetch should trigger a new fetch.
	time.Sleep(150 * time.Millisecond)
	r.Fetch()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestResourceRefetch(t *testing.T) {
	calls := 0
	fetcher := func() (string, error) {
		calls++
		return "data", nil
	}

	done := make(chan struct{})
	r := New(fetcher).OnSuccess(func(string) {
		if calls == 1 {
			close(done)
		}
	})

	<-done

	// Refetch forces a new fetch regardless of StaleTime (which defaults to 0).
	r.Refetch()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestResourceMutate(t *testing.T) {
	r := New(func() (int, error) { return 0, nil })
	time.Sleep(10 * time.Millisecond)

	r.Mutate(func(n int) int {
		return n + 1
	})

	assert.Equal(t, 1, r.Data())
}

func textNode(s string) *vnode.VNode {
	return &vnode.VNode{Text: s}
}

func TestResourceMatch(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "hello", nil
	}).OnSuccess(func(string) {
		close(done)
	})

	<-done

	node := r.Match(
		OnPending[string](func() *vnode.VNode { return textNode("Pending") }),
		OnLoading[string](func() *vnode.VNode { return textNode("Loading") }),
		OnError[string](func(err error) *vnode.VNode { return textNode("Error") }),
		OnReady[string](func(data string) *vnode.VNode { return textNode(data) }),
	)

	require.NotNil(t, node)
	assert.Equal(t, "hello", node.Text)
}

func TestMatchLoadingOrPending(t *testing.T) {
	r := New(func() (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "", nil
	})

	node := r.Match(
		OnLoadingOrPending[string](func() *vnode.VNode { return textNode("Waiting") }),
		OnReady[string](func(s string) *vnode.VNode { return textNode(s) }),
	)

	require.NotNil(t, node)
	assert.Equal(t, "Waiting", node.Text)
}

func TestResourceState(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "data", nil
	}).OnSuccess(func(string) {
		close(done)
	})

	<-done

	assert.Equal(t, Ready, r.State())
}

func TestResourceIsLoading(t *testing.T) {
	r := New(func() (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "data", nil
	})

	assert.True(t, r.IsLoading())
}

func TestResourceDataOr(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "actual", nil
	}).OnSuccess(func(string) {
		close(done)
	})

	assert.NotEmpty(t, r.DataOr("fallback"))

	<-done
	assert.Equal(t, "actual", r.DataOr("fallback"))
}

func TestResourceDataOrWhenNotReady(t *testing.T) {
	r := New(func() (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "data", nil
	})

	assert.Equal(t, "fallback", r.DataOr("fallback"))
}

func TestResourceInvalidate(t *testing.T) {
	calls := 0
	done := make(chan struct{}, 2)

	r := New(func() (string, error) {
		calls++
		return "data", nil
	}).
		StaleTime(1 * time.Hour).
		OnSuccess(func(string) {
			done <- struct{}{}
		})

	<-done

	// Fetch shouldn't trigger a refetch due to the long StaleTime.
	r.Fetch()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, 1, calls)

	r.Invalidate()
	r.Fetch()
	<-done
	assert.Equal(t, 2, calls)
}

func TestResourceRetryOnError(t *testing.T) {
	attempts := 0
	done := make(chan struct{})

	r := New(func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("temporary error")
		}
		return "success", nil
	}).
		RetryOnError(3, 5*time.Millisecond).
		OnSuccess(func(string) {
			close(done)
		})

	select {
	case <-done:
		assert.Equal(t, 3, attempts)
		assert.Equal(t, "success", r.Data())
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for retry success")
	}
}

func TestResourceRetryOnErrorExhausted(t *testing.T) {
	attempts := 0
	done := make(chan struct{})

	r := New(func() (string, error) {
		attempts++
		return "", errors.New("permanent error")
	}).
		RetryOnError(2, 5*time.Millisecond).
		OnError(func(err error) {
			close(done)
		})

	select {
	case <-done:
		// 1 initial attempt + 2 retries.
		assert.Equal(t, 3, attempts)
		assert.True(t, r.IsError())
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for retry exhaustion")
	}
}

func TestMatchPending(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "data", nil
	}).OnSuccess(func(string) {
		close(done)
	})
	<-done

	node := r.Match(
		OnPending[string](func() *vnode.VNode { return textNode("Pending") }),
		OnReady[string](func(data string) *vnode.VNode { return textNode(data) }),
	)

	require.NotNil(t, node)
	assert.Equal(t, "data", node.Text)
}

func TestMatchError(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "", errors.New("failed")
	}).OnError(func(err error) {
		close(done)
	})

	<-done

	node := r.Match(
		OnError[string](func(err error) *vnode.VNode { return textNode(err.Error()) }),
		OnReady[string](func(data string) *vnode.VNode { return textNode(data) }),
	)

	require.NotNil(t, node)
	assert.Equal(t, "failed", node.Text)
}

func TestMatchNoHandlerMatches(t *testing.T) {
	done := make(chan struct{})
	r := New(func() (string, error) {
		return "data", nil
	}).OnSuccess(func(string) {
		close(done)
	})

	<-done

	// Only OnError is provided while the resource is Ready, so nothing matches.
	node := r.Match(
		OnError[string](func(err error) *vnode.VNode { return textNode("error") }),
	)

	assert.Nil(t, node)
}

func TestResourceOnSuccessOnError(t *testing.T) {
	successCalled := false
	done := make(chan struct{})

	New(func() (string, error) {
		return "data", nil
	}).OnSuccess(func(data string) {
		successCalled = true
		assert.Equal(t, "data", data)
		close(done)
	})

	<-done
	assert.True(t, successCalled)
}

func TestResourceOnErrorCallback(t *testing.T) {
	errorCalled := false
	done := make(chan struct{})
	expectedErr := errors.New("test error")

	New(func() (string, error) {
		return "", expectedErr
	}).OnError(func(err error) {
		errorCalled = true
		assert.Equal(t, expectedErr, err)
		close(done)
	})

	<-done
	assert.True(t, errorCalled)
}

func TestResourceStaleTimeChaining(t *testing.T) {
	r := New(func() (string, error) {
		return "data", nil
	}).StaleTime(5 * time.Second)

	require.NotNil(t, r)
}

func TestResourceRetryOnErrorChaining(t *testing.T) {
	r := New(func() (string, error) {
		return "data", nil
	}).RetryOnError(3, 100*time.Millisecond)

	require.NotNil(t, r)
}

func TestResourceOnSuccessChaining(t *testing.T) {
	r := New(func() (string, error) {
		return "data", nil
	}).OnSuccess(func(string) {})

	require.NotNil(t, r)
}

func TestResourceOnErrorChaining(t *testing.T) {
	r := New(func() (string, error) {
		return "", errors.New("error")
	}).OnError(func(error) {})

	require.NotNil(t, r)
}
