package keylock_test

import (
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/utils/keylock"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := keylock.New()

	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := kl.Lock("req-1")
			defer unlock()
			counter++
		}()
	}

	wg.Wait()
	gt.N(t, counter).Equal(100)
}

func TestKeyLock_IndependentKeys(t *testing.T) {
	kl := keylock.New()

	unlockA := kl.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := kl.Lock("b")
		unlockB()
		close(done)
	}()

	// Lock on "b" must not wait for "a"
	<-done
	unlockA()
}
