package crypto

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestServiceConcurrentUse(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)

	rec := newFakeRecorder()
	svc := NewSigningService(WithLogger(logrus.NewEntry(log)), WithRecorder(rec), WithPrimitive(ConsensusPrimitive{}))

	const workers = 16
	const rounds = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			seed := bytes.Repeat([]byte{byte(w + 1)}, SeedSize)
			for i := 0; i < rounds; i++ {
				kp, err := svc.DeriveKeypair(seed)
				if err != nil {
					errs <- fmt.Errorf("worker %d keypair: %w", w, err)
					return
				}
				if !bytes.Equal(kp.PrivateKey[:SeedSize], seed) {
					errs <- fmt.Errorf("worker %d got another worker's key", w)
					return
				}

				message := []byte(fmt.Sprintf("worker %d round %d", w, i))
				sig, err := svc.Sign(message, kp.PrivateKey[:])
				if err != nil {
					errs <- fmt.Errorf("worker %d sign: %w", w, err)
					return
				}

				ok, err := svc.Verify(message, sig[:], kp.PublicKey[:])
				if err != nil || !ok {
					errs <- fmt.Errorf("worker %d verify: ok=%v err=%v", w, ok, err)
					return
				}
				ok, err = svc.Verify([]byte("other"), sig[:], kp.PublicKey[:])
				if err != nil || ok {
					errs <- fmt.Errorf("worker %d mismatch: ok=%v err=%v", w, ok, err)
					return
				}
				if _, err := svc.SignValue("text", kp.PrivateKey); err == nil {
					errs <- fmt.Errorf("worker %d: text message accepted", w)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	total := workers * rounds
	for key, want := range map[string]int{
		"derive_keypair/ok": total,
		"sign/ok":           total,
		"verify/valid":      total,
		"verify/invalid":    total,
	} {
		if rec.operations[key] != want {
			t.Fatalf("%s: got %d want %d", key, rec.operations[key], want)
		}
	}
	if rec.rejections["sign/message"] != total {
		t.Fatalf("sign/message rejections: got %d want %d", rec.rejections["sign/message"], total)
	}
}
