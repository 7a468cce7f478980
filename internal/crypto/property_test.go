package crypto

import (
	"bytes"
	"testing"
	"testing/quick"
)

func TestPropertyDeriveDeterministic(t *testing.T) {
	f := func(seed Seed) bool {
		a, err := DeriveKeypair(seed[:])
		if err != nil {
			return false
		}
		b, err := DeriveKeypair(seed[:])
		return err == nil && a == b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertySignVerifyRoundTrip(t *testing.T) {
	f := func(seed Seed, message []byte) bool {
		kp, err := DeriveKeypair(seed[:])
		if err != nil {
			return false
		}
		sig, err := Sign(message, kp.PrivateKey[:])
		if err != nil {
			return false
		}
		ok, err := Verify(message, sig[:], kp.PublicKey[:])
		return err == nil && ok
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyOtherMessageFails(t *testing.T) {
	f := func(seed Seed, m1 []byte, m2 []byte) bool {
		if bytes.Equal(m1, m2) {
			return true
		}
		kp, err := DeriveKeypair(seed[:])
		if err != nil {
			return false
		}
		sig, err := Sign(m1, kp.PrivateKey[:])
		if err != nil {
			return false
		}
		ok, err := Verify(m2, sig[:], kp.PublicKey[:])
		return err == nil && !ok
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestPropertyOtherKeyFails(t *testing.T) {
	f := func(s1 Seed, s2 Seed, message []byte) bool {
		if s1 == s2 {
			return true
		}
		k1, err := DeriveKeypair(s1[:])
		if err != nil {
			return false
		}
		k2, err := DeriveKeypair(s2[:])
		if err != nil {
			return false
		}
		sig, err := Sign(message, k1.PrivateKey[:])
		if err != nil {
			return false
		}
		ok, err := Verify(message, sig[:], k2.PublicKey[:])
		return err == nil && !ok
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
