package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New()

	if !l.Allow("a", 2, 0) {
		t.Fatalf("first call should be allowed")
	}
	if !l.Allow("a", 2, 0) {
		t.Fatalf("second call should be allowed")
	}
	if l.Allow("a", 2, 0) {
		t.Fatalf("third call should be denied, bucket is empty")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatalf("key a should be allowed")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("key a should be exhausted")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("key b has its own bucket")
	}
}

func TestAllowRefillsOverTime(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 100) {
		t.Fatalf("first call should be allowed")
	}
	if l.Allow("a", 1, 100) {
		t.Fatalf("bucket should be empty immediately after")
	}

	time.Sleep(50 * time.Millisecond) // 100 tokens/s refills well past one token
	if !l.Allow("a", 1, 100) {
		t.Fatalf("bucket should have refilled")
	}
}
