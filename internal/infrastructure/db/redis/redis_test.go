package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestConnect_Succeeds(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), DB: 3})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	opts := client.Options()
	if opts.DB != 3 {
		t.Fatalf("expected db 3, got %d", opts.DB)
	}
	if opts.PoolSize != defaultPoolSize || opts.DialTimeout != defaultDialTimeout {
		t.Fatalf("defaults not applied: pool=%d dial=%s", opts.PoolSize, opts.DialTimeout)
	}
}

func TestConnect_AppliesPoolAndTimeout(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), PoolSize: 4, DialTimeout: time.Second})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	if opts := client.Options(); opts.PoolSize != 4 || opts.DialTimeout != time.Second {
		t.Fatalf("unexpected options: pool=%d dial=%s", opts.PoolSize, opts.DialTimeout)
	}
}

func TestConnect_Password(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "s3cret"})
	if err != nil {
		t.Fatalf("connect with password: %v", err)
	}
	_ = client.Close()

	if _, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "wrong"}); err == nil {
		t.Fatal("expected wrong password to fail")
	}
	if _, err := Connect(context.Background(), Config{Addr: mr.Addr()}); err == nil {
		t.Fatal("expected missing password to fail")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Config{Addr: addr, DialTimeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatal("expected error for a closed server")
	}
	if !strings.Contains(err.Error(), addr) {
		t.Fatalf("error should name the address: %v", err)
	}
}
