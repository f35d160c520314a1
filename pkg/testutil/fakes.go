package testutil

import (
	"context"
	"sync"
)

// InstallCall is one recorded FakeInstaller call.
type InstallCall struct {
	Dir      string
	Packages []string
	Dev      bool
}

// FakeInstaller records install calls and returns Err.
type FakeInstaller struct {
	mu    sync.Mutex
	Err   error
	calls []InstallCall
}

// Install records the call.
func (f *FakeInstaller) Install(_ context.Context, dir string, packages []string, dev bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, InstallCall{
		Dir:      dir,
		Packages: append([]string(nil), packages...),
		Dev:      dev,
	})
	return f.Err
}

// Calls returns the recorded calls.
func (f *FakeInstaller) Calls() []InstallCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]InstallCall(nil), f.calls...)
}
