package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladfi1/libmelee/profile"
)

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()

	exe := filepath.Join(dir, "dolphin-emu")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "melee.iso")
	require.NoError(t, os.WriteFile(plain, []byte("GALE01"), 0o644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"executable file", exe, true},
		{"plain file", plain, false},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isExecutable(tt.path))
		})
	}
}

func TestDolphinArgs(t *testing.T) {
	tests := []struct {
		name string
		d    profile.Dolphin
		want []string
	}{
		{"nothing", profile.Dolphin{}, nil},
		{"iso", profile.Dolphin{ISO: "/games/melee.iso"}, []string{"-e", "/games/melee.iso"}},
		{
			"everything",
			profile.Dolphin{ISO: "melee.iso", UserDir: "/tmp/user", Args: []string{"--batch"}},
			[]string{"-e", "melee.iso", "-u", "/tmp/user", "--batch"},
		},
		{"extra only", profile.Dolphin{Args: []string{"-b"}}, []string{"-b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dolphinArgs(tt.d))
		})
	}
}

func TestFindDolphinExecutableConfigured(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "dolphin")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	got, err := findDolphinExecutable(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = findDolphinExecutable(filepath.Join(dir, "missing"))
	assert.Error(t, err, "a configured path is never substituted")
}

func TestFindDolphinExecutableOnPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "dolphin-emu")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)
	t.Setenv("HOME", t.TempDir())

	got, err := findDolphinExecutable("")
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}

func TestWaitForStream(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		probe := func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}
		err := waitForStream(context.Background(), probe, time.Second, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("times out", func(t *testing.T) {
		probe := func(context.Context) error { return errors.New("connection refused") }
		err := waitForStream(context.Background(), probe, 20*time.Millisecond, 5*time.Millisecond)
		require.Error(t, err)
		assert.ErrorIs(t, err, errStreamTimeout)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		probe := func(context.Context) error { return errors.New("connection refused") }
		err := waitForStream(ctx, probe, time.Second, time.Millisecond)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
