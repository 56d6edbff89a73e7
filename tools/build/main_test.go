package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdFlags(t *testing.T) {
	tests := []struct {
		name    string
		opts    buildOptions
		wantGUI bool
	}{
		{"windows tray", buildOptions{goos: "windows"}, true},
		{"windows console", buildOptions{goos: "windows", console: true}, false},
		{"linux", buildOptions{goos: "linux"}, false},
		{"darwin", buildOptions{goos: "darwin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := ldFlags(tt.opts)
			if tt.wantGUI {
				assert.Contains(t, flags, "-H=windowsgui")
			} else {
				assert.NotContains(t, flags, "-H=windowsgui")
			}
		})
	}
}

func TestLdFlags_StampsVersion(t *testing.T) {
	flags := ldFlags(buildOptions{goos: "windows", version: "1.2.0", commit: "abc123", buildTime: "now", strip: true})

	assert.Contains(t, flags, "-w -s")
	assert.Contains(t, flags, "-X main.appVersion=1.2.0")
	assert.Contains(t, flags, "-X main.commitSHA=abc123")
	assert.Contains(t, flags, "-X main.buildTime=now")
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "build/theme-toggle.exe", defaultOutput("windows"))
	assert.Equal(t, "build/theme-toggle", defaultOutput("linux"))
}
