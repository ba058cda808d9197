package main

import (
	"testing"

	"hue/internal/config"
)

func TestResolveAddr(t *testing.T) {
	tests := []struct {
		name     string
		flagHost string
		flagPort string
		want     string
		wantErr  bool
	}{
		{"config values", "", "", "localhost:8080", false},
		{"flag port wins", "", "9090", "localhost:9090", false},
		{"flag host wins", "0.0.0.0", "", "0.0.0.0:8080", false},
		{"both flags", "127.0.0.1", "3000", "127.0.0.1:3000", false},
		{"port not a number", "", "nope", "", true},
		{"port out of range", "", "70000", "", true},
		{"port zero", "", "0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldHost, oldPort := serveHost, servePort
			defer func() { serveHost, servePort = oldHost, oldPort }()
			serveHost, servePort = tt.flagHost, tt.flagPort

			addr, err := resolveAddr(config.DefaultConfig())

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error for invalid port")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveAddr returned error: %v", err)
			}
			if addr != tt.want {
				t.Errorf("resolveAddr() = %q, want %q", addr, tt.want)
			}
		})
	}
}
