package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		level   logrus.Level
		json    bool
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}, level: logrus.InfoLevel},
		{name: "debug json", cfg: Config{Level: "debug", Format: "json"}, level: logrus.DebugLevel, json: true},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if logger.GetLevel() != tt.level {
				t.Errorf("level = %v, want %v", logger.GetLevel(), tt.level)
			}
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.json {
				t.Errorf("json formatter = %v, want %v", isJSON, tt.json)
			}
		})
	}
}
