package cmd

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/ardnew/seedmap/almanac"
)

func TestReplRun_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{
			name:    "missing_source",
			source:  filepath.Join(t.TempDir(), "missing.txt"),
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "malformed_source",
			source:  writeSource(t, "bad.txt", "seeds: x\n"),
			wantErr: almanac.ErrMalformedSeeds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Repl{Source: tt.source}

			err := r.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
