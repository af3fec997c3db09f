package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				ID:      "doc-1",
				Content: "Hello world",
			},
			wantErr: nil,
		},
		{
			name: "valid document with metadata",
			doc: &Document{
				ID:       "doc-2",
				Content:  "Hello again",
				Metadata: map[string]any{"namespace": "n1"},
			},
			wantErr: nil,
		},
		{
			name: "valid document with nil metadata",
			doc: &Document{
				ID:       "doc-3",
				Content:  "No metadata",
				Metadata: nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name: "empty identity",
			doc: &Document{
				Content: "orphaned content",
			},
			wantErr: ErrEmptyIdentity,
		},
		{
			name: "empty content",
			doc: &Document{
				ID: "doc-4",
			},
			wantErr: ErrEmptyContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateDocument() error = nil, want %v", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("ValidateDocument() error = %v, want it wrapped in ErrInvalidDocument", err)
			}
		})
	}
}
