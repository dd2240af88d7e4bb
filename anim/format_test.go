package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		text    string
		want    Format
		wantErr bool
	}{
		{text: "gif", want: GIF},
		{text: "png", want: PNG},
		{text: "html", want: HTML},
		{text: "csv", want: CSV},
		{text: "json", want: JSON},
		{text: "GIF", wantErr: true},
		{text: "jpeg", wantErr: true},
		{text: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.text)
		if tt.wantErr {
			assert.Error(t, err, tt.text)
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.text, err)
			continue
		}
		assert.Equal(t, tt.want, got, tt.text)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{GIF, PNG, HTML, CSV, JSON} {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("round trip %v -> %v", f, got)
		}
		assert.Equal(t, "."+f.String(), f.Ext())
	}
}
