package item

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "context_doc", want: KindContextDoc},
		{in: "framework_output", want: KindFrameworkOutput},
		{in: "note", wantErr: true},
		{in: "", wantErr: true},
		{in: "CONTEXT_DOC", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseKind(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
