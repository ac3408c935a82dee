package main

import "testing"

func TestUpstreamURLFromArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     string
		host    string
		ssh     bool
		want    string
		wantErr bool
	}{
		{
			name: "owner/repo over ssh",
			arg:  "acme/widgets",
			host: "github.com",
			ssh:  true,
			want: "git@github.com:acme/widgets.git",
		},
		{
			name: "owner/repo over https",
			arg:  "acme/widgets",
			host: "gitlab.example.com",
			want: "https://gitlab.example.com/acme/widgets.git",
		},
		{
			name: "full ssh url passed through",
			arg:  "git@github.com:acme/widgets.git",
			host: "ignored.example.com",
			want: "git@github.com:acme/widgets.git",
		},
		{
			name: "full https url passed through",
			arg:  "https://github.com/acme/widgets",
			host: "ignored.example.com",
			want: "https://github.com/acme/widgets",
		},
		{
			name:    "malformed url rejected",
			arg:     "https://",
			wantErr: true,
		},
		{
			name:    "bare word rejected",
			arg:     "widgets",
			host:    "github.com",
			wantErr: true,
		},
		{
			name: "nested gitlab group spec",
			arg:  "acme/platform/widgets",
			host: "gitlab.com",
			ssh:  true,
			want: "git@gitlab.com:acme/platform/widgets.git",
		},
		{
			name:    "trailing slash rejected",
			arg:     "acme/widgets/",
			host:    "github.com",
			wantErr: true,
		},
		{
			name:    "empty owner rejected",
			arg:     "/widgets",
			host:    "github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := upstreamURLFromArg(tt.arg, tt.host, tt.ssh)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("upstreamURLFromArg(%q) = %q, want error", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("upstreamURLFromArg(%q) error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("upstreamURLFromArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
