package base64_test

import (
	"testing"

	"campusbook/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "png data uri", in: "data:image/png;base64,iVBORw0KGgo=", want: "image/png"},
		{name: "jpeg data uri", in: "data:image/jpeg;base64,/9j/4AAQ", want: "image/jpeg"},
		{name: "missing marker", in: "image/png;iVBORw0KGgo=", want: ""},
		{name: "empty string", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base64.GetContentType(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
