package app

import (
	"testing"

	"github.com/resonara/resonara_backend/internal/repo"
)

func TestTakerEmail(t *testing.T) {
	addr := "taker@example.com"
	blank := ""

	tests := []struct {
		name   string
		taker  *repo.Taker
		want   string
		wantOK bool
	}{
		{
			name:   "email set",
			taker:  &repo.Taker{Email: &addr},
			want:   addr,
			wantOK: true,
		},
		{
			name:   "email never recorded",
			taker:  &repo.Taker{},
			want:   "",
			wantOK: false,
		},
		{
			name:   "email blank",
			taker:  &repo.Taker{Email: &blank},
			want:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := takerEmail(tt.taker)
			if ok != tt.wantOK {
				t.Errorf("takerEmail() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("takerEmail() = %q, want %q", got, tt.want)
			}
		})
	}
}
