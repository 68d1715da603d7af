package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"exact match", "admin", "hunter2", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "hunter2", false},
		{"both wrong", "root", "wrong", false},
		{"empty credentials", "", "", false},
		{"case sensitive", "Admin", "hunter2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyCredentials(tt.username, tt.password, "admin", "hunter2")
			assert.Equal(t, tt.want, got)
		})
	}
}
