//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", false},
	}
	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv(MobileEmulateEnv, tt.env)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}
