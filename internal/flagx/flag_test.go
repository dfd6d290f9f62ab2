package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "flag followed by another flag takes no value",
			args:         []string{"-p", "-notvalue"},
			allowedFlags: []string{"-p"},
			want:         []string{"-p"},
		},
		{
			name:         "several allowed flags keep their order",
			args:         []string{"-a", "http://127.0.0.1:8080", "-c", "conf.json", "-p", "/login", "--other", "x"},
			allowedFlags: []string{"-a", "-p"},
			want:         []string{"-a", "http://127.0.0.1:8080", "-p", "/login"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	assert.Equal(t, "a.json", JsonConfigFlags([]string{"-c", "a.json", "-a", "http://x"}))
	assert.Equal(t, "b.json", JsonConfigFlags([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", JsonConfigFlags([]string{"--config=c.json"}))
	assert.Equal(t, "", JsonConfigFlags([]string{"-a", "http://x"}))
	assert.Equal(t, "", JsonConfigFlags(nil))
}
