package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	known := []string{"-d", "-c", "-config"}

	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantRest  []string
	}{
		{
			name:      "subcommand after flags",
			args:      []string{"-d", "memory", "set-password", "a@example.com"},
			wantFlags: []string{"-d", "memory"},
			wantRest:  []string{"set-password", "a@example.com"},
		},
		{
			name:      "equals form and unknown flag",
			args:      []string{"-config=app.json", "sweep", "-y"},
			wantFlags: []string{"-config=app.json"},
			wantRest:  []string{"sweep", "-y"},
		},
		{
			name:      "unknown equals form stays in rest",
			args:      []string{"--level=debug", "migrate"},
			wantFlags: []string{},
			wantRest:  []string{"--level=debug", "migrate"},
		},
		{
			name:      "known flag without value",
			args:      []string{"migrate", "-c", "-d", "memory"},
			wantFlags: []string{"-c", "-d", "memory"},
			wantRest:  []string{"migrate"},
		},
		{
			name:      "empty",
			args:      nil,
			wantFlags: []string{},
			wantRest:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, rest := Split(tt.args, known)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestFilterArgs(t *testing.T) {
	got := FilterArgs([]string{"-a", ":9090", "-x", "1", "-l=:8081"}, []string{"-a", "-l"})
	assert.Equal(t, []string{"-a", ":9090", "-l=:8081"}, got)
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-d", "memory", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"bin", "-config=other.json", "migrate"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"bin", "migrate"}
	assert.Empty(t, JsonConfigFlags())
}
