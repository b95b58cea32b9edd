package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialFromTopic(t *testing.T) {
	cases := []struct {
		name  string
		topic string
		want  string
	}{
		{"well formed", "devices/SN-1234/status", "SN-1234"},
		{"serial with slash-free uuid", "devices/0a1b2c3d/status", "0a1b2c3d"},
		{"wrong prefix", "sensors/SN-1234/status", ""},
		{"wrong suffix", "devices/SN-1234/state", ""},
		{"empty serial", "devices//status", ""},
		{"bare topic", "status", ""},
		{"empty topic", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serialFromTopic(tc.topic))
		})
	}
}
