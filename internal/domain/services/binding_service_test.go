package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopdesk-http-service/internal/domain/models"
)

func device(id uint, deviceID string) models.Device {
	return models.Device{ID: id, DeviceID: deviceID}
}

func TestAvailableDevices(t *testing.T) {
	all := []models.Device{
		device(1, "DK-001"),
		device(2, "DK-002"),
		device(3, "DK-003"),
	}

	cases := []struct {
		name    string
		bound   []uint
		wantIDs []uint
	}{
		{"nothing bound", nil, []uint{1, 2, 3}},
		{"one bound", []uint{2}, []uint{1, 3}},
		{"all bound", []uint{1, 2, 3}, []uint{}},
		{"stale bound id ignored", []uint{99}, []uint{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := availableDevices(all, tc.bound)

			gotIDs := make([]uint, 0, len(got))
			for _, d := range got {
				gotIDs = append(gotIDs, d.ID)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
		})
	}
}

func TestAvailableDevicesEmptyInventory(t *testing.T) {
	got := availableDevices(nil, []uint{1})
	assert.Empty(t, got)
}
