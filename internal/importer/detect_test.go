package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEntity(t *testing.T) {
	tests := []struct {
		filename string
		entity   string
	}{
		{"users.xlsx", "User"},
		{"Users 11.16.25 04.53.xlsx", "User"},
		{"outlets.xlsx", "Outlet"},
		{"assets.xlsx", "Asset"},
		{"Ghost_Assets 11.16.25.xlsx", "GhostAsset"},
		{"ghost-asset.xlsx", "GhostAsset"},
		{"smartdevices.xlsx", "SmartDevice"},
		{"Smart_Devices Export.csv", "SmartDevice"},
		{"movements.xlsx", "Movement"},
		{"health_events.xlsx", "HealthEvent"},
		{"HealthEvents-2023.csv", "HealthEvent"},
		{"health.csv", "HealthEvent"},
		{"HEALTH.CSV", "HealthEvent"},
		{"door_events.csv", "DoorEvent"},
		{"door.csv", "DoorEvent"},
		{"alerts.csv", "Alert"},
		{"Alert Definition11.16.25 04.53.XLSX", "AlertsDefinition"},
		{"alerts_definition.xlsx", "AlertsDefinition"},
		{"clients.csv", "Client"},
		{"subclients.csv", "SubClient"},
		{"Sub_Clients 2024.csv", "SubClient"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			ent, ok := DetectEntity(tt.filename)
			require.True(t, ok)
			assert.Equal(t, tt.entity, ent.Name)
		})
	}
}

func TestDetectEntityUnknown(t *testing.T) {
	for _, name := range []string{"quarterly_report.xlsx", "random_report.csv", "readme.csv", ""} {
		_, ok := DetectEntity(name)
		assert.False(t, ok, "filename %q", name)
	}
}

func TestDetectEntityIsDeterministic(t *testing.T) {
	// Names where one entity's pattern contains another's must always
	// resolve to the more specific entity.
	first, ok := DetectEntity("subclients.csv")
	require.True(t, ok)
	for i := 0; i < 100; i++ {
		ent, ok := DetectEntity("subclients.csv")
		require.True(t, ok)
		assert.Equal(t, first.Name, ent.Name)
	}
}
