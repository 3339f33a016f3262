package models

import "time"

// Movement is a cooler relocation event reported by the device. StartTime is
// mandatory; the importer drops rows without one.
type Movement struct {
	ID                string     `gorm:"column:id;primaryKey"`
	MovementType      *string    `gorm:"column:movement_type"`
	StartTime         *time.Time `gorm:"column:start_time"`
	EndTime           *time.Time `gorm:"column:end_time"`
	Duration          *float64   `gorm:"column:duration"`
	Latitude          *float64   `gorm:"column:latitude"`
	Longitude         *float64   `gorm:"column:longitude"`
	MovementCount     *int64     `gorm:"column:movement_count"`
	DoorOpen          *bool      `gorm:"column:door_open"`
	DisplacementMeter *float64   `gorm:"column:displacement_meter"`
	AccuracyMeter     *float64   `gorm:"column:accuracy_meter"`
	PowerStatus       *string    `gorm:"column:power_status"`
	AppName           *string    `gorm:"column:app_name"`
	AppVersion        *string    `gorm:"column:app_version"`
	SDKVersion        *string    `gorm:"column:sdk_version"`
	DataUploadedBy    *string    `gorm:"column:data_uploaded_by"`
	GPSSource         *string    `gorm:"column:gps_source"`
	EventID           *string    `gorm:"column:event_id"`
	CreatedOn         *time.Time `gorm:"column:created_on"`
	GatewayMAC        *string    `gorm:"column:gateway_mac"`
	GatewayNumber     *string    `gorm:"column:gateway_number"`
	AssetType         *string    `gorm:"column:asset_type"`
	Month             *string    `gorm:"column:month"`
	Day               *string    `gorm:"column:day"`
	DayOfWeek         *string    `gorm:"column:day_of_week"`
	WeekOfYear        *string    `gorm:"column:week_of_year"`
	AssetSerialNumber *string    `gorm:"column:asset_serial_number"`
	TechnicalID       *string    `gorm:"column:technical_id"`
	EquipmentNumber   *string    `gorm:"column:equipment_number"`
	SmartDeviceMAC    *string    `gorm:"column:smart_device_mac"`
	SmartDeviceNumber *string    `gorm:"column:smart_device_number"`
	IsSmart           *bool      `gorm:"column:is_smart"`
	SmartDeviceType   *string    `gorm:"column:smart_device_type"`
	Outlet            *string    `gorm:"column:outlet"`
	OutletCode        *string    `gorm:"column:outlet_code"`
	OutletType        *string    `gorm:"column:outlet_type"`
	TimeZone          *string    `gorm:"column:time_zone"`
	Client            *string    `gorm:"column:client"`
	SubClient         *string    `gorm:"column:sub_client"`
}

func (Movement) TableName() string {
	return "movements"
}

// HealthEvent is a periodic telemetry sample: temperatures, light, power
// and battery readings for one cooler.
type HealthEvent struct {
	ID                           string     `gorm:"column:id;primaryKey"`
	EventType                    *string    `gorm:"column:event_type"`
	Light                        *float64   `gorm:"column:light"`
	LightStatus                  *string    `gorm:"column:light_status"`
	TemperatureC                 *float64   `gorm:"column:temperature_c"`
	EvaporatorTemperatureC       *float64   `gorm:"column:evaporator_temperature_c"`
	CondensorTemperatureC        *float64   `gorm:"column:condensor_temperature_c"`
	TemperatureF                 *float64   `gorm:"column:temperature_f"`
	EvaporatorTemperatureF       *float64   `gorm:"column:evaporator_temperature_f"`
	CondensorTemperatureF        *float64   `gorm:"column:condensor_temperature_f"`
	Battery                      *float64   `gorm:"column:battery"`
	BatteryStatus                *string    `gorm:"column:battery_status"`
	IntervalMin                  *float64   `gorm:"column:interval_min"`
	CoolerVoltageV               *float64   `gorm:"column:cooler_voltage_v"`
	MaxVoltageV                  *float64   `gorm:"column:max_voltage_v"`
	MinVoltageV                  *float64   `gorm:"column:min_voltage_v"`
	AvgPowerConsumptionWatt      *float64   `gorm:"column:avg_power_consumption_watt"`
	TotalCompressorOnTimePercent *float64   `gorm:"column:total_compressor_on_time_percent"`
	MaxCabinetTemperatureC       *float64   `gorm:"column:max_cabinet_temperature_c"`
	MinCabinetTemperatureC       *float64   `gorm:"column:min_cabinet_temperature_c"`
	AmbientTemperatureC          *float64   `gorm:"column:ambient_temperature_c"`
	MaxCabinetTemperatureF       *float64   `gorm:"column:max_cabinet_temperature_f"`
	MinCabinetTemperatureF       *float64   `gorm:"column:min_cabinet_temperature_f"`
	AmbientTemperatureF          *float64   `gorm:"column:ambient_temperature_f"`
	AppName                      *string    `gorm:"column:app_name"`
	AppVersion                   *string    `gorm:"column:app_version"`
	SDKVersion                   *string    `gorm:"column:sdk_version"`
	DataUploadedBy               *string    `gorm:"column:data_uploaded_by"`
	AssetCategory                *string    `gorm:"column:asset_category"`
	EventID                      *string    `gorm:"column:event_id"`
	CreatedOn                    *time.Time `gorm:"column:created_on"`
	EventTime                    *time.Time `gorm:"column:event_time"`
	GatewayMAC                   *string    `gorm:"column:gateway_mac"`
	GatewayNumber                *string    `gorm:"column:gateway_number"`
	AssetType                    *string    `gorm:"column:asset_type"`
	Month                        *string    `gorm:"column:month"`
	Day                          *string    `gorm:"column:day"`
	DayOfWeek                    *string    `gorm:"column:day_of_week"`
	WeekOfYear                   *string    `gorm:"column:week_of_year"`
	AssetSerialNumber            *string    `gorm:"column:asset_serial_number"`
	TechnicalID                  *string    `gorm:"column:technical_id"`
	EquipmentNumber              *string    `gorm:"column:equipment_number"`
	SmartDeviceMAC               *string    `gorm:"column:smart_device_mac"`
	SmartDeviceNumber            *string    `gorm:"column:smart_device_number"`
	IsSmart                      *bool      `gorm:"column:is_smart"`
	SmartDeviceType              *string    `gorm:"column:smart_device_type"`
	Outlet                       *string    `gorm:"column:outlet"`
	OutletCode                   *string    `gorm:"column:outlet_code"`
	OutletType                   *string    `gorm:"column:outlet_type"`
	TimeZone                     *string    `gorm:"column:time_zone"`
	Client                       *string    `gorm:"column:client"`
	SubClient                    *string    `gorm:"column:sub_client"`
}

func (HealthEvent) TableName() string {
	return "health_events"
}

// DoorEvent is one door open/close cycle.
type DoorEvent struct {
	ID                   string     `gorm:"column:id;primaryKey"`
	OpenEventTime        *time.Time `gorm:"column:open_event_time"`
	CloseEventTime       *time.Time `gorm:"column:close_event_time"`
	EventType            *string    `gorm:"column:event_type"`
	DoorOpenDurationSec  *float64   `gorm:"column:door_open_duration_sec"`
	TimeOfDay            *string    `gorm:"column:time_of_day"`
	WeekdayWeekend       *string    `gorm:"column:weekday_weekend"`
	HourInDay            *int64     `gorm:"column:hour_in_day"`
	DoorCount            *int64     `gorm:"column:door_count"`
	AdditionalInfo       *string    `gorm:"column:additional_info"`
	OutletTerritory      *string    `gorm:"column:outlet_territory"`
	Door                 *string    `gorm:"column:door"`
	CapacityType         *string    `gorm:"column:capacity_type"`
	DoorOpenTarget       *float64   `gorm:"column:door_open_target"`
	DoorOpenTemperature  *float64   `gorm:"column:door_open_temperature"`
	DoorCloseTemperature *float64   `gorm:"column:door_close_temperature"`
	AppName              *string    `gorm:"column:app_name"`
	AppVersion           *string    `gorm:"column:app_version"`
	SDKVersion           *string    `gorm:"column:sdk_version"`
	DataUploadedBy       *string    `gorm:"column:data_uploaded_by"`
	AssetCategory        *string    `gorm:"column:asset_category"`
	EventID              *string    `gorm:"column:event_id"`
	CreatedOn            *time.Time `gorm:"column:created_on"`
	GatewayMAC           *string    `gorm:"column:gateway_mac"`
	GatewayNumber        *string    `gorm:"column:gateway_number"`
	AssetType            *string    `gorm:"column:asset_type"`
	Month                *string    `gorm:"column:month"`
	Day                  *string    `gorm:"column:day"`
	DayOfWeek            *string    `gorm:"column:day_of_week"`
	WeekOfYear           *string    `gorm:"column:week_of_year"`
	AssetSerialNumber    *string    `gorm:"column:asset_serial_number"`
	TechnicalID          *string    `gorm:"column:technical_id"`
	EquipmentNumber      *string    `gorm:"column:equipment_number"`
	SmartDeviceMAC       *string    `gorm:"column:smart_device_mac"`
	SmartDeviceNumber    *string    `gorm:"column:smart_device_number"`
	IsSmart              *bool      `gorm:"column:is_smart"`
	SmartDeviceType      *string    `gorm:"column:smart_device_type"`
	Outlet               *string    `gorm:"column:outlet"`
	OutletCode           *string    `gorm:"column:outlet_code"`
	OutletType           *string    `gorm:"column:outlet_type"`
	TimeZone             *string    `gorm:"column:time_zone"`
	Client               *string    `gorm:"column:client"`
	SubClient            *string    `gorm:"column:sub_client"`
}

func (DoorEvent) TableName() string {
	return "door_events"
}
