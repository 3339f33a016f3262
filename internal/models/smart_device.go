package models

import "time"

// SmartDevice is the telemetry hardware mounted inside a cooler, keyed by
// MAC address.
type SmartDevice struct {
	MACAddress                  string     `gorm:"column:mac_address;primaryKey"`
	DeviceType                  *string    `gorm:"column:device_type"`
	Manufacturer                *string    `gorm:"column:manufacturer"`
	SerialNumber                *string    `gorm:"column:serial_number"`
	OrderSerialNumber           *string    `gorm:"column:order_serial_number"`
	ShippedCountry              *string    `gorm:"column:shipped_country"`
	DoorNo                      *string    `gorm:"column:door_no"`
	BottlerEquipmentNumber      *string    `gorm:"column:bottler_equipment_number"`
	TechnicalIdentificationNo   *string    `gorm:"column:technical_identification_number"`
	Gateway                     *string    `gorm:"column:gateway"`
	ManufacturerSerialNumber    *string    `gorm:"column:manufacturer_serial_number"`
	IMEI                        *string    `gorm:"column:imei"`
	SIMNumber                   *string    `gorm:"column:sim_number"`
	SIMProvider                 *string    `gorm:"column:sim_provider"`
	PluginConnectedFFXY         *bool      `gorm:"column:plugin_connected_ffxy"`
	LastPing                    *time.Time `gorm:"column:last_ping"`
	FirmwareVersion             *string    `gorm:"column:firmware_version"`
	IBeaconUUID                 *string    `gorm:"column:ibeacon_uuid"`
	IBeaconMajor                *string    `gorm:"column:ibeacon_major"`
	IBeaconMinor                *string    `gorm:"column:ibeacon_minor"`
	EddystoneUIDNamespace       *string    `gorm:"column:eddystone_uid_namespace"`
	EddystoneUIDInstance        *string    `gorm:"column:eddystone_uid_instance"`
	InventoryLocation           *string    `gorm:"column:inventory_location"`
	TrackingNumber              *string    `gorm:"column:tracking_number"`
	Client                      *string    `gorm:"column:client"`
	AssetType                   *string    `gorm:"column:asset_type"`
	LinkedWithAsset             *string    `gorm:"column:linked_with_asset"`
	IsFactoryAsset              *bool      `gorm:"column:is_factory_asset"`
	AssociatedInFactory         *bool      `gorm:"column:associated_in_factory"`
	AcquisitionDate             *time.Time `gorm:"column:acquisition_date"`
	AssetAssociatedOn           *time.Time `gorm:"column:asset_associated_on"`
	Association                 *string    `gorm:"column:association"`
	AssociatedByBDUserName      *string    `gorm:"column:associated_by_bd_user_name"`
	AssociatedByBDName          *string    `gorm:"column:associated_by_bd_name"`
	AssociatedByAppVersion      *string    `gorm:"column:associated_by_app_version"`
	AssociatedByAppName         *string    `gorm:"column:associated_by_app_name"`
	IsMissing                   *bool      `gorm:"column:is_missing"`
	Outlet                      *string    `gorm:"column:outlet"`
	OutletCode                  *string    `gorm:"column:outlet_code"`
	OutletType                  *string    `gorm:"column:outlet_type"`
	TradeChannel                *string    `gorm:"column:trade_channel"`
	CustomerTier                *string    `gorm:"column:customer_tier"`
	SubTradeChannel             *string    `gorm:"column:sub_trade_channel"`
	SalesOrganization           *string    `gorm:"column:sales_organization"`
	SalesOffice                 *string    `gorm:"column:sales_office"`
	SalesGroup                  *string    `gorm:"column:sales_group"`
	SalesTerritory              *string    `gorm:"column:sales_territory"`
	Street                      *string    `gorm:"column:street"`
	City                        *string    `gorm:"column:city"`
	State                       *string    `gorm:"column:state"`
	Country                     *string    `gorm:"column:country"`
	TimeZone                    *string    `gorm:"column:time_zone"`
	LatestHealthRecordEventTime *time.Time `gorm:"column:latest_health_record_event_time"`
	BatteryLevel                *float64   `gorm:"column:battery_level"`
	CreatedOn                   *time.Time `gorm:"column:created_on"`
	CreatedBy                   *string    `gorm:"column:created_by"`
	ModifiedOn                  *time.Time `gorm:"column:modified_on"`
	ModifiedBy                  *string    `gorm:"column:modified_by"`
	AdvertisementURL            *string    `gorm:"column:advertisement_url"`
	IsDeviceRegisteredInIoTHub  *bool      `gorm:"column:is_device_registered_in_iot_hub"`
	IsSDGateway                 *bool      `gorm:"column:is_sd_gateway"`
	SubClient                   *string    `gorm:"column:sub_client"`
	DeviceModelNumber           *string    `gorm:"column:device_model_number"`
	ModuleType                  *string    `gorm:"column:module_type"`
	SIMStatus                   *string    `gorm:"column:sim_status"`
	LastSIMStatusUpdatedOn      *time.Time `gorm:"column:last_sim_status_updated_on"`
}

func (SmartDevice) TableName() string {
	return "smart_devices"
}
