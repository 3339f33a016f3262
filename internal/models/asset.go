package models

import "time"

// Asset is a cooler. The OEM serial number is the fleet-wide identity;
// bottler equipment numbers and technical ids are carried as attributes
// because they are not unique across clients.
type Asset struct {
	OEMSerialNumber               string     `gorm:"column:oem_serial_number;primaryKey"`
	AssetType                     *string    `gorm:"column:asset_type"`
	BottlerEquipmentNumber        *string    `gorm:"column:bottler_equipment_number"`
	TechnicalID                   *string    `gorm:"column:technical_id"`
	AssetPing                     *time.Time `gorm:"column:asset_ping"`
	Category                      *string    `gorm:"column:category"`
	IsCompetition                 *bool      `gorm:"column:is_competition"`
	IsFactoryAsset                *bool      `gorm:"column:is_factory_asset"`
	AssociatedInFactory           *bool      `gorm:"column:associated_in_factory"`
	Outlet                        *string    `gorm:"column:outlet"`
	OutletCode                    *string    `gorm:"column:outlet_code"`
	OutletType                    *string    `gorm:"column:outlet_type"`
	StoreLocation                 *string    `gorm:"column:store_location"`
	TradeChannel                  *string    `gorm:"column:trade_channel"`
	CustomerTier                  *string    `gorm:"column:customer_tier"`
	SubTradeChannel               *string    `gorm:"column:sub_trade_channel"`
	SalesOrganization             *string    `gorm:"column:sales_organization"`
	SalesOffice                   *string    `gorm:"column:sales_office"`
	SalesGroup                    *string    `gorm:"column:sales_group"`
	SalesTerritory                *string    `gorm:"column:sales_territory"`
	Issue                         *string    `gorm:"column:issue"`
	SmartDevice                   *string    `gorm:"column:smart_device"`
	SmartDeviceType               *string    `gorm:"column:smart_device_type"`
	SmartDevicePing               *string    `gorm:"column:smart_device_ping"`
	Gateway                       *string    `gorm:"column:gateway"`
	GatewayType                   *string    `gorm:"column:gateway_type"`
	GatewayPing                   *string    `gorm:"column:gateway_ping"`
	LastScan                      *time.Time `gorm:"column:last_scan"`
	VisitScanStatus               *string    `gorm:"column:visit_scan_status"`
	Client                        *string    `gorm:"column:client"`
	City                          *string    `gorm:"column:city"`
	Street                        *string    `gorm:"column:street"`
	Street2                       *string    `gorm:"column:street_2"`
	Street3                       *string    `gorm:"column:street_3"`
	State                         *string    `gorm:"column:state"`
	Country                       *string    `gorm:"column:country"`
	PrimePosition                 *bool      `gorm:"column:prime_position"`
	IsMissing                     *bool      `gorm:"column:is_missing"`
	IsVision                      *bool      `gorm:"column:is_vision"`
	IsSmart                       *bool      `gorm:"column:is_smart"`
	IsAuthorizedMovement          *bool      `gorm:"column:is_authorized_movement"`
	IsUnhealthy                   *bool      `gorm:"column:is_unhealthy"`
	Latitude                      *float64   `gorm:"column:latitude"`
	Longitude                     *float64   `gorm:"column:longitude"`
	LastKnownLatitude             *float64   `gorm:"column:last_known_latitude"`
	LastKnownLongitude            *float64   `gorm:"column:last_known_longitude"`
	GeolocationSource             *string    `gorm:"column:geolocation_source"`
	LocationAccuracy              *float64   `gorm:"column:location_accuracy"`
	DisplacementMeter             *float64   `gorm:"column:displacement_meter"`
	IsPowerOn                     *bool      `gorm:"column:is_power_on"`
	LatestHealthRecordEventTime   *time.Time `gorm:"column:latest_health_record_event_time"`
	BatteryLevel                  *float64   `gorm:"column:battery_level"`
	BatteryStatus                 *string    `gorm:"column:battery_status"`
	Planogram                     *string    `gorm:"column:planogram"`
	ResponsibleBDUsername         *string    `gorm:"column:responsible_bd_username"`
	ResponsibleBDFirstName        *string    `gorm:"column:responsible_bd_first_name"`
	ResponsibleBDPhoneNumber      *string    `gorm:"column:responsible_bd_phone_number"`
	IoTSolution                   *string    `gorm:"column:iot_solution"`
	HasSIM                        *bool      `gorm:"column:has_sim"`
	AssetAssociatedOn             *time.Time `gorm:"column:asset_associated_on"`
	GatewayAssociatedOn           *time.Time `gorm:"column:gateway_associated_on"`
	AcquisitionDate               *time.Time `gorm:"column:acquisition_date"`
	AssociatedByBDUserName        *string    `gorm:"column:associated_by_bd_user_name"`
	AssociatedByBDName            *string    `gorm:"column:associated_by_bd_name"`
	GatewayAssociatedByBDUserName *string    `gorm:"column:gateway_associated_by_bd_user_name"`
	GatewayAssociatedByBDName     *string    `gorm:"column:gateway_associated_by_bd_name"`
	TimeZone                      *string    `gorm:"column:time_zone"`
	CreatedOn                     *time.Time `gorm:"column:created_on"`
	CreatedBy                     *string    `gorm:"column:created_by"`
	ModifiedOn                    *time.Time `gorm:"column:modified_on"`
	ModifiedBy                    *string    `gorm:"column:modified_by"`
	CapacityType                  *string    `gorm:"column:capacity_type"`
	SubClient                     *string    `gorm:"column:sub_client"`
	LatestMovementRecordEventTime *time.Time `gorm:"column:latest_movement_record_event_time"`
	LatestPowerRecordEventTime    *time.Time `gorm:"column:latest_power_record_event_time"`
	LocationStatus                *string    `gorm:"column:location_status"`
	LastLocationStatusOn          *time.Time `gorm:"column:last_location_status_on"`
	LatestLocationStatusOn        *time.Time `gorm:"column:latest_location_status_on"`
	StaticLatitude                *float64   `gorm:"column:static_latitude"`
	StaticLongitude               *float64   `gorm:"column:static_longitude"`
	StaticMovementStatus          *string    `gorm:"column:static_movement_status"`
}

func (Asset) TableName() string {
	return "assets"
}

// GhostAsset is a cooler sighted in the field that does not match any
// commissioned asset. Kept separate so the main fleet stays clean.
type GhostAsset struct {
	ID                string     `gorm:"column:id;primaryKey"`
	SerialNumber      *string    `gorm:"column:serial_number"`
	AssetSerialNumber *string    `gorm:"column:asset_serial_number"`
	EquipmentNumber   *string    `gorm:"column:equipment_number"`
	MACAddress        *string    `gorm:"column:mac_address"`
	Manufacturer      *string    `gorm:"column:manufacturer"`
	Latitude          *float64   `gorm:"column:latitude"`
	Longitude         *float64   `gorm:"column:longitude"`
	Address           *string    `gorm:"column:address"`
	City              *string    `gorm:"column:city"`
	Country           *string    `gorm:"column:country"`
	ReportedBy        *string    `gorm:"column:reported_by"`
	ReporterClient    *string    `gorm:"column:reporter_client"`
	ReportedOn        *time.Time `gorm:"column:reported_on"`
	IsCommissioned    *bool      `gorm:"column:is_commissioned"`
	ClientID          *string    `gorm:"column:client_id"`
}

func (GhostAsset) TableName() string {
	return "ghost_assets"
}
