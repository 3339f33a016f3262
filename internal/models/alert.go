package models

import "time"

// Alert is a raised condition on an asset (temperature breach, offline
// device, unauthorized movement and so on).
type Alert struct {
	ID                     string     `gorm:"column:id;primaryKey"`
	AlertType              *string    `gorm:"column:alert_type"`
	AlertText              *string    `gorm:"column:alert_text"`
	AlertDefinition        *string    `gorm:"column:alert_definition"`
	Status                 *string    `gorm:"column:status"`
	VisitCheck             *string    `gorm:"column:visit_check"`
	AssetSerialNumber      *string    `gorm:"column:asset_serial_number"`
	SmartDeviceSerialNo    *string    `gorm:"column:smart_device_serial_number"`
	AssetEquipmentNumber   *string    `gorm:"column:asset_equipment_number"`
	AssetTechnicalIDNumber *string    `gorm:"column:asset_technical_identification_number"`
	AssetType              *string    `gorm:"column:asset_type"`
	Street                 *string    `gorm:"column:street"`
	Street2                *string    `gorm:"column:street_2"`
	Street3                *string    `gorm:"column:street_3"`
	IsSmart                *bool      `gorm:"column:is_smart"`
	AlertAt                *time.Time `gorm:"column:alert_at"`
	StatusChangedOn        *time.Time `gorm:"column:status_changed_on"`
	Priority               *string    `gorm:"column:priority"`
	Age                    *string    `gorm:"column:age"`
	AlertAgeInMinutes      *float64   `gorm:"column:alert_age_in_minutes"`
	Value                  *string    `gorm:"column:value"`
	LastUpdate             *time.Time `gorm:"column:last_update"`
	Outlet                 *string    `gorm:"column:outlet"`
	OutletCode             *string    `gorm:"column:outlet_code"`
	OutletType             *string    `gorm:"column:outlet_type"`
	OutletCity             *string    `gorm:"column:outlet_city"`
	Client                 *string    `gorm:"column:client"`
	TimeZone               *string    `gorm:"column:time_zone"`
	Month                  *string    `gorm:"column:month"`
	Day                    *string    `gorm:"column:day"`
	DayOfWeek              *string    `gorm:"column:day_of_week"`
	WeekOfYear             *string    `gorm:"column:week_of_year"`
	Market                 *string    `gorm:"column:market"`
	TradeChannel           *string    `gorm:"column:trade_channel"`
	CustomerTier           *string    `gorm:"column:customer_tier"`
	SalesOrganization      *string    `gorm:"column:sales_organization"`
	SalesOffice            *string    `gorm:"column:sales_office"`
	SalesGroup             *string    `gorm:"column:sales_group"`
	SalesTerritory         *string    `gorm:"column:sales_territory"`
	SalesRep               *string    `gorm:"column:sales_rep"`
	IsSystemAlert          *bool      `gorm:"column:is_system_alert"`
	AcknowledgeComment     *string    `gorm:"column:acknowledge_comment"`
	CreatedOn              *time.Time `gorm:"column:created_on"`
}

func (Alert) TableName() string {
	return "alerts"
}

// AlertsDefinition is a per-client alert rule: thresholds and targeting.
// Rule names are unique within a vendor export, so they serve as the key.
type AlertsDefinition struct {
	Name                     string     `gorm:"column:name;primaryKey"`
	Type                     *string    `gorm:"column:type"`
	AssetSerialNumber        *string    `gorm:"column:asset_serial_number"`
	Priority                 *string    `gorm:"column:priority"`
	IsActive                 *bool      `gorm:"column:is_active"`
	OpenAlert                *int64     `gorm:"column:open_alert"`
	UpdatedAlert             *int64     `gorm:"column:updated_alert"`
	MovementDetected         *int64     `gorm:"column:movement_detected"`
	PowerOffDuration         *int64     `gorm:"column:power_off_duration"`
	TemperatureBelow         *int64     `gorm:"column:temperature_below"`
	TemperatureAbove         *int64     `gorm:"column:temperature_above"`
	OfflineAlertTime         *int64     `gorm:"column:offline_alert_time"`
	OnlineAlertTime          *int64     `gorm:"column:online_alert_time"`
	MissingFaultyTime        *int64     `gorm:"column:missing_faulty_time"`
	CoolerDisconnectThreshold *int64    `gorm:"column:cooler_disconnect_threshold"`
	AlertAgeThreshold        *int64     `gorm:"column:alert_age_threshold"`
	ProlongedIrregularityMin *int64     `gorm:"column:prolonged_irregularity_min"`
	NoDataThreshold          *int64     `gorm:"column:no_data_threshold"`
	BatteryOpenThreshold     *int64     `gorm:"column:battery_open_threshold"`
	BatteryCloseThreshold    *int64     `gorm:"column:battery_close_threshold"`
	StockThreshold           *int64     `gorm:"column:stock_threshold"`
	PurityThreshold          *int64     `gorm:"column:purity_threshold"`
	PlanogramThreshold       *int64     `gorm:"column:planogram_threshold"`
	GPSDisplacementThreshold *int64     `gorm:"column:gps_displacement_threshold"`
	MotionAvailableTime      *int64     `gorm:"column:motion_available_time"`
	ParDisplacementMeter     *int64     `gorm:"column:par_displacement_meter"`
	ColasThreshold           *int64     `gorm:"column:colas_threshold"`
	FlavoursThreshold        *int64     `gorm:"column:flavours_threshold"`
	ColasFlavours            *int64     `gorm:"column:colas_flavours"`
	LaneThreshold            *int64     `gorm:"column:lane_threshold"`
	MinStock                 *int64     `gorm:"column:min_stock"`
	AlertText                *string    `gorm:"column:alert_text"`
	DailyAlert               *string    `gorm:"column:daily_alert"`
	Client                   *string    `gorm:"column:client"`
	Outlet                   *string    `gorm:"column:outlet"`
	SalesOrganization        *string    `gorm:"column:sales_organization"`
	TradeChannel             *string    `gorm:"column:trade_channel"`
	City                     *string    `gorm:"column:city"`
	State                    *string    `gorm:"column:state"`
	SalesRep                 *string    `gorm:"column:sales_rep"`
	Supervisor               *string    `gorm:"column:supervisor"`
	SolutionType             *string    `gorm:"column:solution_type"`
	IsSystemAlert            *bool      `gorm:"column:is_system_alert"`
	CreatedOn                *time.Time `gorm:"column:created_on"`
	CreatedBy                *string    `gorm:"column:created_by"`
	ModifiedOn               *time.Time `gorm:"column:modified_on"`
	ModifiedBy               *string    `gorm:"column:modified_by"`
}

func (AlertsDefinition) TableName() string {
	return "alerts_definitions"
}
