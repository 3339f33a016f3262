package models

import "time"

// Client is a bottler tenant with its portal configuration and alerting
// thresholds.
type Client struct {
	ID                                 string     `gorm:"column:id;primaryKey"`
	ClientCode                         *string    `gorm:"column:client_code"`
	ClientName                         *string    `gorm:"column:client_name"`
	RelevantBusinessStream             *string    `gorm:"column:relevant_business_stream"`
	Status                             *string    `gorm:"column:status"`
	Contact                            *string    `gorm:"column:contact"`
	Subdomain                          *string    `gorm:"column:subdomain"`
	IsFeedbackEnabled                  *bool      `gorm:"column:is_feedback_enabled"`
	TimeZone                           *string    `gorm:"column:time_zone"`
	VisionImageIntervalHours           *float64   `gorm:"column:vision_image_interval_hours"`
	VisionImageIntervalDoorOpen        *int64     `gorm:"column:vision_image_interval_door_open"`
	OutOfStockSKU                      *int64     `gorm:"column:out_of_stock_sku"`
	PowerOffDuration                   *int64     `gorm:"column:power_off_duration"`
	TemperatureMin                     *float64   `gorm:"column:temperature_min"`
	TemperatureMax                     *float64   `gorm:"column:temperature_max"`
	LightMin                           *int64     `gorm:"column:light_min"`
	LightMax                           *int64     `gorm:"column:light_max"`
	DoorCount                          *int64     `gorm:"column:door_count"`
	HealthIntervalsHours               *int64     `gorm:"column:health_intervals_hours"`
	CoolerTrackingThresholdDays        *int64     `gorm:"column:cooler_tracking_threshold_days"`
	CoolerTrackingDisplacementThresholdMtr *float64 `gorm:"column:cooler_tracking_displacement_threshold_mtr"`
	GeolocationAPIKey                  *string    `gorm:"column:geolocation_api_key"`
	CreatedOn                          *time.Time `gorm:"column:created_on"`
	CreatedBy                          *string    `gorm:"column:created_by"`
	ModifiedOn                         *time.Time `gorm:"column:modified_on"`
	ModifiedBy                         *string    `gorm:"column:modified_by"`
	FallenMagnetThreshold              *int64     `gorm:"column:fallen_magnet_threshold"`
	VHEnabled                          *bool      `gorm:"column:vh_enabled"`
	Country                            *string    `gorm:"column:country"`
	ShippedCountry                     *string    `gorm:"column:shipped_country"`
	ManualProcessingMode               *bool      `gorm:"column:manual_processing_mode"`
	IsVisitFromPing                    *bool      `gorm:"column:is_visit_from_ping"`
	DistanceInMeter                    *int64     `gorm:"column:distance_in_meter"`
	ThresholdInMinutes                 *int64     `gorm:"column:threshold_in_minutes"`
	LimitLocationDistance              *bool      `gorm:"column:limit_location_distance"`
	SurveyDistance                     *int64     `gorm:"column:survey_distance"`
	SceneMode                          *string    `gorm:"column:scene_mode"`
	Currency                           *string    `gorm:"column:currency"`
	EnablePicToPog                     *bool      `gorm:"column:enable_pic_to_pog"`
	Role                               *string    `gorm:"column:role"`
	DefaultRecognitionMode             *string    `gorm:"column:default_recognition_mode"`
	DisableGeoDataCollection           *bool      `gorm:"column:disable_geo_data_collection"`
}

func (Client) TableName() string {
	return "clients"
}

// SubClient is a sales division inside a client. Vendor exports carry no id
// for these, so the importer synthesizes one from code and parent client.
type SubClient struct {
	ID            string  `gorm:"column:id;primaryKey"`
	SubclientName *string `gorm:"column:subclient_name"`
	SubclientCode *string `gorm:"column:subclient_code"`
	SceneMode     *string `gorm:"column:scene_mode"`
	Client        *string `gorm:"column:client"`
}

func (SubClient) TableName() string {
	return "sub_clients"
}
