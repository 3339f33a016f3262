package importer

// Kind is the coercion applied to a cell before it reaches the database.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// Mode controls what happens to rows whose key already exists. Master data
// (users, outlets, assets, smart devices) is insert-only so that a stale
// vendor export cannot clobber rows enriched through the portal; event
// entities are upserted because the vendor re-sends them with updated state.
type Mode int

const (
	ModeInsertOnly Mode = iota
	ModeUpsert
)

// Column maps one vendor header to a database column.
type Column struct {
	Header string
	Name   string
	Kind   Kind
}

func col(header, name string) Column  { return Column{header, name, KindString} }
func icol(header, name string) Column { return Column{header, name, KindInt} }
func fcol(header, name string) Column { return Column{header, name, KindFloat} }
func bcol(header, name string) Column { return Column{header, name, KindBool} }
func tcol(header, name string) Column { return Column{header, name, KindTime} }

// Entity describes how one vendor export maps onto a table.
type Entity struct {
	Name    string
	Table   string
	Columns []Column
	// KeyCol identifies a row within the table. Its vendor header must be
	// present in the file or the import aborts.
	KeyCol string
	Mode   Mode
	// Mandatory columns must survive coercion; rows where they end up null
	// are dropped.
	Mandatory []string
	// Finalize runs after coercion, before the key check. Used to
	// synthesize columns the vendor export does not carry.
	Finalize func(row map[string]interface{})
	// TouchesViews marks entities feeding the materialized views.
	TouchesViews bool

	byHeader map[string]Column
	byName   map[string]Column
}

// Knows reports whether a vendor header belongs to this entity's mapping.
func (e *Entity) Knows(header string) bool {
	_, ok := e.byHeader[header]
	return ok
}

// Lookup returns the column for a vendor header.
func (e *Entity) Lookup(header string) (Column, bool) {
	c, ok := e.byHeader[header]
	return c, ok
}

// ColumnKind returns the coercion kind for a database column name.
func (e *Entity) ColumnKind(name string) (Kind, bool) {
	c, ok := e.byName[name]
	return c.Kind, ok
}

func (e *Entity) index() {
	e.byHeader = make(map[string]Column, len(e.Columns))
	e.byName = make(map[string]Column, len(e.Columns))
	for _, c := range e.Columns {
		e.byHeader[c.Header] = c
		e.byName[c.Name] = c
	}
}

var userEntity = &Entity{
	Name:   "User",
	Table:  "users",
	KeyCol: "upn",
	Mode:   ModeInsertOnly,
	Columns: []Column{
		col("First Name", "first_name"),
		col("Last Name", "last_name"),
		col("User Name", "user_name"),
		col("UPN", "upn"),
		col("Email", "email"),
		col("Phone", "phone"),
		col("Role", "role"),
		col("Reporting Manager", "reporting_manager"),
		col("Preferred Notification Type", "preferred_notification_type"),
		col("Country", "country"),
		col("Responsible Country", "responsible_country"),
		bcol("Is Active?", "is_active"),
		col("Sales Organization", "sales_organization"),
		col("Sales Office", "sales_office"),
		col("Sales Group", "sales_group"),
		col("Sales Territory", "sales_territory"),
		col("Teleselling Territory", "teleselling_territory"),
		col("BD Territory Name", "bd_territory_name"),
		col("CA Territory Name", "ca_territory_name"),
		col("MC Territory Name", "mc_territory_name"),
		col("P1 Territory Name", "p1_territory_name"),
		col("P2 Territory Name", "p2_territory_name"),
		col("P3 Territory Name", "p3_territory_name"),
		col("P4 Territory Name", "p4_territory_name"),
		col("P5 Territory Name", "p5_territory_name"),
		col("NCB Territory Name", "ncb_territory_name"),
		tcol("Last Login On", "last_login_on"),
		col("Client", "client"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
		fcol("Reward Point", "reward_point"),
	},
}

var outletEntity = &Entity{
	Name:   "Outlet",
	Table:  "outlets",
	KeyCol: "code",
	Mode:   ModeInsertOnly,
	Columns: []Column{
		col("Name", "name"),
		col("Code", "code"),
		col("Outlet Type", "outlet_type"),
		bcol("Is Key Outlet?", "is_key_outlet"),
		bcol("Is Smart?", "is_smart"),
		col("Country", "country"),
		col("State", "state"),
		col("City", "city"),
		col("Street", "street"),
		col("Address 2", "address_2"),
		col("Address 3", "address_3"),
		col("Address 4", "address_4"),
		col("Postal Code", "postal_code"),
		col("Retailer", "retailer"),
		col("Primary Phone", "primary_phone"),
		col("Primary Sales Rep", "primary_sales_rep"),
		col("Sales Rep Name", "sales_rep_name"),
		col("Technician", "technician"),
		col("Market", "market"),
		col("Sales Target", "sales_target"),
		col("Client", "client"),
		fcol("Latitude", "latitude"),
		fcol("Longitude", "longitude"),
		col("Trade Channel", "trade_channel"),
		col("Trade Group", "trade_group"),
		col("Trade Group Code", "trade_group_code"),
		bcol("Is Active?", "is_active"),
		col("Customer Tier", "customer_tier"),
		col("Sub Trade Channel", "sub_trade_channel"),
		col("Sales Organization", "sales_organization"),
		col("Sales Office", "sales_office"),
		col("Sales Group", "sales_group"),
		col("Sales Territory", "sales_territory"),
		col("TeleSelling Territory Name", "teleselling_territory_name"),
		col("Business Developer Territory Name", "business_developer_territory_name"),
		col("Credit Approver Territory Name", "credit_approver_territory_name"),
		col("Merchandizer Territory Name", "merchandizer_territory_name"),
		col("P1_Territory Name", "p1_territory_name"),
		col("P2_Territory Name", "p2_territory_name"),
		col("P3_Territory Name", "p3_territory_name"),
		col("P4_Territory Name", "p4_territory_name"),
		col("P5_Territory Name", "p5_territory_name"),
		col("Reserve Route Name", "reserve_route_name"),
		col("RDCustomer Name", "rd_customer_name"),
		col("TimeZone", "time_zone"),
		col("Sub Client", "sub_client"),
		col("Cluster", "cluster"),
		col("Market Segment", "market_segment"),
		col("Segment", "segment"),
		col("Environment", "environment"),
		col("Assortment 1", "assortment_1"),
		col("Assortment 2", "assortment_2"),
		col("Assortment 3", "assortment_3"),
		col("Assortment 4", "assortment_4"),
		col("Assortment 5", "assortment_5"),
		col("BarCode", "barcode"),
		col("Local Cluster", "local_cluster"),
		col("Local TradeChannel", "local_trade_channel"),
		col("Chain", "chain"),
		col("Region Name", "region_name"),
		col("Mobile Phone", "mobile_phone"),
		col("Email", "email"),
		col("CPL Name", "cpl_name"),
		col("Extra Field", "extra_field"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
		col("BDAA", "bdaa"),
		col("CMMIND", "cmmind"),
		col("Combined Asset Capacity", "combined_asset_capacity"),
		col("ASM Name", "asm_name"),
		col("ASM Email", "asm_email"),
		col("TSM Name", "tsm_name"),
		col("TSM Email", "tsm_email"),
	},
}

var assetEntity = &Entity{
	Name:         "Asset",
	Table:        "assets",
	KeyCol:       "oem_serial_number",
	Mode:         ModeInsertOnly,
	TouchesViews: true,
	Columns: []Column{
		col("Asset Type", "asset_type"),
		col("Bottler Equipment Number", "bottler_equipment_number"),
		col("Technical Id", "technical_id"),
		col("OEM Serial Number", "oem_serial_number"),
		tcol("Asset Ping", "asset_ping"),
		col("Category", "category"),
		bcol("Is Competition?", "is_competition"),
		bcol("Is Factory Asset?", "is_factory_asset"),
		bcol("Associated in Factory", "associated_in_factory"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Store Location", "store_location"),
		col("Trade Channel", "trade_channel"),
		col("Customer Tier", "customer_tier"),
		col("Sub Trade Channel", "sub_trade_channel"),
		col("Sales Organization", "sales_organization"),
		col("Sales Office", "sales_office"),
		col("Sales Group", "sales_group"),
		col("Sales Territory", "sales_territory"),
		col("Issue", "issue"),
		col("Smart Device", "smart_device"),
		col("Smart Device Type", "smart_device_type"),
		col("Smart Device Ping", "smart_device_ping"),
		col("Gateway", "gateway"),
		col("Gateway Type", "gateway_type"),
		col("Gateway Ping", "gateway_ping"),
		tcol("Last Scan", "last_scan"),
		col("Visit (Scan) Status", "visit_scan_status"),
		col("Client", "client"),
		col("City", "city"),
		col("Street", "street"),
		col("Street 2", "street_2"),
		col("Street 3", "street_3"),
		col("State", "state"),
		col("Country", "country"),
		bcol("Prime position?", "prime_position"),
		bcol("Is Missing?", "is_missing"),
		bcol("Is Vision?", "is_vision"),
		bcol("Is Smart?", "is_smart"),
		bcol("Is Authorized Movement ?", "is_authorized_movement"),
		bcol("Is Unhealthy?", "is_unhealthy"),
		fcol("Latitude", "latitude"),
		fcol("Longitude", "longitude"),
		fcol("Last Known Latitude", "last_known_latitude"),
		fcol("Last Known Longitude", "last_known_longitude"),
		col("Geolocation Source", "geolocation_source"),
		fcol("Location Accuracy", "location_accuracy"),
		fcol("Displacement(Meter)", "displacement_meter"),
		bcol("Is Power On?", "is_power_on"),
		tcol("Latest Health Record Event Time", "latest_health_record_event_time"),
		fcol("Battery Level", "battery_level"),
		col("Battery Status", "battery_status"),
		col("Planogram", "planogram"),
		col("Responsible BD Username", "responsible_bd_username"),
		col("Responsible BD First Name", "responsible_bd_first_name"),
		col("Responsible BD Phone number", "responsible_bd_phone_number"),
		col("IOT Solution", "iot_solution"),
		bcol("Has Sim", "has_sim"),
		tcol("Asset Associated On", "asset_associated_on"),
		tcol("Gateway Associated On", "gateway_associated_on"),
		tcol("Acquisition Date", "acquisition_date"),
		col("Associated By BD User Name", "associated_by_bd_user_name"),
		col("Associated By BD Name", "associated_by_bd_name"),
		col("Gateway Associated By BD User Name", "gateway_associated_by_bd_user_name"),
		col("Gateway Associated By BD Name", "gateway_associated_by_bd_name"),
		col("Time Zone", "time_zone"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
		col("Capacity Type", "capacity_type"),
		col("Sub Client", "sub_client"),
		tcol("Latest Movement Record Event Time", "latest_movement_record_event_time"),
		tcol("Latest Power Record Event Time", "latest_power_record_event_time"),
		col("Location status", "location_status"),
		tcol("Last Location Status On", "last_location_status_on"),
		tcol("Latest Location Status On", "latest_location_status_on"),
		fcol("Static Latitude", "static_latitude"),
		fcol("Static Longitude", "static_longitude"),
		col("Static Movement Status", "static_movement_status"),
	},
}

var smartDeviceEntity = &Entity{
	Name:         "SmartDevice",
	Table:        "smart_devices",
	KeyCol:       "mac_address",
	Mode:         ModeInsertOnly,
	TouchesViews: true,
	Columns: []Column{
		col("Device Type", "device_type"),
		col("Manufacturer", "manufacturer"),
		col("Mac Address", "mac_address"),
		col("Serial Number", "serial_number"),
		col("Order Serial Number", "order_serial_number"),
		col("Shipped Country", "shipped_country"),
		col("Door No", "door_no"),
		col("Bottler Equipment Number", "bottler_equipment_number"),
		col("Technical Identification Number", "technical_identification_number"),
		col("Gateway", "gateway"),
		col("Manufacturer Serial Number", "manufacturer_serial_number"),
		col("IMEI", "imei"),
		col("Sim#", "sim_number"),
		col("SIM Provider", "sim_provider"),
		bcol("Plugin Connected_FFXy", "plugin_connected_ffxy"),
		tcol("Last Ping", "last_ping"),
		col("Firmware Version", "firmware_version"),
		col("IBeacon UUID", "ibeacon_uuid"),
		col("IBeacon Major", "ibeacon_major"),
		col("IBeacon Minor", "ibeacon_minor"),
		col("Eddystone UID Namespace", "eddystone_uid_namespace"),
		col("Eddystone UID Instance", "eddystone_uid_instance"),
		col("Inventory Location", "inventory_location"),
		col("Tracking#", "tracking_number"),
		col("Client", "client"),
		col("Asset Type", "asset_type"),
		col("Linked with Asset", "linked_with_asset"),
		bcol("Is Factory Asset?", "is_factory_asset"),
		bcol("Associated in Factory", "associated_in_factory"),
		tcol("Acquisition Date", "acquisition_date"),
		tcol("Asset Associated On", "asset_associated_on"),
		col("Association", "association"),
		col("Associated By BD User Name", "associated_by_bd_user_name"),
		col("Associated By BD Name", "associated_by_bd_name"),
		col("Associated By App Version", "associated_by_app_version"),
		col("Associated By App Name", "associated_by_app_name"),
		bcol("Is Missing?", "is_missing"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Trade Channel", "trade_channel"),
		col("Customer Tier", "customer_tier"),
		col("Sub Trade Channel", "sub_trade_channel"),
		col("Sales Organization", "sales_organization"),
		col("Sales Office", "sales_office"),
		col("Sales Group", "sales_group"),
		col("Sales Territory", "sales_territory"),
		col("Street", "street"),
		col("City", "city"),
		col("State", "state"),
		col("Country", "country"),
		col("Time Zone", "time_zone"),
		tcol("Latest Health Record Event Time", "latest_health_record_event_time"),
		fcol("Battery Level", "battery_level"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
		col("Advertisement URL", "advertisement_url"),
		bcol("Is Device Registered in IoT Hub?", "is_device_registered_in_iot_hub"),
		bcol("Is SD Gateway", "is_sd_gateway"),
		col("SubClient", "sub_client"),
		col("Device Model Number", "device_model_number"),
		col("Module Type", "module_type"),
		col("SIM Status", "sim_status"),
		tcol("Last Sim Status Updated On", "last_sim_status_updated_on"),
	},
}

var movementEntity = &Entity{
	Name:         "Movement",
	Table:        "movements",
	KeyCol:       "id",
	Mode:         ModeUpsert,
	Mandatory:    []string{"start_time"},
	TouchesViews: true,
	Columns: []Column{
		col("Id", "id"),
		col("Movement Type", "movement_type"),
		tcol("Start Time", "start_time"),
		tcol("End Time", "end_time"),
		fcol("Duration", "duration"),
		fcol("Latitude", "latitude"),
		fcol("Longitude", "longitude"),
		icol("Movement Count", "movement_count"),
		bcol("Door Open", "door_open"),
		fcol("Displacement(Meter)", "displacement_meter"),
		fcol("Accuracy(Meter)", "accuracy_meter"),
		col("Power Status", "power_status"),
		col("App Name", "app_name"),
		col("App Version", "app_version"),
		col("SDK Version", "sdk_version"),
		col("Data Uploaded By", "data_uploaded_by"),
		col("GPS Source", "gps_source"),
		col("Event Id", "event_id"),
		tcol("Created On", "created_on"),
		col("Gateway Mac", "gateway_mac"),
		col("Gateway#", "gateway_number"),
		col("Asset Type", "asset_type"),
		col("Month", "month"),
		col("Day", "day"),
		col("Day of Week", "day_of_week"),
		col("Week of Year", "week_of_year"),
		col("Asset Serial #", "asset_serial_number"),
		col("Technical Id", "technical_id"),
		col("Equipment Number", "equipment_number"),
		col("Smart Device Mac", "smart_device_mac"),
		col("Smart Device#", "smart_device_number"),
		bcol("Is Smart?", "is_smart"),
		col("Smart Device Type", "smart_device_type"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Time Zone", "time_zone"),
		col("Client", "client"),
		col("Sub Client", "sub_client"),
	},
}

var healthEventEntity = &Entity{
	Name:         "HealthEvent",
	Table:        "health_events",
	KeyCol:       "id",
	Mode:         ModeUpsert,
	TouchesViews: true,
	Columns: []Column{
		col("Id", "id"),
		col("Event Type", "event_type"),
		fcol("Light", "light"),
		col("Light Status", "light_status"),
		fcol("Temperature(°C)", "temperature_c"),
		fcol("Evaporator Temperature(°C)", "evaporator_temperature_c"),
		fcol("Condensor Temperature(°C)", "condensor_temperature_c"),
		fcol("Temperature(°F)", "temperature_f"),
		fcol("Evaporator Temperature(°F)", "evaporator_temperature_f"),
		fcol("Condensor Temperature(°F)", "condensor_temperature_f"),
		fcol("Battery", "battery"),
		col("Battery Status", "battery_status"),
		fcol("Interval(Min)", "interval_min"),
		fcol("Cooler Voltage(V)", "cooler_voltage_v"),
		fcol("Max Voltage(V)", "max_voltage_v"),
		fcol("Min Voltage(V)", "min_voltage_v"),
		fcol("Avg Power Consumption(Watt)", "avg_power_consumption_watt"),
		fcol("Total compressor ON Time(%)", "total_compressor_on_time_percent"),
		fcol("Max Cabinet Temperature(°C)", "max_cabinet_temperature_c"),
		fcol("Min Cabinet Temperature(°C)", "min_cabinet_temperature_c"),
		fcol("Ambient Temperature(°C)", "ambient_temperature_c"),
		fcol("Max Cabinet Temperature(°F)", "max_cabinet_temperature_f"),
		fcol("Min Cabinet Temperature(°F)", "min_cabinet_temperature_f"),
		fcol("Ambient Temperature(°F)", "ambient_temperature_f"),
		col("App Name", "app_name"),
		col("App Version", "app_version"),
		col("SDK Version", "sdk_version"),
		col("Data Uploaded By", "data_uploaded_by"),
		col("Asset Category", "asset_category"),
		col("Event Id", "event_id"),
		tcol("Created On", "created_on"),
		tcol("Event Time", "event_time"),
		col("Gateway Mac", "gateway_mac"),
		col("Gateway#", "gateway_number"),
		col("Asset Type", "asset_type"),
		col("Month", "month"),
		col("Day", "day"),
		col("Day of Week", "day_of_week"),
		col("Week of Year", "week_of_year"),
		col("Asset Serial #", "asset_serial_number"),
		col("Technical Id", "technical_id"),
		col("Equipment Number", "equipment_number"),
		col("Smart Device Mac", "smart_device_mac"),
		col("Smart Device#", "smart_device_number"),
		bcol("Is Smart?", "is_smart"),
		col("Smart Device Type", "smart_device_type"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Time Zone", "time_zone"),
		col("Client", "client"),
		col("Sub Client", "sub_client"),
	},
}

var doorEventEntity = &Entity{
	Name:         "DoorEvent",
	Table:        "door_events",
	KeyCol:       "id",
	Mode:         ModeUpsert,
	TouchesViews: true,
	Columns: []Column{
		col("Id", "id"),
		tcol("Open Event Time", "open_event_time"),
		tcol("Close Event Time", "close_event_time"),
		col("Event Type", "event_type"),
		fcol("Door Open Duration(sec)", "door_open_duration_sec"),
		col("Time of Day", "time_of_day"),
		col("Weekday / Weekend", "weekday_weekend"),
		icol("Hour in Day", "hour_in_day"),
		icol("Door Count", "door_count"),
		col("Additional Info", "additional_info"),
		col("Outlet Territory", "outlet_territory"),
		col("Door", "door"),
		col("Capacity Type", "capacity_type"),
		fcol("Door Open Target", "door_open_target"),
		fcol("Door Open Temperature", "door_open_temperature"),
		fcol("Door Close Temperature", "door_close_temperature"),
		col("App Name", "app_name"),
		col("App Version", "app_version"),
		col("SDK Version", "sdk_version"),
		col("Data Uploaded By", "data_uploaded_by"),
		col("Asset Category", "asset_category"),
		col("Event Id", "event_id"),
		tcol("Created On", "created_on"),
		col("Gateway Mac", "gateway_mac"),
		col("Gateway#", "gateway_number"),
		col("Asset Type", "asset_type"),
		col("Month", "month"),
		col("Day", "day"),
		col("Day of Week", "day_of_week"),
		col("Week of Year", "week_of_year"),
		col("Asset Serial #", "asset_serial_number"),
		col("Technical Id", "technical_id"),
		col("Equipment Number", "equipment_number"),
		col("Smart Device Mac", "smart_device_mac"),
		col("Smart Device#", "smart_device_number"),
		bcol("Is Smart?", "is_smart"),
		col("Smart Device Type", "smart_device_type"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Time Zone", "time_zone"),
		col("Client", "client"),
		col("Sub Client", "sub_client"),
	},
}

var alertEntity = &Entity{
	Name:         "Alert",
	Table:        "alerts",
	KeyCol:       "id",
	Mode:         ModeUpsert,
	TouchesViews: true,
	Columns: []Column{
		col("Id", "id"),
		col("Alert Type", "alert_type"),
		col("Alert Text", "alert_text"),
		col("Alert Definition", "alert_definition"),
		col("Status", "status"),
		col("Visit Check", "visit_check"),
		col("Asset Serial#", "asset_serial_number"),
		col("Smart Device Serial#", "smart_device_serial_number"),
		col("Asset Equipment Number", "asset_equipment_number"),
		col("Asset Technical Identification Number", "asset_technical_identification_number"),
		col("Asset Type", "asset_type"),
		col("Street", "street"),
		col("Street 2", "street_2"),
		col("Street 3", "street_3"),
		bcol("Is Smart?", "is_smart"),
		tcol("Alert At", "alert_at"),
		tcol("Status Changed On", "status_changed_on"),
		col("Priority", "priority"),
		col("Age", "age"),
		fcol("Alert Age(in minutes)", "alert_age_in_minutes"),
		col("Value", "value"),
		tcol("Last Update", "last_update"),
		col("Outlet", "outlet"),
		col("Outlet Code", "outlet_code"),
		col("Outlet Type", "outlet_type"),
		col("Outlet City", "outlet_city"),
		col("Client", "client"),
		col("Time Zone", "time_zone"),
		col("Month", "month"),
		col("Day", "day"),
		col("Day of Week", "day_of_week"),
		col("Week of Year", "week_of_year"),
		col("Market", "market"),
		col("Trade Channel", "trade_channel"),
		col("Customer Tier", "customer_tier"),
		col("Sales Organization", "sales_organization"),
		col("Sales Office", "sales_office"),
		col("Sales Group", "sales_group"),
		col("Sales Territory", "sales_territory"),
		col("Sales Rep", "sales_rep"),
		bcol("Is System Alert?", "is_system_alert"),
		col("Acknowledge Comment", "acknowledge_comment"),
		tcol("Created On", "created_on"),
	},
}

var clientEntity = &Entity{
	Name:   "Client",
	Table:  "clients",
	KeyCol: "client_code",
	Mode:   ModeUpsert,
	Columns: []Column{
		col("Client Id", "id"),
		col("Client Code", "client_code"),
		col("Client Name", "client_name"),
		col("Relevant Business Stream", "relevant_business_stream"),
		col("Status", "status"),
		col("Contact", "contact"),
		col("Subdomain", "subdomain"),
		bcol("Is Feedback Enabled?", "is_feedback_enabled"),
		col("Time Zone", "time_zone"),
		fcol("Vision Image Interval (Hours)", "vision_image_interval_hours"),
		icol("Vision Image Interval (Door Open)", "vision_image_interval_door_open"),
		icol("Out Of Stock SKU", "out_of_stock_sku"),
		icol("Power Off Duration", "power_off_duration"),
		fcol("Temperature Min", "temperature_min"),
		fcol("Temperature Max", "temperature_max"),
		icol("Light Min", "light_min"),
		icol("Light Max", "light_max"),
		icol("Door Count", "door_count"),
		icol("Health Intervals  (Hours)", "health_intervals_hours"),
		icol("Cooler Tracking Threshold (Days)", "cooler_tracking_threshold_days"),
		fcol("Cooler Tracking Displacement Threshold (Mtr)", "cooler_tracking_displacement_threshold_mtr"),
		col("GeoLocation Api Key", "geolocation_api_key"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
		icol("Fallen Magnet Threshold", "fallen_magnet_threshold"),
		bcol("VHenabled", "vh_enabled"),
		col("Country", "country"),
		col("Shipped Country", "shipped_country"),
		bcol("Manual Processing Mode", "manual_processing_mode"),
		bcol("Is Visit From Ping", "is_visit_from_ping"),
		icol("Distance In Meter", "distance_in_meter"),
		icol("Threshold In Minutes", "threshold_in_minutes"),
		bcol("Limit Location Distance", "limit_location_distance"),
		icol("Survey Distance", "survey_distance"),
		col("Scene Mode", "scene_mode"),
		col("Currency", "currency"),
		bcol("Enable PIC To POG", "enable_pic_to_pog"),
		col("Role", "role"),
		col("Default Recognition Mode", "default_recognition_mode"),
		bcol("Disable Geo Data Collection", "disable_geo_data_collection"),
	},
}

var subClientEntity = &Entity{
	Name:   "SubClient",
	Table:  "sub_clients",
	KeyCol: "id",
	Mode:   ModeUpsert,
	Columns: []Column{
		col("SubClient Name", "subclient_name"),
		col("SubClient Code", "subclient_code"),
		col("Scene Mode", "scene_mode"),
		col("Client", "client"),
	},
	// Vendor exports carry no id for sub clients; derive a stable one from
	// the code and the parent client.
	Finalize: func(row map[string]interface{}) {
		code, _ := row["subclient_code"].(string)
		if code == "" {
			return
		}
		if client, _ := row["client"].(string); client != "" {
			row["id"] = code + "_" + client
		} else {
			row["id"] = code
		}
	},
}

var alertsDefinitionEntity = &Entity{
	Name:   "AlertsDefinition",
	Table:  "alerts_definitions",
	KeyCol: "name",
	Mode:   ModeUpsert,
	Columns: []Column{
		col("Name", "name"),
		col("Type", "type"),
		col("Asset Serial Number", "asset_serial_number"),
		col("Priority", "priority"),
		bcol("Is Active", "is_active"),
		icol("Open Alert", "open_alert"),
		icol("Updated Alert", "updated_alert"),
		icol("Movement Detected", "movement_detected"),
		icol("Power Off Duration", "power_off_duration"),
		icol("Temperature Below", "temperature_below"),
		icol("Temperature Above", "temperature_above"),
		icol("Offline Alert Time", "offline_alert_time"),
		icol("Online Alert Time", "online_alert_time"),
		icol("Missing/Faulty time", "missing_faulty_time"),
		icol("Cooler Disconnect Threshold", "cooler_disconnect_threshold"),
		icol("Alert Age Threshold", "alert_age_threshold"),
		icol("Prolonged Irregularity(Min)", "prolonged_irregularity_min"),
		icol("No Data Threshold", "no_data_threshold"),
		icol("Battery Open Threshold", "battery_open_threshold"),
		icol("Battery Close Threshold", "battery_close_threshold"),
		icol("Stock Threshold", "stock_threshold"),
		icol("Purity Threshold", "purity_threshold"),
		icol("Planogram Threshold", "planogram_threshold"),
		icol("GPS Displacement Threshold", "gps_displacement_threshold"),
		icol("Motion Available Time", "motion_available_time"),
		icol("Par Displacement (Meter)", "par_displacement_meter"),
		icol("Colas Threshold", "colas_threshold"),
		icol("Flavours Threshold", "flavours_threshold"),
		icol("Colas + Flavours", "colas_flavours"),
		icol("Lane Threshold", "lane_threshold"),
		icol("Min Stock", "min_stock"),
		col("Alert Text", "alert_text"),
		col("Daily Alert", "daily_alert"),
		col("Client", "client"),
		col("Outlet", "outlet"),
		col("Sales Organization", "sales_organization"),
		col("Trade Channel", "trade_channel"),
		col("City", "city"),
		col("State", "state"),
		col("SalesRep", "sales_rep"),
		col("Supervisor", "supervisor"),
		col("Solution Type", "solution_type"),
		bcol("Is System Alert?", "is_system_alert"),
		tcol("Created On", "created_on"),
		col("Created By", "created_by"),
		tcol("Modified On", "modified_on"),
		col("Modified By", "modified_by"),
	},
}

var ghostAssetEntity = &Entity{
	Name:   "GhostAsset",
	Table:  "ghost_assets",
	KeyCol: "id",
	Mode:   ModeUpsert,
	Columns: []Column{
		col("Id", "id"),
		col("Serial Number", "serial_number"),
		col("Asset Serial Number", "asset_serial_number"),
		col("Equipment Number", "equipment_number"),
		col("Mac Address", "mac_address"),
		fcol("Latitude", "latitude"),
		fcol("Longitude", "longitude"),
		col("Address", "address"),
		col("City", "city"),
		col("Country", "country"),
		col("Reported By", "reported_by"),
		col("Reporter Client", "reporter_client"),
		tcol("Reported On", "reported_on"),
		bcol("Is Commissioned", "is_commissioned"),
		col("ClientId", "client_id"),
		col("Manufacturer", "manufacturer"),
	},
}

// Entities lists every importable entity.
var Entities = []*Entity{
	userEntity,
	outletEntity,
	assetEntity,
	ghostAssetEntity,
	smartDeviceEntity,
	movementEntity,
	healthEventEntity,
	doorEventEntity,
	alertEntity,
	clientEntity,
	subClientEntity,
	alertsDefinitionEntity,
}

func init() {
	for _, e := range Entities {
		e.index()
	}
}

// EntityByName returns the entity with the given name.
func EntityByName(name string) (*Entity, bool) {
	for _, e := range Entities {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
