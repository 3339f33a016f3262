package models

import "time"

// Outlet is a retail location where coolers are placed. Keyed by the
// bottler-assigned outlet code.
type Outlet struct {
	Code                           string     `gorm:"column:code;primaryKey"`
	Name                           *string    `gorm:"column:name"`
	OutletType                     *string    `gorm:"column:outlet_type"`
	IsKeyOutlet                    *bool      `gorm:"column:is_key_outlet"`
	IsSmart                        *bool      `gorm:"column:is_smart"`
	Country                        *string    `gorm:"column:country"`
	State                          *string    `gorm:"column:state"`
	City                           *string    `gorm:"column:city"`
	Street                         *string    `gorm:"column:street"`
	Address2                       *string    `gorm:"column:address_2"`
	Address3                       *string    `gorm:"column:address_3"`
	Address4                       *string    `gorm:"column:address_4"`
	PostalCode                     *string    `gorm:"column:postal_code"`
	Retailer                       *string    `gorm:"column:retailer"`
	PrimaryPhone                   *string    `gorm:"column:primary_phone"`
	PrimarySalesRep                *string    `gorm:"column:primary_sales_rep"`
	SalesRepName                   *string    `gorm:"column:sales_rep_name"`
	Technician                     *string    `gorm:"column:technician"`
	Market                         *string    `gorm:"column:market"`
	SalesTarget                    *string    `gorm:"column:sales_target"`
	Client                         *string    `gorm:"column:client"`
	Latitude                       *float64   `gorm:"column:latitude"`
	Longitude                      *float64   `gorm:"column:longitude"`
	TradeChannel                   *string    `gorm:"column:trade_channel"`
	TradeGroup                     *string    `gorm:"column:trade_group"`
	TradeGroupCode                 *string    `gorm:"column:trade_group_code"`
	IsActive                       *bool      `gorm:"column:is_active"`
	CustomerTier                   *string    `gorm:"column:customer_tier"`
	SubTradeChannel                *string    `gorm:"column:sub_trade_channel"`
	SalesOrganization              *string    `gorm:"column:sales_organization"`
	SalesOffice                    *string    `gorm:"column:sales_office"`
	SalesGroup                     *string    `gorm:"column:sales_group"`
	SalesTerritory                 *string    `gorm:"column:sales_territory"`
	TelesellingTerritoryName       *string    `gorm:"column:teleselling_territory_name"`
	BusinessDeveloperTerritoryName *string    `gorm:"column:business_developer_territory_name"`
	CreditApproverTerritoryName    *string    `gorm:"column:credit_approver_territory_name"`
	MerchandizerTerritoryName      *string    `gorm:"column:merchandizer_territory_name"`
	P1TerritoryName                *string    `gorm:"column:p1_territory_name"`
	P2TerritoryName                *string    `gorm:"column:p2_territory_name"`
	P3TerritoryName                *string    `gorm:"column:p3_territory_name"`
	P4TerritoryName                *string    `gorm:"column:p4_territory_name"`
	P5TerritoryName                *string    `gorm:"column:p5_territory_name"`
	ReserveRouteName               *string    `gorm:"column:reserve_route_name"`
	RDCustomerName                 *string    `gorm:"column:rd_customer_name"`
	TimeZone                       *string    `gorm:"column:time_zone"`
	SubClient                      *string    `gorm:"column:sub_client"`
	Cluster                        *string    `gorm:"column:cluster"`
	MarketSegment                  *string    `gorm:"column:market_segment"`
	Segment                        *string    `gorm:"column:segment"`
	Environment                    *string    `gorm:"column:environment"`
	Assortment1                    *string    `gorm:"column:assortment_1"`
	Assortment2                    *string    `gorm:"column:assortment_2"`
	Assortment3                    *string    `gorm:"column:assortment_3"`
	Assortment4                    *string    `gorm:"column:assortment_4"`
	Assortment5                    *string    `gorm:"column:assortment_5"`
	Barcode                        *string    `gorm:"column:barcode"`
	LocalCluster                   *string    `gorm:"column:local_cluster"`
	LocalTradeChannel              *string    `gorm:"column:local_trade_channel"`
	Chain                          *string    `gorm:"column:chain"`
	RegionName                     *string    `gorm:"column:region_name"`
	MobilePhone                    *string    `gorm:"column:mobile_phone"`
	Email                          *string    `gorm:"column:email"`
	CPLName                        *string    `gorm:"column:cpl_name"`
	ExtraField                     *string    `gorm:"column:extra_field"`
	CreatedOn                      *time.Time `gorm:"column:created_on"`
	CreatedBy                      *string    `gorm:"column:created_by"`
	ModifiedOn                     *time.Time `gorm:"column:modified_on"`
	ModifiedBy                     *string    `gorm:"column:modified_by"`
	BDAA                           *string    `gorm:"column:bdaa"`
	CMMInd                         *string    `gorm:"column:cmmind"`
	CombinedAssetCapacity          *string    `gorm:"column:combined_asset_capacity"`
	ASMName                        *string    `gorm:"column:asm_name"`
	ASMEmail                       *string    `gorm:"column:asm_email"`
	TSMName                        *string    `gorm:"column:tsm_name"`
	TSMEmail                       *string    `gorm:"column:tsm_email"`
}

func (Outlet) TableName() string {
	return "outlets"
}
