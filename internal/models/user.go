package models

import "time"

// User is a portal account. Looked up case-insensitively by UPN; rows are
// created by the importer or through the admin screens.
type User struct {
	UPN                       string     `gorm:"column:upn;primaryKey"`
	FirstName                 *string    `gorm:"column:first_name"`
	LastName                  *string    `gorm:"column:last_name"`
	UserName                  *string    `gorm:"column:user_name"`
	Email                     *string    `gorm:"column:email"`
	Phone                     *string    `gorm:"column:phone"`
	Role                      *string    `gorm:"column:role"`
	ReportingManager          *string    `gorm:"column:reporting_manager"`
	PreferredNotificationType *string    `gorm:"column:preferred_notification_type"`
	Country                   *string    `gorm:"column:country"`
	ResponsibleCountry        *string    `gorm:"column:responsible_country"`
	IsActive                  *bool      `gorm:"column:is_active"`
	SalesOrganization         *string    `gorm:"column:sales_organization"`
	SalesOffice               *string    `gorm:"column:sales_office"`
	SalesGroup                *string    `gorm:"column:sales_group"`
	SalesTerritory            *string    `gorm:"column:sales_territory"`
	TelesellingTerritory      *string    `gorm:"column:teleselling_territory"`
	BDTerritoryName           *string    `gorm:"column:bd_territory_name"`
	CATerritoryName           *string    `gorm:"column:ca_territory_name"`
	MCTerritoryName           *string    `gorm:"column:mc_territory_name"`
	P1TerritoryName           *string    `gorm:"column:p1_territory_name"`
	P2TerritoryName           *string    `gorm:"column:p2_territory_name"`
	P3TerritoryName           *string    `gorm:"column:p3_territory_name"`
	P4TerritoryName           *string    `gorm:"column:p4_territory_name"`
	P5TerritoryName           *string    `gorm:"column:p5_territory_name"`
	NCBTerritoryName          *string    `gorm:"column:ncb_territory_name"`
	LastLoginOn               *time.Time `gorm:"column:last_login_on"`
	Client                    *string    `gorm:"column:client"`
	CreatedOn                 *time.Time `gorm:"column:created_on"`
	CreatedBy                 *string    `gorm:"column:created_by"`
	ModifiedOn                *time.Time `gorm:"column:modified_on"`
	ModifiedBy                *string    `gorm:"column:modified_by"`
	RewardPoint               *float64   `gorm:"column:reward_point"`
}

func (User) TableName() string {
	return "users"
}
