package account

type Account struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Phone        string `gorm:"not null;uniqueIndex"`
	Username     string `gorm:"not null;uniqueIndex"`
	Secret       string `gorm:"column:auth;not null"`
	HusbandsName string `gorm:"column:husbands_name;not null"`
	WifesName    string `gorm:"column:wifes_name;not null"`
	Date         string `gorm:"column:event_date;not null"`
	Time         string `gorm:"column:event_time;not null"`
	Address      string `gorm:"column:event_address;not null"`
}

type CoupleInfo struct {
	HusbandsName string
	WifesName    string
}

type EventInfo struct {
	Date    string
	Time    string
	Address string
}

type ProvisionInput struct {
	Phone    string
	Username string
	Password string
	Couple   CoupleInfo
	Event    EventInfo
}
