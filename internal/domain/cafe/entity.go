package cafe

// Cafe is one row of the cafe table.
//
// The amenity columns hold the value exactly as the client submitted it
// ("1", "true", "yes", ...). Nothing coerces them on the way in or out.
type Cafe struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name;size:250;not null;uniqueIndex"`
	MapURL       string  `gorm:"column:map_url;size:500;not null"`
	ImgURL       string  `gorm:"column:img_url;size:500;not null"`
	Location     string  `gorm:"column:location;size:250;not null"`
	Seats        string  `gorm:"column:seats;size:250;not null"`
	HasToilet    string  `gorm:"column:has_toilet;type:text;not null"`
	HasWifi      string  `gorm:"column:has_wifi;type:text;not null"`
	HasSockets   string  `gorm:"column:has_sockets;type:text;not null"`
	CanTakeCalls string  `gorm:"column:can_take_calls;type:text;not null"`
	CoffeePrice  *string `gorm:"column:coffee_price;size:250"`
}

func (Cafe) TableName() string {
	return "cafe"
}
