package db_models

type Hotel struct {
	BaseModel
	Name      string
	City      string `gorm:"index"`
	Latitude  float64
	Longitude float64
	Rating    float64
	PriceText string
	ImageURL  string
}
