package db_models

type Place struct {
	BaseModel
	Name        string
	City        string `gorm:"index"`
	Latitude    float64
	Longitude   float64
	Duration    int // suggested visit time in minutes
	Category    string
	Description string
	ImageURL    string
}
