package domain

// RideSummary is read-only ride metadata supplied by the catalog.
// The chat core consumes it to denormalize driver identity onto a channel.
type RideSummary struct {
	ID         string
	Region     string
	From       string
	To         string
	Date       string
	Time       string
	DriverID   string
	DriverName string
	Rating     float64
	Price      float64
	SeatCount  int
}

// Region groups rides offered around one part of the city.
type Region struct {
	Slug string
	Name string
}
