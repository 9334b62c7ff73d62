package model

import "time"

// WeatherRequest contains weather request parameters.
type WeatherRequest struct {
	City      string   `json:"city"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
	Update    bool     `json:"update"`
}

// Location is a known place the synthesizer can produce weather for.
type Location struct {
	Name      string   `json:"name"`
	Aliases   []string `json:"aliases,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

// Condition is a sky condition description.
type Condition string

// Weather conditions.
const (
	ConditionSnow         Condition = "Snow"
	ConditionLightSnow    Condition = "Light Snow"
	ConditionCloudy       Condition = "Cloudy"
	ConditionPartlyCloudy Condition = "Partly Cloudy"
	ConditionClear        Condition = "Clear"
	ConditionLightRain    Condition = "Light Rain"
	ConditionSunny        Condition = "Sunny"
)

// Weather is a weather sample for a location. It is also the persisted row,
// keyed by location.
type Weather struct {
	Location      string    `json:"location" bson:"location" gorm:"primaryKey"`
	TemperatureF  int       `json:"temperature_f" bson:"temperature_f"`
	Condition     Condition `json:"condition" bson:"condition"`
	HighF         int       `json:"high_f" bson:"high_f"`
	LowF          int       `json:"low_f" bson:"low_f"`
	Humidity      int       `json:"humidity" bson:"humidity"`
	WindMPH       int       `json:"wind_mph" bson:"wind_mph" gorm:"column:wind_mph"`
	WindDirection string    `json:"wind_direction" bson:"wind_direction"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// TableName sets the relational table name.
func (Weather) TableName() string {
	return "weather"
}

// WeatherReport is the result of a weather request.
type WeatherReport struct {
	Samples   []*Weather
	UpdatedAt time.Time
}

// TideType is a high or low tide event.
type TideType string

// Tide types.
const (
	TideHigh TideType = "high"
	TideLow  TideType = "low"
)

// TideTrend is the direction the water is moving.
type TideTrend string

// Tide trends.
const (
	TrendRising  TideTrend = "rising"
	TrendFalling TideTrend = "falling"
	TrendSlack   TideTrend = "slack"
)

// TidePoint is a single upcoming tide event.
type TidePoint struct {
	Time   string   `json:"time"`
	Height float64  `json:"height"`
	Type   TideType `json:"type"`
}

// TideCurrent is the tide state at snapshot time.
type TideCurrent struct {
	Height    float64   `json:"height"`
	Trend     TideTrend `json:"trend"`
	NextEvent TidePoint `json:"nextEvent"`
}

// TideConditions are water conditions shown next to the tide curve.
type TideConditions struct {
	WaterTemp    float64 `json:"waterTemp"`
	Visibility   float64 `json:"visibility"`
	CurrentSpeed float64 `json:"currentSpeed"`
}

// TideSnapshot is a complete tide dashboard state.
type TideSnapshot struct {
	Location    string         `json:"location"`
	Current     TideCurrent    `json:"current"`
	Tides       []TidePoint    `json:"tides"`
	Conditions  TideConditions `json:"conditions"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Daylight holds sunrise and sunset of a location for one day.
type Daylight struct {
	Location        string    `json:"location"`
	Sunrise         time.Time `json:"sunrise"`
	Sunset          time.Time `json:"sunset"`
	DaylightSeconds int64     `json:"daylight_seconds"`
}

// ChangeEvent is a realtime notification that a row of a watched table changed.
type ChangeEvent struct {
	Table           string    `json:"table"`
	Type            string    `json:"type"`
	CommitTimestamp time.Time `json:"commit_timestamp"`
}
