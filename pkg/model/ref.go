package model

// VideoRef is an opaque video search result. Read-only once gathered.
type VideoRef struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelName  string `json:"channel_name"`
	WatchURL     string `json:"watch_url"`
}

// PlaceRef is an opaque nearby-place search result. Read-only once gathered.
type PlaceRef struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Rating   float32 `json:"rating,omitempty"`
	Address  string  `json:"address"`
	MapsURL  string  `json:"maps_url"`
}

// Coordinate is a geographic position resolved once per session
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
