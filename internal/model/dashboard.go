package model

// Health is the body returned by the health endpoints.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Weather is the simplified current weather for a city.
type Weather struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Conversion is the result of converting Amount from one currency to another.
type Conversion struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	Rate      float64 `json:"rate"`
}

// GitHubProfile holds public statistics for a GitHub user.
// Name and Bio are null when the user has not set them.
type GitHubProfile struct {
	Username    string  `json:"username"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	AvatarURL   string  `json:"avatar_url"`
	ProfileURL  string  `json:"profile_url"`
}

// IPLocation is the geolocation of an IP address. Unknown fields are null.
type IPLocation struct {
	IP       *string `json:"ip"`
	City     *string `json:"city"`
	Region   *string `json:"region"`
	Country  *string `json:"country"`
	Timezone *string `json:"timezone"`
	Org      *string `json:"org"`
}

// Article is one entry of the news feed.
type Article struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Tags        []string `json:"tags"`
}

// NewsFeed wraps the articles returned by the news endpoint.
type NewsFeed struct {
	Articles []Article `json:"articles"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
