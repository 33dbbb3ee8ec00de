package service

// Payloads decoded from the upstream APIs. Only the fields the dashboard maps are declared.

// owmWeather is the OpenWeatherMap current weather payload.
type owmWeather struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// rateTable is the exchangerate-api latest rates payload.
type rateTable struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

type githubUser struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
}

type ipapiLocation struct {
	IP          *string `json:"ip"`
	City        *string `json:"city"`
	Region      *string `json:"region"`
	CountryName *string `json:"country_name"`
	Timezone    *string `json:"timezone"`
	Org         *string `json:"org"`
}

// devtoArticle is one element of the dev.to articles listing.
type devtoArticle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	TagList     []string `json:"tag_list"`
}
