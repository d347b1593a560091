package pokeapi

// Wire types for the subset of the PokeAPI v2 schema the cards use.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type resourceList struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []namedResource `json:"results"`
}

type pokemon struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience *int             `json:"base_experience"`
	Types          []pokemonType    `json:"types"`
	Stats          []pokemonStat    `json:"stats"`
	Abilities      []pokemonAbility `json:"abilities"`
	Sprites        sprites          `json:"sprites"`
	Species        namedResource    `json:"species"`
}

type pokemonType struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     namedResource `json:"stat"`
}

type pokemonAbility struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type sprites struct {
	FrontDefault *string `json:"front_default"`
}

type species struct {
	Name              string         `json:"name"`
	GrowthRate        namedResource  `json:"growth_rate"`
	Genera            []genus        `json:"genera"`
	Habitat           *namedResource `json:"habitat"`
	IsLegendary       bool           `json:"is_legendary"`
	IsMythical        bool           `json:"is_mythical"`
	FlavorTextEntries []flavorText   `json:"flavor_text_entries"`
}

type genus struct {
	Genus    string        `json:"genus"`
	Language namedResource `json:"language"`
}

type flavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   namedResource `json:"language"`
	Version    namedResource `json:"version"`
}
