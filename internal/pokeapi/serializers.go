package pokeapi

import (
	"strings"

	"github.com/arcanaland/pokecard/internal/creature"
)

const englishLanguage = "en"

func apiPokemonToRecord(p *pokemon) *creature.Record {
	rec := &creature.Record{
		ID:         p.ID,
		Name:       p.Name,
		Height:     p.Height,
		Weight:     p.Weight,
		SpeciesURL: p.Species.URL,
	}

	if p.BaseExperience != nil {
		rec.BaseExperience = *p.BaseExperience
	}

	if p.Sprites.FrontDefault != nil {
		rec.SpriteURL = *p.Sprites.FrontDefault
	}

	rec.Types = make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		rec.Types = append(rec.Types, t.Type.Name)
	}

	rec.Stats = make([]creature.Stat, 0, len(p.Stats))
	for _, s := range p.Stats {
		rec.Stats = append(rec.Stats, creature.Stat{
			Key:   s.Stat.Name,
			Value: s.BaseStat,
		})
	}

	rec.Abilities = make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		rec.Abilities = append(rec.Abilities, a.Ability.Name)
	}

	return rec
}

func apiSpeciesToSpecies(s *species) *creature.Species {
	out := &creature.Species{
		Name:        s.Name,
		GrowthRate:  s.GrowthRate.Name,
		IsLegendary: s.IsLegendary,
		IsMythical:  s.IsMythical,
	}

	if s.Habitat != nil {
		out.Habitat = s.Habitat.Name
	}

	for _, g := range s.Genera {
		if g.Language.Name == englishLanguage {
			out.Genus = g.Genus
			break
		}
	}

	for _, f := range s.FlavorTextEntries {
		if f.Language.Name == englishLanguage {
			// Entries carry form feeds and hard line breaks from the games.
			out.FlavorText = strings.Join(strings.Fields(f.FlavorText), " ")
			break
		}
	}

	return out
}

func resourceNames(list *resourceList) []string {
	names := make([]string, 0, len(list.Results))
	for _, r := range list.Results {
		names = append(names, r.Name)
	}
	return names
}
