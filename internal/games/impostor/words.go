package impostor

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/partyline/internal/apperr"
)

// DefaultLanguage is used when a party's language has no word list
const DefaultLanguage = "en"

// WordPool holds secret words grouped by language and category
type WordPool struct {
	words map[string]map[string][]string
}

// NewWordPool builds a pool from language -> category -> words
func NewWordPool(words map[string]map[string][]string) *WordPool {
	return &WordPool{words: words}
}

// DefaultWordPool returns the built-in word lists
func DefaultWordPool() *WordPool {
	return NewWordPool(map[string]map[string][]string{
		"en": {
			"places":  {"Airport", "Beach", "Casino", "Hospital", "Library", "Museum", "Restaurant", "School", "Space Station", "Submarine", "Supermarket", "Theater"},
			"food":    {"Burrito", "Cheesecake", "Croissant", "Lasagna", "Pancake", "Pizza", "Ramen", "Sushi", "Taco", "Waffle"},
			"animals": {"Cat", "Dolphin", "Eagle", "Elephant", "Giraffe", "Kangaroo", "Octopus", "Penguin", "Tiger", "Turtle"},
		},
		"es": {
			"lugares":  {"Aeropuerto", "Biblioteca", "Casino", "Escuela", "Hospital", "Museo", "Playa", "Restaurante", "Submarino", "Teatro"},
			"comida":   {"Arepa", "Churros", "Empanada", "Gazpacho", "Paella", "Pizza", "Sushi", "Taco", "Tortilla"},
			"animales": {"Águila", "Delfín", "Elefante", "Gato", "Jirafa", "Pingüino", "Pulpo", "Tigre", "Tortuga"},
		},
		"pt": {
			"lugares": {"Aeroporto", "Biblioteca", "Cassino", "Escola", "Hospital", "Museu", "Praia", "Restaurante", "Submarino", "Teatro"},
			"comida":  {"Açaí", "Brigadeiro", "Coxinha", "Feijoada", "Pastel", "Pizza", "Sushi", "Tapioca"},
			"animais": {"Águia", "Elefante", "Gato", "Girafa", "Golfinho", "Onça", "Pinguim", "Polvo", "Tartaruga"},
		},
	})
}

// Categories lists the categories available in language
func (p *WordPool) Categories(language string) []string {
	lang := p.language(language)
	cats := make([]string, 0, len(p.words[lang]))
	for c := range p.words[lang] {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Candidates returns the words for language and category. An empty category
// means every category of the language.
func (p *WordPool) Candidates(language, category string) ([]string, error) {
	lang := p.language(language)
	byCategory, ok := p.words[lang]
	if !ok || len(byCategory) == 0 {
		return nil, apperr.Validation("no words available for language %q", language)
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" {
		words, ok := byCategory[category]
		if !ok || len(words) == 0 {
			return nil, apperr.Validation("unknown word category %q", category)
		}
		return words, nil
	}

	var all []string
	for _, c := range p.Categories(lang) {
		all = append(all, byCategory[c]...)
	}
	return all, nil
}

// Pick chooses a word not in used. When every candidate has been used the
// candidates are removed from used and the choice starts over. The updated
// used list is returned.
func (p *WordPool) Pick(language, category string, used []string, picker Picker) (string, []string, error) {
	candidates, err := p.Candidates(language, category)
	if err != nil {
		return "", used, err
	}

	seen := make(map[string]bool, len(used))
	for _, w := range used {
		seen[w] = true
	}

	fresh := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if !seen[w] {
			fresh = append(fresh, w)
		}
	}

	if len(fresh) == 0 {
		inPool := make(map[string]bool, len(candidates))
		for _, w := range candidates {
			inPool[w] = true
		}
		kept := used[:0:0]
		for _, w := range used {
			if !inPool[w] {
				kept = append(kept, w)
			}
		}
		used = kept
		fresh = candidates
	}

	word := fresh[picker.Intn(len(fresh))]
	return word, append(used, word), nil
}

func (p *WordPool) language(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if _, ok := p.words[lang]; ok {
		return lang
	}
	return DefaultLanguage
}
