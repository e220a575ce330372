package pokeapi

import (
	"fmt"
	"strconv"
	"strings"
)

const spriteBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// IDFromURL extracts the trailing numeric id of a resource URL such as
// https://pokeapi.co/api/v2/pokemon-species/152/
func IDFromURL(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("no numeric id in %q", url)
	}
	return id, nil
}

// SpriteURL returns the default front sprite of a Pokemon
func SpriteURL(id int) string {
	return fmt.Sprintf("%s/%d.png", spriteBaseURL, id)
}

// ArtworkURL returns the official artwork image of a Pokemon
func ArtworkURL(id int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", spriteBaseURL, id)
}
