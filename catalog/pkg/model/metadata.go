package model

// Metadata defines normalized attributes returned by the metadata provider.
type Metadata struct {
	Title    string   `json:"title"`
	Year     Int      `json:"year"`
	Genre    string   `json:"genre"`
	Rating   Float    `json:"rating"`
	Plot     string   `json:"plot"`
	Runtime  string   `json:"runtime"`
	ImdbID   string   `json:"imdbId"`
	Director string   `json:"director"`
	Cast     []string `json:"cast"`
}
