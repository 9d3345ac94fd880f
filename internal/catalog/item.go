// Package catalog holds the in-memory media catalog: typed items built
// from a directory tree, grouped into collections, and published as
// immutable snapshots that any number of readers traverse concurrently
// while rebuilds run in the background.
package catalog

import "time"

// Subtitle is a subtitle file found next to a video file.
type Subtitle struct {
	Lang string
	Path string
}

// Metadata holds descriptive fields for an item, typically read from a
// Kodi NFO sidecar. The zero value is valid and means "no metadata".
type Metadata struct {
	Title          string
	Plot           string
	Genres         []string
	Studios        []string
	Year           int
	Rating         float64
	OfficialRating string
	Duration       time.Duration
	VideoCodec     string
	VideoWidth     int
	VideoHeight    int
	AudioCodec     string
	AudioLanguage  string
	AudioChannels  int
}

// Item is the closed set of entities a collection can contain: Movie,
// Show, Season and Episode. Consumers switch on the concrete type; the
// set never grows at runtime.
type Item interface {
	ItemID() string
	ItemName() string

	isItem()
}

// Movie is a single feature in a movies collection.
type Movie struct {
	// ID is idhash.Sum of the movie directory name.
	ID       string
	Name     string
	SortName string
	// Path is the movie directory, relative to the collection root.
	Path     string
	FileName string
	FileSize int64
	Created  time.Time
	Banner   string
	Fanart   string
	Folder   string
	Poster   string
	Metadata Metadata
	SrtSubs  []Subtitle
	VttSubs  []Subtitle
}

func (m *Movie) ItemID() string   { return m.ID }
func (m *Movie) ItemName() string { return m.Name }
func (*Movie) isItem()            {}

// FilePath returns the video file path relative to the collection root.
func (m *Movie) FilePath() string { return m.Path + "/" + m.FileName }

// Show is a TV show holding seasons ordered ascending by number.
type Show struct {
	// ID is idhash.Sum of the show directory name.
	ID       string
	Name     string
	SortName string
	// Path is the show directory, relative to the collection root.
	Path   string
	Banner string
	Fanart string
	Folder string
	Poster string
	Logo   string
	// SeasonAllBanner and SeasonAllPoster are fallback artwork for
	// seasons without season-specific images.
	SeasonAllBanner string
	SeasonAllPoster string
	Metadata        Metadata
	Seasons         []*Season
}

func (s *Show) ItemID() string   { return s.ID }
func (s *Show) ItemName() string { return s.Name }
func (*Show) isItem()            {}

// Season groups the episodes of one season, ordered ascending by
// episode number. Season 0 holds specials.
type Season struct {
	// ID is idhash.Sum of "{showPath}-{seasonNo}", scoped to the parent
	// show so equal numbering in different shows never collides.
	ID   string
	Name string
	// Path is the show directory (not the season directory), relative
	// to the collection root.
	Path     string
	SeasonNo int
	Banner   string
	Fanart   string
	Poster   string
	// Copies of the show's season-all artwork, used when this season
	// has none of its own.
	SeasonAllBanner string
	SeasonAllPoster string
	Episodes        []*Episode
}

func (s *Season) ItemID() string   { return s.ID }
func (s *Season) ItemName() string { return s.Name }
func (*Season) isItem()            {}

// PosterFile returns the season poster, falling back to the show's
// season-all poster.
func (s *Season) PosterFile() string {
	if s.Poster != "" {
		return s.Poster
	}
	return s.SeasonAllPoster
}

// Episode is a single video file within a season.
type Episode struct {
	// ID is idhash.Sum of "{showPath}-s{season}e{episode}".
	ID       string
	Name     string
	SortName string
	// Path is the show directory, relative to the collection root.
	Path      string
	SeasonNo  int
	EpisodeNo int
	// Double marks one file covering two consecutive episodes.
	Double bool
	// BaseName is the plain video filename, e.g. "show.s01e01.mkv".
	BaseName string
	// FileName is relative to the show directory, e.g.
	// "Season 01/show.s01e01.mkv".
	FileName string
	FileSize int64
	Thumb    string
	Created  time.Time
	Metadata Metadata
	SrtSubs  []Subtitle
	VttSubs  []Subtitle
}

func (e *Episode) ItemID() string   { return e.ID }
func (e *Episode) ItemName() string { return e.Name }
func (*Episode) isItem()            {}
