// Package nfo reads Kodi-compatible .nfo XML sidecar files and maps
// them onto catalog metadata. Parsing is tolerant: unknown elements are
// ignored, missing fields stay zero.
package nfo

import (
	"encoding/xml"
	"os"
	"strings"
	"time"

	"github.com/vmunix/vidcat/internal/catalog"
)

// document covers the fields shared by <movie>, <tvshow> and
// <episodedetails> roots. encoding/xml matches on the local element
// names, so one struct serves all three.
type document struct {
	Title    string   `xml:"title"`
	Plot     string   `xml:"plot"`
	Genres   []string `xml:"genre"`
	Studios  []string `xml:"studio"`
	Year     int      `xml:"year"`
	Rating   float64  `xml:"rating"`
	MPAA     string   `xml:"mpaa"`
	FileInfo struct {
		StreamDetails struct {
			Video struct {
				Codec    string `xml:"codec"`
				Width    int    `xml:"width"`
				Height   int    `xml:"height"`
				Duration int    `xml:"durationinseconds"`
			} `xml:"video"`
			Audio struct {
				Codec    string `xml:"codec"`
				Language string `xml:"language"`
				Channels int    `xml:"channels"`
			} `xml:"audio"`
		} `xml:"streamdetails"`
	} `xml:"fileinfo"`
}

// Movie reads a <movie> sidecar.
func Movie(path string) (catalog.Metadata, error) { return read(path) }

// Show reads a <tvshow> sidecar.
func Show(path string) (catalog.Metadata, error) { return read(path) }

// Episode reads an <episodedetails> sidecar.
func Episode(path string) (catalog.Metadata, error) { return read(path) }

func read(path string) (catalog.Metadata, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return catalog.Metadata{}, err
	}
	// Real-world sidecars carry HTML entities and odd encodings;
	// xml.Unmarshal copes with the entities on its own.
	var d document
	if err := xml.Unmarshal(b, &d); err != nil {
		return catalog.Metadata{}, err
	}
	return d.metadata(), nil
}

func (d *document) metadata() catalog.Metadata {
	m := catalog.Metadata{
		Title:          strings.TrimSpace(d.Title),
		Plot:           strings.TrimSpace(d.Plot),
		Year:           d.Year,
		Rating:         d.Rating,
		OfficialRating: strings.TrimSpace(d.MPAA),
	}
	for _, g := range d.Genres {
		if g = strings.TrimSpace(g); g != "" {
			m.Genres = append(m.Genres, g)
		}
	}
	for _, st := range d.Studios {
		if st = strings.TrimSpace(st); st != "" {
			m.Studios = append(m.Studios, st)
		}
	}
	sd := d.FileInfo.StreamDetails
	m.Duration = time.Duration(sd.Video.Duration) * time.Second
	m.VideoCodec = sd.Video.Codec
	m.VideoWidth = sd.Video.Width
	m.VideoHeight = sd.Video.Height
	m.AudioCodec = sd.Audio.Codec
	m.AudioLanguage = sd.Audio.Language
	m.AudioChannels = sd.Audio.Channels
	return m
}
