package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/nfo"
	"github.com/vmunix/vidcat/pkg/epname"
	"github.com/vmunix/vidcat/pkg/idhash"
)

// buildShows enumerates one level of subdirectories under the
// collection root; every subdirectory is a show.
func (s *Scanner) buildShows(ctx context.Context, c *catalog.Collection) ([]catalog.Item, error) {
	root := c.Directory
	s.logger.Debug("scanning shows", "collection", c.Name, "directory", root)

	top, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read collection root: %w", err)
	}

	var items []catalog.Item
	for _, e := range top {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		items = append(items, s.scanShowDir(root, e.Name()))
	}

	s.logger.Info("shows scanned", "collection", c.Name, "found", len(items))
	return items, nil
}

// scanShowDir builds a Show from one directory. Subdirectories whose
// names don't parse as seasons ("Season NN" or "SNN") are ignored.
func (s *Scanner) scanShowDir(root, rel string) *catalog.Show {
	dir := filepath.Join(root, rel)
	name := filepath.Base(rel)

	show := &catalog.Show{
		ID:              idhash.Sum(name),
		Name:            name,
		SortName:        epname.SortName(name),
		Path:            filepath.ToSlash(rel),
		Banner:          findImage(dir, "banner"),
		Fanart:          findImage(dir, "fanart"),
		Folder:          findImage(dir, "folder"),
		Poster:          findImage(dir, "poster"),
		Logo:            findImage(dir, "logo"),
		SeasonAllBanner: findImage(dir, "season-all-banner"),
		SeasonAllPoster: findImage(dir, "season-all-poster"),
	}

	if meta, err := nfo.Show(filepath.Join(dir, "tvshow.nfo")); err == nil {
		show.Metadata = meta
	} else if !os.IsNotExist(err) {
		s.logger.Warn("bad show nfo", "show", name, "error", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("skipping unreadable show directory", "path", dir, "error", err)
		return show
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		seasonNo, ok := epname.ParseSeasonDir(e.Name())
		if !ok {
			continue
		}
		season := s.scanSeasonDir(filepath.Join(dir, e.Name()), show, seasonNo)
		show.Seasons = append(show.Seasons, season)
	}

	// Order is imposed explicitly; directory enumeration is not relied on.
	sort.SliceStable(show.Seasons, func(i, j int) bool {
		return show.Seasons[i].SeasonNo < show.Seasons[j].SeasonNo
	})
	return show
}

// scanSeasonDir builds a Season from one directory. Every recognized
// video file is parsed with the folder's season number as hint; a
// result whose season disagrees with the folder is dropped. A season
// with zero surviving episodes is still recorded.
func (s *Scanner) scanSeasonDir(dir string, show *catalog.Show, seasonNo int) *catalog.Season {
	season := &catalog.Season{
		ID:              idhash.Sum(fmt.Sprintf("%s-%d", show.Path, seasonNo)),
		Name:            fmt.Sprintf("Season %d", seasonNo),
		Path:            show.Path,
		SeasonNo:        seasonNo,
		Banner:          findImage(dir, fmt.Sprintf("season%02d-banner", seasonNo)),
		Fanart:          findImage(dir, fmt.Sprintf("season%02d-fanart", seasonNo)),
		Poster:          findImage(dir, fmt.Sprintf("season%02d-poster", seasonNo)),
		SeasonAllBanner: show.SeasonAllBanner,
		SeasonAllPoster: show.SeasonAllPoster,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("skipping unreadable season directory", "path", dir, "error", err)
		return season
	}

	for _, e := range entries {
		if e.IsDir() || !isVideoFile(e.Name()) {
			continue
		}
		info, ok := epname.Parse(e.Name(), seasonNo)
		if !ok {
			s.logger.Debug("unparseable episode filename", "file", e.Name())
			continue
		}
		if info.Season != seasonNo {
			s.logger.Debug("episode season disagrees with folder, skipping",
				"file", e.Name(), "parsed", info.Season, "folder", seasonNo)
			continue
		}
		season.Episodes = append(season.Episodes, s.buildEpisode(dir, entries, show, info, e))
	}

	sort.SliceStable(season.Episodes, func(i, j int) bool {
		return season.Episodes[i].EpisodeNo < season.Episodes[j].EpisodeNo
	})
	return season
}

func (s *Scanner) buildEpisode(dir string, entries []os.DirEntry, show *catalog.Show, info epname.Info, e os.DirEntry) *catalog.Episode {
	fileName := e.Name()
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	prefix := fmt.Sprintf("Season %02d/", info.Season)

	ep := &catalog.Episode{
		ID:        idhash.Sum(fmt.Sprintf("%s-s%de%d", show.Path, info.Season, info.Episode)),
		Name:      info.Name,
		SortName:  info.Name,
		Path:      show.Path,
		SeasonNo:  info.Season,
		EpisodeNo: info.Episode,
		Double:    info.Double,
		BaseName:  fileName,
		FileName:  prefix + fileName,
		FileSize:  entrySize(e),
		Created:   time.Now().UTC(),
	}

	if thumb := findImage(dir, base+"-thumb"); thumb != "" {
		ep.Thumb = prefix + thumb
	}
	for _, sub := range findSubs(entries, base, ".srt") {
		ep.SrtSubs = append(ep.SrtSubs, catalog.Subtitle{Lang: sub.lang, Path: prefix + sub.name})
	}
	for _, sub := range findSubs(entries, base, ".vtt") {
		ep.VttSubs = append(ep.VttSubs, catalog.Subtitle{Lang: sub.lang, Path: prefix + sub.name})
	}

	if meta, err := nfo.Episode(filepath.Join(dir, base+".nfo")); err == nil {
		ep.Metadata = meta
	} else if !os.IsNotExist(err) {
		s.logger.Warn("bad episode nfo", "file", base+".nfo", "error", err)
	}
	return ep
}
