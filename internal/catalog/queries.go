package catalog

import "strings"

// Item searches one collection for an item id at any hierarchy level:
// top-level movies and shows, and inside shows their seasons and
// episodes. Absence is a normal outcome, reported via ok=false.
func (s *Snapshot) Item(collectionID, itemID string) (Item, bool) {
	c, ok := s.Collection(collectionID)
	if !ok {
		return nil, false
	}
	return findInCollection(c, itemID)
}

func findInCollection(c *Collection, itemID string) (Item, bool) {
	for _, item := range c.Items {
		switch v := item.(type) {
		case *Movie:
			if v.ID == itemID {
				return v, true
			}
		case *Show:
			if v.ID == itemID {
				return v, true
			}
			for _, season := range v.Seasons {
				if season.ID == itemID {
					return season, true
				}
				for _, ep := range season.Episodes {
					if ep.ID == itemID {
						return ep, true
					}
				}
			}
		case *Season:
			if v.ID == itemID {
				return v, true
			}
		case *Episode:
			if v.ID == itemID {
				return v, true
			}
		}
	}
	return nil, false
}

// ItemByID searches all collections for an item id.
func (s *Snapshot) ItemByID(itemID string) (*Collection, Item, bool) {
	for _, c := range s.collections {
		if item, ok := findInCollection(c, itemID); ok {
			return c, item, true
		}
	}
	return nil, nil, false
}

// SeasonByID resolves a season id to its collection, show and season.
func (s *Snapshot) SeasonByID(seasonID string) (*Collection, *Show, *Season, bool) {
	for _, c := range s.collections {
		for _, item := range c.Items {
			show, ok := item.(*Show)
			if !ok {
				continue
			}
			for _, season := range show.Seasons {
				if season.ID == seasonID {
					return c, show, season, true
				}
			}
		}
	}
	return nil, nil, nil, false
}

// EpisodeByID resolves an episode id to its full ancestry.
func (s *Snapshot) EpisodeByID(episodeID string) (*Collection, *Show, *Season, *Episode, bool) {
	for _, c := range s.collections {
		for _, item := range c.Items {
			show, ok := item.(*Show)
			if !ok {
				continue
			}
			for _, season := range show.Seasons {
				for _, ep := range season.Episodes {
					if ep.ID == episodeID {
						return c, show, season, ep, true
					}
				}
			}
		}
	}
	return nil, nil, nil, nil, false
}

// NextUp infers, per show, the episode to watch after the most recently
// watched one. For each show it keeps the highest watched
// (season, episode) pair, then picks the episode following it within
// the season, or the first episode of the next non-empty season.
// Shows with no continuation contribute nothing. Cross-show order is
// unspecified.
func (s *Snapshot) NextUp(watchedEpisodeIDs []string) []string {
	type progress struct {
		show      *Show
		seasonNo  int
		episodeNo int
		seasonIdx int
		epIdx     int
	}
	byShow := make(map[string]*progress)

	for _, id := range watchedEpisodeIDs {
		c, show, season, ep, ok := s.EpisodeByID(id)
		if !ok || c.Type != TypeShows {
			continue
		}

		seasonIdx, epIdx := -1, -1
		for si, sn := range show.Seasons {
			if sn.ID != season.ID {
				continue
			}
			seasonIdx = si
			for ei, e := range sn.Episodes {
				if e.ID == ep.ID {
					epIdx = ei
					break
				}
			}
			break
		}
		if seasonIdx < 0 || epIdx < 0 {
			continue
		}

		cur, seen := byShow[show.ID]
		if !seen {
			byShow[show.ID] = &progress{
				show:      show,
				seasonNo:  season.SeasonNo,
				episodeNo: ep.EpisodeNo,
				seasonIdx: seasonIdx,
				epIdx:     epIdx,
			}
			continue
		}
		if season.SeasonNo > cur.seasonNo ||
			(season.SeasonNo == cur.seasonNo && ep.EpisodeNo > cur.episodeNo) {
			cur.seasonNo = season.SeasonNo
			cur.episodeNo = ep.EpisodeNo
			cur.seasonIdx = seasonIdx
			cur.epIdx = epIdx
		}
	}

	var next []string
	for _, p := range byShow {
		seasons := p.show.Seasons
		if p.seasonIdx >= len(seasons) {
			continue
		}
		season := seasons[p.seasonIdx]
		switch {
		case p.epIdx+1 < len(season.Episodes):
			next = append(next, season.Episodes[p.epIdx+1].ID)
		case p.seasonIdx+1 < len(seasons) && len(seasons[p.seasonIdx+1].Episodes) > 0:
			next = append(next, seasons[p.seasonIdx+1].Episodes[0].ID)
		}
	}
	return next
}

// Search returns the ids of items whose display name contains term,
// case-insensitively, across all collections and hierarchy levels.
// This linear scan is the always-correct baseline; the optional
// full-text index accelerates larger libraries.
func (s *Snapshot) Search(term string) []string {
	needle := strings.ToLower(term)
	var ids []string

	match := func(name string) bool {
		return strings.Contains(strings.ToLower(name), needle)
	}

	for _, c := range s.collections {
		for _, item := range c.Items {
			switch v := item.(type) {
			case *Movie:
				if match(v.Name) {
					ids = append(ids, v.ID)
				}
			case *Show:
				if match(v.Name) {
					ids = append(ids, v.ID)
				}
				for _, season := range v.Seasons {
					if match(season.Name) {
						ids = append(ids, season.ID)
					}
					for _, ep := range season.Episodes {
						if match(ep.Name) {
							ids = append(ids, ep.ID)
						}
					}
				}
			case *Season:
				if match(v.Name) {
					ids = append(ids, v.ID)
				}
			case *Episode:
				if match(v.Name) {
					ids = append(ids, v.ID)
				}
			}
		}
	}
	return ids
}

// Convenience forwarders operating on the current snapshot. Callers
// that need a consistent view across several calls should take
// Snapshot() once and query that.

func (r *Repo) Collections() []*Collection { return r.Snapshot().Collections() }

func (r *Repo) Collection(id string) (*Collection, bool) { return r.Snapshot().Collection(id) }

func (r *Repo) Item(collectionID, itemID string) (Item, bool) {
	return r.Snapshot().Item(collectionID, itemID)
}

func (r *Repo) ItemByID(itemID string) (*Collection, Item, bool) {
	return r.Snapshot().ItemByID(itemID)
}

func (r *Repo) SeasonByID(id string) (*Collection, *Show, *Season, bool) {
	return r.Snapshot().SeasonByID(id)
}

func (r *Repo) EpisodeByID(id string) (*Collection, *Show, *Season, *Episode, bool) {
	return r.Snapshot().EpisodeByID(id)
}

func (r *Repo) NextUp(watchedEpisodeIDs []string) []string {
	return r.Snapshot().NextUp(watchedEpisodeIDs)
}

func (r *Repo) Search(term string) []string { return r.Snapshot().Search(term) }
