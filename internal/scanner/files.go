package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// videoExts are the recognized video file extensions, without dot.
var videoExts = map[string]bool{
	"mkv": true, "mp4": true, "avi": true, "m4v": true,
	"mov": true, "wmv": true, "flv": true, "webm": true,
}

// imageExts are probed in this order; the first existing file wins.
var imageExts = []string{"jpg", "jpeg", "png", "webp"}

func isVideoFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return videoExts[ext]
}

// findImage probes dir for name.<ext> over the known image extensions
// and returns the filename of the first existing one, or "".
func findImage(dir, name string) string {
	for _, ext := range imageExts {
		file := name + "." + ext
		if _, err := os.Stat(filepath.Join(dir, file)); err == nil {
			return file
		}
	}
	return ""
}

// entrySize returns the file size for a directory entry, or 0 when the
// entry can't be stat'ed.
func entrySize(e fs.DirEntry) int64 {
	info, err := e.Info()
	if err != nil {
		return 0
	}
	return info.Size()
}

// findSubs collects subtitle files of the given extension (".srt" or
// ".vtt") among entries. When base is non-empty only files belonging to
// that video (base name prefix) are considered. The language tag is the
// last dotted part before the extension, e.g. "movie.en.srt" -> "en".
func findSubs(entries []fs.DirEntry, base, ext string) []subFile {
	var subs []subFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}
		stem := name[:len(name)-len(ext)]
		if base != "" && stem != base && !strings.HasPrefix(stem, base+".") {
			continue
		}
		lang := ""
		if i := strings.LastIndex(stem, "."); i >= 0 {
			if tag := stem[i+1:]; len(tag) >= 2 && len(tag) <= 3 {
				lang = strings.ToLower(tag)
			}
		}
		subs = append(subs, subFile{lang: lang, name: name})
	}
	return subs
}

type subFile struct {
	lang string
	name string
}
