package ui

import (
	"fmt"
	"strings"
	"time"

	"waymark/models"
)

// GalleryEntry is one photo in the cross-mission gallery.
type GalleryEntry struct {
	Mission models.Mission
	Photo   models.Photo
}

// GalleryEntries collects every photo of every completed mission, in stored
// mission order and capture order within a mission.
func GalleryEntries(missions []models.Mission) []GalleryEntry {
	var entries []GalleryEntry
	for _, m := range missions {
		if !m.IsCompleted {
			continue
		}
		for _, p := range m.Photos {
			entries = append(entries, GalleryEntry{Mission: m, Photo: p})
		}
	}
	return entries
}

// RenderGallery renders the photos of all completed missions to stdout.
func RenderGallery(missions []models.Mission) {
	entries := GalleryEntries(missions)

	fmt.Printf(" 🖼  Gallery: %d photos\n", len(entries))
	fmt.Println(StyleSubtle.Render(strings.Repeat("─", 50)))
	if len(entries) == 0 {
		fmt.Println(StyleSubtle.Render(" No completed missions yet."))
		return
	}

	table := Table{Headers: []string{"MISSION", "PHOTO", "CAPTURED"}, MaxWidth: 40}
	for _, e := range entries {
		captured := ""
		if e.Photo.CreatedAt != 0 {
			captured = time.UnixMilli(e.Photo.CreatedAt).Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []string{e.Mission.Name, e.Photo.URI, captured})
	}
	fmt.Print(table.Render())
}
