package ui

import (
	"fmt"
	"strings"
	"time"

	"waymark/geo"
	"waymark/models"
)

// Position is the user's current coordinates, when known.
type Position struct {
	Lat float64
	Lon float64
}

// RenderMissionList renders the mission collection to stdout. When a
// position is given, each row carries its distance and whether the mission
// site is within camera range.
func RenderMissionList(missions []models.Mission, pos *Position) {
	completed := 0
	for _, m := range missions {
		if m.IsCompleted {
			completed++
		}
	}
	fmt.Printf(" 📍 Missions: %d (%d completed)\n", len(missions), completed)
	fmt.Println(StyleSubtle.Render(strings.Repeat("─", 50)))

	headers := []string{"ID", "NAME", "STATUS", "PHOTOS"}
	if pos != nil {
		headers = append(headers, "DISTANCE", "RANGE")
	}

	table := Table{Headers: headers, MaxWidth: 30}
	for _, m := range missions {
		row := []string{
			shortID(m.ID),
			m.Name,
			statusLabel(m),
			fmt.Sprintf("%d/%d", len(m.Photos), models.MaxPhotos),
		}
		if pos != nil {
			d := geo.Distance(pos.Lat, pos.Lon, m.Latitude, m.Longitude)
			row = append(row, formatDistance(d), rangeLabel(d))
		}
		table.Rows = append(table.Rows, row)
	}
	fmt.Print(table.Render())
}

// RenderMissionDetail renders one mission with its photos and note.
func RenderMissionDetail(m models.Mission, pos *Position) {
	fmt.Println(StyleHeader.Render(m.Name))
	if m.Caption != "" {
		fmt.Printf(" %s\n", StyleSubtle.Render(m.Caption))
	}
	fmt.Printf(" ID:       %s\n", m.ID)
	fmt.Printf(" Location: %.6f, %.6f\n", m.Latitude, m.Longitude)
	fmt.Printf(" Status:   %s\n", statusLabel(m))
	fmt.Printf(" Created:  %s\n", time.UnixMilli(m.CreatedAt).Format("2006-01-02 15:04"))
	if pos != nil {
		d := geo.Distance(pos.Lat, pos.Lon, m.Latitude, m.Longitude)
		fmt.Printf(" Distance: %s (%s)\n", formatDistance(d), rangeLabel(d))
	}
	if m.Note != "" {
		fmt.Printf(" Note:     %s\n", m.Note)
	}

	if len(m.Photos) > 0 {
		fmt.Printf("\n Photos (%d/%d):\n", len(m.Photos), models.MaxPhotos)
		for i, p := range m.Photos {
			line := fmt.Sprintf("  %d. %s", i+1, p.URI)
			if p.AssetID != "" {
				line += StyleSubtle.Render(fmt.Sprintf(" (asset %s)", p.AssetID))
			}
			fmt.Println(line)
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusLabel(m models.Mission) string {
	if m.IsCompleted {
		return StyleSuccess.Render("✔ done")
	}
	return StyleSubtle.Render("open")
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func rangeLabel(meters float64) string {
	if geo.WithinRange(meters) {
		return StyleSuccess.Render("in range")
	}
	return StyleWarning.Render("out of range")
}
