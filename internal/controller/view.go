package controller

import (
	"github.com/i474232898/weather-orbit/internal/history"
	"github.com/i474232898/weather-orbit/internal/weather"
)

// ViewItem is one row of the combined list.
type ViewItem struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// View is the JSON projection of State served to remote clients.
type View struct {
	Version     uint64            `json:"version"`
	Query       string            `json:"query"`
	Lifecycle   Phase             `json:"lifecycle"`
	Message     string            `json:"message,omitempty"`
	Placeholder string            `json:"placeholder"`
	ListVisible bool              `json:"listVisible"`
	Items       []ViewItem        `json:"items"`
	Cursor      int               `json:"cursor"`
	History     []history.Entry   `json:"history"`
	Snapshot    *weather.Snapshot `json:"snapshot"`
	Period      weather.Period    `json:"period"`
	ImagePeriod weather.Period    `json:"imagePeriod"`
	AssetKey    string            `json:"assetKey"`
	ScrollSeq   uint64            `json:"scrollSeq"`
}

// View projects s for presentation.
func (s State) View() View {
	items := s.Items()
	rows := make([]ViewItem, len(items))
	for i, it := range items {
		rows[i] = ViewItem{Kind: string(it.Kind()), Label: it.Label(), Selected: i == s.Cursor}
	}

	entries := s.History
	if entries == nil {
		entries = []history.Entry{}
	}

	return View{
		Version:     s.Version,
		Query:       s.Query,
		Lifecycle:   s.Lifecycle.Phase,
		Message:     s.Lifecycle.Message,
		Placeholder: s.Placeholder,
		ListVisible: s.ListVisible,
		Items:       rows,
		Cursor:      s.Cursor,
		History:     entries,
		Snapshot:    s.Snapshot,
		Period:      weather.PeriodOf(s.Snapshot),
		ImagePeriod: weather.ImagePeriodOf(s.Snapshot),
		AssetKey:    weather.AssetKey(s.Snapshot),
		ScrollSeq:   s.ScrollSeq,
	}
}
