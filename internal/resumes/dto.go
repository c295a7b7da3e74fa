package resumes

import "time"

// listItem is the summary shape returned by the list endpoint. Full section
// content is only returned when a single resume is fetched.
type listItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Public    bool      `json:"public"`
	Template  Template  `json:"template"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

func toListItem(r Resume) listItem {
	return listItem{
		ID:        r.ID,
		Title:     r.Title,
		Public:    r.Public,
		Template:  r.Template,
		UpdatedAt: r.UpdatedAt,
		CreatedAt: r.CreatedAt,
	}
}
