package domain

import "time"

// Comment is a visitor remark on a festival. Comments are owned by their
// festival and removed with it.
type Comment struct {
	ID         uint      `json:"id"`
	FestivalID uint      `json:"festival_id"`
	Nickname   string    `json:"nickname"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
