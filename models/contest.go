// models/contest.go
package models

// Contest is the immutable record of one resolved fight.
// WinnerID always equals FighterAID or FighterBID (also enforced by a CHECK constraint).
type Contest struct {
	ID         string `json:"id" gorm:"primaryKey"`
	FighterAID string `json:"fighter_a" gorm:"column:fighter_a_id;index;not null"`
	FighterBID string `json:"fighter_b" gorm:"column:fighter_b_id;index;not null"`
	WinnerID   string `json:"winner" gorm:"column:winner_id;index;not null;check:winner_id = fighter_a_id OR winner_id = fighter_b_id"`

	Timestamps
}

// CreateContestRequest carries the two fighter ids; pointers let the handler
// tell a missing field from an empty one.
type CreateContestRequest struct {
	FighterA *string `json:"fighter_a"`
	FighterB *string `json:"fighter_b"`
}
