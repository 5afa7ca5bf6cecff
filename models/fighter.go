// models/fighter.go
package models

// Fighter is a combat participant. Stats are stored as 32-bit integers;
// the resolver widens them before doing arithmetic.
type Fighter struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	ImageURL string `json:"image_url"`

	// ⚔️ Combat stats, only hp has an enforced range
	Attack    int32 `json:"attack"`
	Defense   int32 `json:"defense"`
	Speed     int32 `json:"speed"`
	HitPoints int32 `json:"hp" gorm:"column:hit_points;check:hit_points >= 0" validate:"min=0"`

	Timestamps
}

// FighterInput is the client-editable subset of a Fighter.
// Any client-supplied id or timestamps are ignored by construction.
type FighterInput struct {
	Name      string `json:"name" validate:"required"`
	ImageURL  string `json:"image_url"`
	Attack    int32  `json:"attack"`
	Defense   int32  `json:"defense"`
	Speed     int32  `json:"speed"`
	HitPoints int32  `json:"hp" validate:"min=0"`
}

// Fighter converts the input into an unsaved Fighter record.
func (in FighterInput) Fighter() Fighter {
	return Fighter{
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		Attack:    in.Attack,
		Defense:   in.Defense,
		Speed:     in.Speed,
		HitPoints: in.HitPoints,
	}
}
