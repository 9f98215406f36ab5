package domain

// Trainer represents a member of the coaching staff.
type Trainer struct {
	ID          string   `json:"id"` // "T" + zero-padded sequence
	Name        string   `json:"name"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience,omitempty"` // e.g. "5 years"
	Rating      float64  `json:"rating"`
	Classes     int      `json:"classes"` // Denormalized class count shown on the dashboard
	Clients     int      `json:"clients"` // Denormalized client count shown on the dashboard
	Status      string   `json:"status,omitempty"`
}

// TrainerPatch is a validated partial update for a Trainer. Nil fields are
// left untouched; ID is never patchable.
type TrainerPatch struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Bio         *string   `json:"bio"`
	Specialties *[]string `json:"specialties"`
	Experience  *string   `json:"experience"`
	Rating      *float64  `json:"rating"`
	Classes     *int      `json:"classes"`
	Clients     *int      `json:"clients"`
	Status      *string   `json:"status"`
}

// Apply merges the patch onto t, field by field.
func (p TrainerPatch) Apply(t *Trainer) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.Bio != nil {
		t.Bio = *p.Bio
	}
	if p.Specialties != nil {
		t.Specialties = append([]string(nil), (*p.Specialties)...)
	}
	if p.Experience != nil {
		t.Experience = *p.Experience
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Classes != nil {
		t.Classes = *p.Classes
	}
	if p.Clients != nil {
		t.Clients = *p.Clients
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// IsZero reports whether the patch would change nothing.
func (p TrainerPatch) IsZero() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Bio == nil &&
		p.Specialties == nil && p.Experience == nil && p.Rating == nil &&
		p.Classes == nil && p.Clients == nil && p.Status == nil
}
