package domain

// Class represents a scheduled group class.
//
// InstructorID references a Trainer by ID but is NOT enforced against the
// trainers collection: deleting a trainer leaves their classes untouched and
// analytics simply counts zero classes for unknown instructors.
type Class struct {
	ID           string   `json:"id"` // "C" + zero-padded sequence
	Name         string   `json:"name"`
	Instructor   string   `json:"instructor"`
	InstructorID string   `json:"instructorId"`
	Schedule     string   `json:"schedule,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Room         string   `json:"room,omitempty"`
	Capacity     int      `json:"capacity"`
	Enrolled     int      `json:"enrolled"`
	Attendees    []string `json:"attendees"` // Member IDs
	Status       string   `json:"status,omitempty"`
}

// ClassPatch is a validated partial update for a Class. Nil fields are left
// untouched; ID, and the store-owned Attendees default, are never forced here.
type ClassPatch struct {
	Name         *string   `json:"name"`
	Instructor   *string   `json:"instructor"`
	InstructorID *string   `json:"instructorId"`
	Schedule     *string   `json:"schedule"`
	Duration     *string   `json:"duration"`
	Room         *string   `json:"room"`
	Capacity     *int      `json:"capacity"`
	Enrolled     *int      `json:"enrolled"`
	Attendees    *[]string `json:"attendees"`
	Status       *string   `json:"status"`
}

// Apply merges the patch onto c, field by field.
func (p ClassPatch) Apply(c *Class) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Instructor != nil {
		c.Instructor = *p.Instructor
	}
	if p.InstructorID != nil {
		c.InstructorID = *p.InstructorID
	}
	if p.Schedule != nil {
		c.Schedule = *p.Schedule
	}
	if p.Duration != nil {
		c.Duration = *p.Duration
	}
	if p.Room != nil {
		c.Room = *p.Room
	}
	if p.Capacity != nil {
		c.Capacity = *p.Capacity
	}
	if p.Enrolled != nil {
		c.Enrolled = *p.Enrolled
	}
	if p.Attendees != nil {
		c.Attendees = append([]string(nil), (*p.Attendees)...)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// IsZero reports whether the patch would change nothing.
func (p ClassPatch) IsZero() bool {
	return p.Name == nil && p.Instructor == nil && p.InstructorID == nil &&
		p.Schedule == nil && p.Duration == nil && p.Room == nil &&
		p.Capacity == nil && p.Enrolled == nil && p.Attendees == nil &&
		p.Status == nil
}
