package domain

// MemberStatus describes where a member is in their lifecycle.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

// DateLayout is the calendar-day format used for all persisted date fields
// (join dates, visits). Times of day are deliberately not stored.
const DateLayout = "2006-01-02"

// ValidMemberStatus reports whether s is one of the known member statuses.
func ValidMemberStatus(s MemberStatus) bool {
	switch s {
	case MemberStatusActive, MemberStatusInactive, MemberStatusPending:
		return true
	}
	return false
}

// Member represents a gym member.
type Member struct {
	ID               string       `json:"id"` // "M" + zero-padded sequence
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Status           MemberStatus `json:"status"`
	MembershipType   string       `json:"membershipType"`
	Address          string       `json:"address,omitempty"`
	Birthdate        string       `json:"birthdate,omitempty"`
	EmergencyContact string       `json:"emergencyContact,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	JoinDate         string       `json:"joinDate"`
	LastVisit        string       `json:"lastVisit"`
}

// MemberPatch is a validated partial update for a Member. Nil fields are left
// untouched; the record ID is never patchable.
type MemberPatch struct {
	Name             *string       `json:"name"`
	Email            *string       `json:"email"`
	Phone            *string       `json:"phone"`
	Status           *MemberStatus `json:"status"`
	MembershipType   *string       `json:"membershipType"`
	Address          *string       `json:"address"`
	Birthdate        *string       `json:"birthdate"`
	EmergencyContact *string       `json:"emergencyContact"`
	Notes            *string       `json:"notes"`
	JoinDate         *string       `json:"joinDate"`
	LastVisit        *string       `json:"lastVisit"`
}

// Apply merges the patch onto m, field by field.
func (p MemberPatch) Apply(m *Member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.MembershipType != nil {
		m.MembershipType = *p.MembershipType
	}
	if p.Address != nil {
		m.Address = *p.Address
	}
	if p.Birthdate != nil {
		m.Birthdate = *p.Birthdate
	}
	if p.EmergencyContact != nil {
		m.EmergencyContact = *p.EmergencyContact
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.JoinDate != nil {
		m.JoinDate = *p.JoinDate
	}
	if p.LastVisit != nil {
		m.LastVisit = *p.LastVisit
	}
}

// IsZero reports whether the patch would change nothing.
func (p MemberPatch) IsZero() bool {
	return p == MemberPatch{}
}
