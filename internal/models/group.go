package models

// Member is a participant of a group.
type Member struct {
	// UID is the auth identity of the member. It is the identity key.
	UID string

	// Name is the display name captured when the member joined.
	Name string

	// Email is the email captured when the member joined.
	Email string
}

// Group is a set of members who share expenses.
//
// Members and MemberIDs always describe the same set of users: MemberIDs holds
// exactly the UID of every entry in Members, without duplicates.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// AdminID is the uid of the creator. The admin is always a member.
	AdminID string

	// Members is the ordered member list. The admin is first on creation.
	Members []Member

	// MemberIDs is the membership index derived from Members.
	MemberIDs []string

	// InviteCode is the opaque token that lets outsiders request to join.
	// It is immutable after creation.
	InviteCode string

	// Version increases on every membership write and guards against
	// overwriting a concurrent modification with a stale member list.
	Version int64

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether uid is in the membership index.
func (g *Group) HasMember(uid string) bool {
	for _, id := range g.MemberIDs {
		if id == uid {
			return true
		}
	}
	return false
}

// Member returns the member with the given uid.
func (g *Group) Member(uid string) (Member, bool) {
	for _, m := range g.Members {
		if m.UID == uid {
			return m, true
		}
	}
	return Member{}, false
}

// IsAdmin reports whether uid is the group admin.
func (g *Group) IsAdmin(uid string) bool {
	return uid != "" && g.AdminID == uid
}

// MemberIDsOf derives the membership index from a member list.
func MemberIDsOf(members []Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UID
	}
	return ids
}
