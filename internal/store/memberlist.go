package store

import "github.com/talkincode/grocerstore/internal/domain"

// MemberList holds enrolled members in enrollment order.
type MemberList struct {
	members []*domain.Member
}

// Add appends the member. Enrollment never rejects.
func (l *MemberList) Add(member *domain.Member) bool {
	l.members = append(l.members, member)
	return true
}

// Remove deletes the member with the given id. Returns false when no member
// matches. The member's transaction log is discarded with it.
func (l *MemberList) Remove(id int64) bool {
	for i, m := range l.members {
		if m.MatchesID(id) {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns the member with the given id, or nil.
func (l *MemberList) FindByID(id int64) *domain.Member {
	for _, m := range l.members {
		if m.MatchesID(id) {
			return m
		}
	}
	return nil
}

// Len returns the number of members.
func (l *MemberList) Len() int {
	return len(l.members)
}
