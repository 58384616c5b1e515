package dashboard

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// DocumentTypeAll disables the type filter of FilterDocuments.
const DocumentTypeAll = "all"

// UnreadCount returns how many notifications are unread.
func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// OnlineCount returns how many team members are online.
func (s *Service) OnlineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, m := range s.teamMembers {
		if m.Status == PresenceOnline {
			n++
		}
	}
	return n
}

// SearchTeam returns members whose name, email or role contains query,
// ignoring case. An empty query matches everyone.
func (s *Service) SearchTeam(query string) []TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]TeamMember, 0, len(s.teamMembers))
	for _, m := range s.teamMembers {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Email), q) ||
			strings.Contains(strings.ToLower(m.Role), q) {
			out = append(out, m)
		}
	}
	return out
}

// FilterDocuments returns documents whose name contains query (ignoring
// case) and whose type equals docType. An empty docType or DocumentTypeAll
// matches every type.
func (s *Service) FilterDocuments(query, docType string) []Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	out := make([]Document, 0, len(s.documents))
	for _, d := range s.documents {
		if !strings.Contains(strings.ToLower(d.Name), q) {
			continue
		}
		if docType != "" && docType != DocumentTypeAll && d.Type != docType {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DocumentSummary aggregates document counts and total size.
func (s *Service) DocumentSummary() DocumentSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum DocumentSummary
	for _, d := range s.documents {
		sum.Total++
		sum.TotalBytes += d.Size
		switch d.Status {
		case DocumentCompleted:
			sum.Completed++
		case DocumentProcessing:
			sum.Processing++
		case DocumentError:
			sum.Failed++
		}
	}
	sum.TotalSize = humanize.IBytes(uint64(max(sum.TotalBytes, 0)))
	return sum
}
