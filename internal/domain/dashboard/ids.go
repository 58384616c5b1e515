package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rpggio/shielddash/internal/clock"
)

// idSource mints "{kind}-{token}" identifiers. Tokens are millisecond
// timestamps bumped so they strictly increase within a process.
type idSource struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

func (s *idSource) next(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.clock.Now().UnixMilli()
	if token <= s.last {
		token = s.last + 1
	}
	s.last = token
	return fmt.Sprintf("%s-%d", kind, token)
}

// observe raises the floor for future tokens past the token of an id that
// already exists, so ids persisted by an earlier process are never minted
// again.
func (s *idSource) observe(id string) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 {
		return
	}
	token, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = max(s.last, token)
}
