// Package session holds the per-visitor state the single-page client kept in
// memory: authentication, language, the active tab and background tasks.
package session

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vyaas/pkg/navigation"
	"vyaas/pkg/task"
)

var ErrUnknownLanguage = errors.New("unsupported language")

// Languages the interface can be switched to.
var Languages = []string{"en", "hi", "mr", "ta"}

const DefaultLanguage = "en"

func ValidLanguage(l string) bool {
	for _, s := range Languages {
		if s == l {
			return true
		}
	}
	return false
}

type Session struct {
	ID string

	// unix nanos of the last request that resolved this session
	lastSeen atomic.Int64

	mu            sync.Mutex
	authenticated bool
	demo          bool
	onboarding    bool
	language      string
	tab           navigation.Tab
	pendingPhone  string
	dismissed     map[int]bool
	tasks         *task.Group
}

// Snapshot is a copy of the session state for responses.
type Snapshot struct {
	ID            string         `json:"session_id"`
	Authenticated bool           `json:"authenticated"`
	Demo          bool           `json:"demo"`
	Onboarding    bool           `json:"show_onboarding"`
	Language      string         `json:"language"`
	Tab           navigation.Tab `json:"tab"`
	PendingPhone  string         `json:"pending_phone,omitempty"`
	PendingTasks  int            `json:"pending_tasks"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:            s.ID,
		Authenticated: s.authenticated,
		Demo:          s.demo,
		Onboarding:    s.onboarding,
		Language:      s.language,
		Tab:           s.tab,
		PendingPhone:  s.pendingPhone,
		PendingTasks:  s.tasks.Pending(),
	}
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) Tasks() *task.Group { return s.tasks }

func (s *Session) Tab() navigation.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// Navigate applies ev and stores the resulting tab.
func (s *Session) Navigate(ev navigation.Event) (navigation.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := navigation.Transition(s.tab, ev, s.authenticated)
	if err != nil {
		return s.tab, err
	}
	s.tab = next
	return next, nil
}

func (s *Session) SetLanguage(l string) error {
	if !ValidLanguage(l) {
		return ErrUnknownLanguage
	}
	s.mu.Lock()
	s.language = l
	s.mu.Unlock()
	return nil
}

func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// AwaitOTP records the phone an OTP was "sent" to.
func (s *Session) AwaitOTP(phone string) {
	s.mu.Lock()
	s.pendingPhone = phone
	s.mu.Unlock()
}

func (s *Session) PendingPhone() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingPhone
}

// Verified completes an OTP flow. First sign-in shows the onboarding tour.
func (s *Session) Verified() {
	s.mu.Lock()
	s.authenticated = true
	s.demo = false
	s.onboarding = true
	s.pendingPhone = ""
	s.tab = navigation.Home
	s.mu.Unlock()
}

func (s *Session) EnterDemo() {
	s.mu.Lock()
	s.authenticated = true
	s.demo = true
	s.onboarding = false
	s.pendingPhone = ""
	s.tab = navigation.Home
	s.mu.Unlock()
}

// Dismiss hides a home notification for the rest of the session.
func (s *Session) Dismiss(id int) {
	s.mu.Lock()
	if s.dismissed == nil {
		s.dismissed = map[int]bool{}
	}
	s.dismissed[id] = true
	s.mu.Unlock()
}

func (s *Session) Dismissed() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]bool, len(s.dismissed))
	for id := range s.dismissed {
		out[id] = true
	}
	return out
}

func (s *Session) CompleteOnboarding() {
	s.mu.Lock()
	s.onboarding = false
	s.mu.Unlock()
}

// SignOut drops authentication, resets the tab and cancels outstanding
// tasks. Language is kept.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.authenticated = false
	s.demo = false
	s.onboarding = false
	s.pendingPhone = ""
	s.tab = navigation.Home
	s.mu.Unlock()
	s.tasks.CancelAll()
}

// DefaultIdleTTL is how long a session survives without a request.
const DefaultIdleTTL = 30 * time.Minute

// Manager owns every live session. Sessions idle for longer than the TTL
// are dropped lazily, at most every half TTL, when a new one is created.
type Manager struct {
	delay time.Duration
	idle  time.Duration
	log   *zap.Logger
	now   func() time.Time

	mu        sync.RWMutex
	sessions  map[string]*Session
	lastSweep time.Time
}

// NewManager returns an empty manager. idleTTL <= 0 keeps sessions forever.
func NewManager(taskDelay, idleTTL time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		delay:    taskDelay,
		idle:     idleTTL,
		log:      log,
		now:      time.Now,
		sessions: map[string]*Session{},
	}
}

func (m *Manager) New() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		language: DefaultLanguage,
		tab:      navigation.Home,
		tasks:    task.NewGroup(m.delay, m.log.With(zap.String("component", "task"))),
	}
	now := m.now()
	s.lastSeen.Store(now.UnixNano())

	m.mu.Lock()
	var expired []*Session
	if m.idle > 0 && now.Sub(m.lastSweep) >= m.idle/2 {
		expired = m.evictLocked(now)
		m.lastSweep = now
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.closeAll(expired)
	return s
}

// Get returns a live session and marks it as seen.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		return nil, false
	}
	s.lastSeen.Store(now.UnixNano())
	return s, true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops every idle session now and returns how many went.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	expired := m.evictLocked(now)
	m.lastSweep = now
	m.mu.Unlock()
	m.closeAll(expired)
	return len(expired)
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idle > 0 && now.Sub(time.Unix(0, s.lastSeen.Load())) > m.idle
}

func (m *Manager) evictLocked(now time.Time) []*Session {
	var out []*Session
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			out = append(out, s)
		}
	}
	return out
}

// closeAll runs outside m.mu: Close waits for running tasks.
func (m *Manager) closeAll(sessions []*Session) {
	for _, s := range sessions {
		s.tasks.Close()
	}
	if len(sessions) > 0 {
		m.log.Debug("idle sessions dropped", zap.Int("count", len(sessions)))
	}
}

// Shutdown closes every session's task group.
func (m *Manager) Shutdown() {
	m.mu.RLock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.RUnlock()
	for _, s := range all {
		s.tasks.Close()
	}
}
