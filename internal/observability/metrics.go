package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu             sync.Mutex
	requestCount   map[string]int64
	errorCount     map[string]int64
	onboardCount   map[string]int64
	cachePublishes map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:   make(map[string]int64),
		errorCount:     make(map[string]int64),
		onboardCount:   make(map[string]int64),
		cachePublishes: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordOnboarding counts onboarding outcomes per department.
func (m *Metrics) RecordOnboarding(departmentID string, success bool) {
	if m == nil {
		return
	}
	key := departmentID + "|" + strconv.FormatBool(success)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onboardCount[key]++
}

// RecordCachePublish counts cache publish outcomes.
func (m *Metrics) RecordCachePublish(ok bool) {
	if m == nil {
		return
	}
	key := strconv.FormatBool(ok)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cachePublishes[key]++
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
