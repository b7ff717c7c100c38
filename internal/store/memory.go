// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"sync"
	"time"

	"github.com/pdiddy/phantasm/pkg/types"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu        sync.Mutex
	settings  map[string]string
	checklist map[string]map[string]bool
	syllabi   map[string]types.SyllabusData
	plans     map[string][]types.CramPlan
	nextID    int64
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		settings:  make(map[string]string),
		checklist: make(map[string]map[string]bool),
		syllabi:   make(map[string]types.SyllabusData),
		plans:     make(map[string][]types.CramPlan),
	}
}

func (s *MemoryStore) Setting(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.settings[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) SetSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[key] = value
	return nil
}

func (s *MemoryStore) Checklist(courseCode string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	checked := make(map[string]bool)
	for item, on := range s.checklist[CourseKey(courseCode)] {
		if on {
			checked[item] = true
		}
	}
	return checked, nil
}

func (s *MemoryStore) SaveChecklist(courseCode string, checked map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]bool)
	for item, on := range checked {
		if on {
			copied[item] = true
		}
	}
	s.checklist[CourseKey(courseCode)] = copied
	return nil
}

func (s *MemoryStore) SaveSyllabus(data types.SyllabusData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syllabi[CourseKey(data.CourseCode)] = data
	return nil
}

func (s *MemoryStore) LatestSyllabus(courseCode string) (types.SyllabusData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.syllabi[CourseKey(courseCode)]
	if !ok {
		return types.SyllabusData{}, ErrNotFound
	}
	return data, nil
}

func (s *MemoryStore) SavePlan(courseCode string, plan types.CramPlan) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	plan.ID = s.nextID
	if plan.CreatedTs == 0 {
		plan.CreatedTs = time.Now().Unix()
	}
	key := CourseKey(courseCode)
	s.plans[key] = append([]types.CramPlan{plan}, s.plans[key]...)
	return plan.ID, nil
}

func (s *MemoryStore) Plans(courseCode string) ([]types.CramPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.CramPlan(nil), s.plans[CourseKey(courseCode)]...), nil
}

func (s *MemoryStore) Close() error { return nil }
