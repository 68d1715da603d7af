package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
)

// withURLParam injects a chi route parameter for handlers invoked outside
// a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// In-memory store fakes backing the handler tests. Each fake records its
// writes so tests can assert storage was (or was not) touched.

type fakeProjectStore struct {
	projects map[uuid.UUID]*models.Project
	failWith error
	writes   int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[uuid.UUID]*models.Project)}
}

func (s *fakeProjectStore) FindAll(opts database.ListOptions) ([]*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []*models.Project
	for _, p := range s.projects {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.projects[id], nil
}

func (s *fakeProjectStore) Add(p *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.projects[p.ID] = p
	return nil
}

func (s *fakeProjectStore) Update(p *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	s.projects[p.ID] = p
	return nil
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	delete(s.projects, id)
	return nil
}

type fakeSkillStore struct {
	skills   []*models.Skill
	failWith error
	writes   int
}

func (s *fakeSkillStore) FindAll(opts database.ListOptions) ([]*models.Skill, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.skills, nil
}

func (s *fakeSkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, skill := range s.skills {
		if skill.ID == id {
			return skill, nil
		}
	}
	return nil, nil
}

func (s *fakeSkillStore) Add(skill *models.Skill) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	s.skills = append(s.skills, skill)
	return nil
}

func (s *fakeSkillStore) Update(skill *models.Skill) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	for i, existing := range s.skills {
		if existing.ID == skill.ID {
			s.skills[i] = skill
		}
	}
	return nil
}

func (s *fakeSkillStore) Delete(id uuid.UUID) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	for i, existing := range s.skills {
		if existing.ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeSkillStore) ReplaceAll(skills []*models.Skill) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	s.skills = skills
	return nil
}

type fakeExperienceStore struct {
	experiences map[uuid.UUID]*models.Experience
	failWith    error
	writes      int
}

func newFakeExperienceStore() *fakeExperienceStore {
	return &fakeExperienceStore{experiences: make(map[uuid.UUID]*models.Experience)}
}

func (s *fakeExperienceStore) FindAll(opts database.ListOptions) ([]*models.Experience, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []*models.Experience
	for _, e := range s.experiences {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeExperienceStore) FindByID(id uuid.UUID) (*models.Experience, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.experiences[id], nil
}

func (s *fakeExperienceStore) Add(e *models.Experience) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.experiences[e.ID] = e
	return nil
}

func (s *fakeExperienceStore) Update(e *models.Experience) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	s.experiences[e.ID] = e
	return nil
}

func (s *fakeExperienceStore) Delete(id uuid.UUID) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	delete(s.experiences, id)
	return nil
}

type fakeContactStore struct {
	messages []*models.ContactMessage
	failWith error
	writes   int
}

func (s *fakeContactStore) FindAll(opts database.ListOptions) ([]*models.ContactMessage, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.messages, nil
}

func (s *fakeContactStore) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeContactStore) Add(m *models.ContactMessage) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.writes++
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	s.messages = append(s.messages, m)
	return nil
}

func (s *fakeContactStore) MarkRead(id uuid.UUID) error {
	if s.failWith != nil {
		return s.failWith
	}
	for _, m := range s.messages {
		if m.ID == id {
			s.writes++
			m.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAnalyticsStore struct {
	events   []*models.AnalyticsEvent
	failWith error
}

func (s *fakeAnalyticsStore) Add(e *models.AnalyticsEvent) error {
	if s.failWith != nil {
		return s.failWith
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.events = append(s.events, e)
	return nil
}

func (s *fakeAnalyticsStore) FindSince(since time.Time) ([]*models.AnalyticsEvent, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []*models.AnalyticsEvent
	for _, e := range s.events {
		if !e.CreatedAt.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeAnalyticsStore) FindPage(since time.Time, offset, limit int) ([]*models.AnalyticsEvent, error) {
	all, err := s.FindSince(since)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *fakeAnalyticsStore) CountSince(since time.Time) (int64, error) {
	all, err := s.FindSince(since)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

type fakeUploader struct {
	uploaded int
	failWith error
}

func (u *fakeUploader) Upload(ctx context.Context, filename string, body io.Reader, contentType string) (string, error) {
	if u.failWith != nil {
		return "", u.failWith
	}
	u.uploaded++
	return fmt.Sprintf("https://files.example.com/resumes/%s", filename), nil
}
