package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"intern-portal/backend/internal/model"
	"intern-portal/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles map[string]*model.Profile // key: profile_id
	users    *mockUserRepo
}

func newMockProfileRepo(users *mockUserRepo) *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile), users: users}
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	if profile.ProfileID == "" {
		profile.ProfileID = "profile-" + profile.UserID
	}
	m.profiles[profile.ProfileID] = profile
	return nil
}

func (m *mockProfileRepo) GetByID(_ context.Context, id string) (*model.Profile, error) {
	if p, ok := m.profiles[id]; ok {
		return m.withUser(p), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return m.withUser(p), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.ProfileID] = profile
	return nil
}

// withUser 模拟 Preload("User")
func (m *mockProfileRepo) withUser(p *model.Profile) *model.Profile {
	if p.User == nil && m.users != nil {
		if u, ok := m.users.users[p.UserID]; ok {
			p.User = u
		}
	}
	return p
}

// ── Mock InternshipRepository ──

type mockInternshipRepo struct {
	internships map[string]*model.Internship // key: internship_id
	profiles    *mockProfileRepo
	seq         int
}

func newMockInternshipRepo(profiles *mockProfileRepo) *mockInternshipRepo {
	return &mockInternshipRepo{internships: make(map[string]*model.Internship), profiles: profiles}
}

func (m *mockInternshipRepo) Create(_ context.Context, internship *model.Internship) error {
	if internship.InternshipID == "" {
		m.seq++
		internship.InternshipID = fmt.Sprintf("internship-%d", m.seq)
	}
	m.internships[internship.InternshipID] = internship
	return nil
}

func (m *mockInternshipRepo) GetByID(_ context.Context, id string) (*model.Internship, error) {
	if i, ok := m.internships[id]; ok {
		return m.withPoster(i), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternshipRepo) Update(_ context.Context, internship *model.Internship) error {
	m.internships[internship.InternshipID] = internship
	return nil
}

func (m *mockInternshipRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.internships[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.internships, id)
	return nil
}

func (m *mockInternshipRepo) List(_ context.Context, filters *repository.InternshipListFilters, offset, limit int) ([]model.Internship, int64, error) {
	var all []model.Internship
	for _, i := range m.internships {
		if filters != nil {
			if filters.ActiveOnly && !i.IsActive {
				continue
			}
			if filters.PosterID != "" && i.PosterID != filters.PosterID {
				continue
			}
			if filters.Q != "" && !icontains(i.Title, filters.Q) &&
				!icontains(i.Description, filters.Q) && !icontains(i.SkillsRequired, filters.Q) {
				continue
			}
			if filters.Skills != "" && !icontains(i.SkillsRequired, filters.Skills) {
				continue
			}
			if filters.Location != "" && !icontains(i.Location, filters.Location) {
				continue
			}
			if filters.Remote != nil && i.Remote != *filters.Remote {
				continue
			}
		}
		all = append(all, *m.withPoster(i))
	}
	sort.Slice(all, func(a, b int) bool {
		return all[a].CreatedAt.After(all[b].CreatedAt)
	})
	total := int64(len(all))
	return slicePage(all, offset, limit), total, nil
}

// withPoster 模拟 Preload("Poster")
func (m *mockInternshipRepo) withPoster(i *model.Internship) *model.Internship {
	if i.Poster == nil && m.profiles != nil {
		if p, ok := m.profiles.profiles[i.PosterID]; ok {
			i.Poster = p
		}
	}
	return i
}

// ── Mock ApplicationRepository ──

type mockApplicationRepo struct {
	applications map[string]*model.Application // key: application_id
	internships  *mockInternshipRepo
	profiles     *mockProfileRepo
	seq          int
}

func newMockApplicationRepo(internships *mockInternshipRepo, profiles *mockProfileRepo) *mockApplicationRepo {
	return &mockApplicationRepo{
		applications: make(map[string]*model.Application),
		internships:  internships,
		profiles:     profiles,
	}
}

func (m *mockApplicationRepo) Create(_ context.Context, application *model.Application) error {
	// 唯一约束 (internship_id, student_id) 的 mock 等价物
	for _, a := range m.applications {
		if a.InternshipID == application.InternshipID && a.StudentID == application.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	if application.ApplicationID == "" {
		m.seq++
		application.ApplicationID = fmt.Sprintf("application-%d", m.seq)
	}
	m.applications[application.ApplicationID] = application
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.applications[id]; ok {
		return m.withAssociations(a), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := m.applications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (m *mockApplicationRepo) ListByStudent(_ context.Context, studentID string, offset, limit int) ([]model.Application, int64, error) {
	return m.list(func(a *model.Application) bool { return a.StudentID == studentID }, offset, limit)
}

func (m *mockApplicationRepo) ListByInternship(_ context.Context, internshipID string, offset, limit int) ([]model.Application, int64, error) {
	return m.list(func(a *model.Application) bool { return a.InternshipID == internshipID }, offset, limit)
}

func (m *mockApplicationRepo) ListByPoster(_ context.Context, posterID string, offset, limit int) ([]model.Application, int64, error) {
	return m.list(func(a *model.Application) bool {
		if m.internships == nil {
			return false
		}
		i, ok := m.internships.internships[a.InternshipID]
		return ok && i.PosterID == posterID
	}, offset, limit)
}

func (m *mockApplicationRepo) CountByInternshipIDs(_ context.Context, internshipIDs []string) (map[string]int64, error) {
	result := make(map[string]int64, len(internshipIDs))
	for _, id := range internshipIDs {
		for _, a := range m.applications {
			if a.InternshipID == id {
				result[id]++
			}
		}
	}
	return result, nil
}

func (m *mockApplicationRepo) list(match func(*model.Application) bool, offset, limit int) ([]model.Application, int64, error) {
	var all []model.Application
	for _, a := range m.applications {
		if match(a) {
			all = append(all, *m.withAssociations(a))
		}
	}
	sort.Slice(all, func(a, b int) bool {
		return all[a].AppliedAt.After(all[b].AppliedAt)
	})
	total := int64(len(all))
	return slicePage(all, offset, limit), total, nil
}

// withAssociations 模拟 Preload("Internship") / Preload("Student")
func (m *mockApplicationRepo) withAssociations(a *model.Application) *model.Application {
	if a.Internship == nil && m.internships != nil {
		if i, ok := m.internships.internships[a.InternshipID]; ok {
			a.Internship = m.internships.withPoster(i)
		}
	}
	if a.Student == nil && m.profiles != nil {
		if p, ok := m.profiles.profiles[a.StudentID]; ok {
			a.Student = m.profiles.withUser(p)
		}
	}
	return a
}

// ── 公共辅助 ──

// icontains 不区分大小写的子串匹配（模拟 ILIKE）
func icontains(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// slicePage 简单分页，limit < 0 表示不限制
func slicePage[T any](all []T, offset, limit int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

// newMockRepository 组装全套 mock 仓储
func newMockRepository() (*repository.Repository, *mockUserRepo, *mockProfileRepo, *mockInternshipRepo, *mockApplicationRepo) {
	userRepo := newMockUserRepo()
	profileRepo := newMockProfileRepo(userRepo)
	internshipRepo := newMockInternshipRepo(profileRepo)
	applicationRepo := newMockApplicationRepo(internshipRepo, profileRepo)
	repo := &repository.Repository{
		User:        userRepo,
		Profile:     profileRepo,
		Internship:  internshipRepo,
		Application: applicationRepo,
	}
	return repo, userRepo, profileRepo, internshipRepo, applicationRepo
}
