package usecase

import (
	"context"
	"encoding/json"
	"time"

	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	skills    []repository.Skill
	exists    map[uuid.UUID]bool
	listErr   error
	existsErr error
	listCalls int
}

func (m *mockSkillRepo) List(context.Context) ([]repository.Skill, error) {
	m.listCalls++
	return m.skills, m.listErr
}

func (m *mockSkillRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists[id], nil
}

type mockUserSkillRepo struct {
	items     []repository.UserSkill
	findErr   error
	upserts   []repository.UserSkillUpsert
	upsertErr error
}

func (m *mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.items, m.findErr
}

func (m *mockUserSkillRepo) Upsert(_ context.Context, us repository.UserSkillUpsert) (repository.UserSkill, error) {
	if m.upsertErr != nil {
		return repository.UserSkill{}, m.upsertErr
	}
	m.upserts = append(m.upserts, us)
	return repository.UserSkill{
		ID:           uuid.New(),
		UserID:       us.UserID,
		SkillID:      us.SkillID,
		SkillName:    "Go",
		CurrentLevel: us.CurrentLevel,
		TargetLevel:  us.TargetLevel,
		IsLearning:   us.IsLearning,
		UpdatedAt:    time.Now().UTC(),
	}, nil
}

type mockUserRepo struct {
	users  map[uuid.UUID]repository.User
	getErr error
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.getErr != nil {
		return repository.User{}, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockUserRepo) Upsert(_ context.Context, up repository.UserUpsert) (repository.User, error) {
	u := repository.User{
		ID:           up.ID,
		Email:        up.Email,
		PasswordHash: up.PasswordHash,
		FirstName:    up.FirstName,
		LastName:     up.LastName,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if m.users == nil {
		m.users = map[uuid.UUID]repository.User{}
	}
	m.users[u.ID] = u
	return u, nil
}

type mockCareerPathRepo struct {
	paths []repository.CareerPath
	err   error
}

func (m *mockCareerPathRepo) List(context.Context) ([]repository.CareerPath, error) {
	return m.paths, m.err
}

type mockRecRepo struct {
	existing  map[uuid.UUID]bool
	inserted  []repository.RecommendationInsert
	insertErr error
	rows      []repository.RecommendationWithPath
	listErr   error
	toggled   []uuid.UUID
	toggleOK  bool
	toggleErr error
}

func (m *mockRecRepo) InsertIgnore(_ context.Context, rec repository.RecommendationInsert) (bool, error) {
	if m.insertErr != nil {
		return false, m.insertErr
	}
	if m.existing[rec.CareerPathID] {
		return false, nil
	}
	m.inserted = append(m.inserted, rec)
	return true, nil
}

func (m *mockRecRepo) ListByUser(context.Context, uuid.UUID) ([]repository.RecommendationWithPath, error) {
	return m.rows, m.listErr
}

func (m *mockRecRepo) ToggleBookmark(_ context.Context, _ uuid.UUID, careerPathID uuid.UUID) (bool, error) {
	if m.toggleErr != nil {
		return false, m.toggleErr
	}
	m.toggled = append(m.toggled, careerPathID)
	return m.toggleOK, nil
}

type mockProfileRepo struct {
	profile   repository.UserProfile
	getErr    error
	upserts   []repository.ProfileUpsert
	upsertErr error
	marked    []uuid.UUID
	markErr   error
}

func (m *mockProfileRepo) GetByUserID(context.Context, uuid.UUID) (repository.UserProfile, error) {
	if m.getErr != nil {
		return repository.UserProfile{}, m.getErr
	}
	return m.profile, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p repository.ProfileUpsert) (repository.UserProfile, error) {
	if m.upsertErr != nil {
		return repository.UserProfile{}, m.upsertErr
	}
	m.upserts = append(m.upserts, p)
	return repository.UserProfile{
		ID:              uuid.New(),
		UserID:          p.UserID,
		AgeRange:        p.AgeRange,
		ExperienceLevel: p.ExperienceLevel,
		EducationLevel:  p.EducationLevel,
		CurrentField:    p.CurrentField,
		CareerGoals:     p.CareerGoals,
	}, nil
}

func (m *mockProfileRepo) MarkOnboardingComplete(_ context.Context, userID uuid.UUID) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.marked = append(m.marked, userID)
	return nil
}

type mockAssessmentRepo struct {
	created   []repository.Assessment
	createErr error
	latest    repository.Assessment
	latestErr error
}

func (m *mockAssessmentRepo) Create(_ context.Context, a repository.Assessment) (repository.Assessment, error) {
	if m.createErr != nil {
		return repository.Assessment{}, m.createErr
	}
	a.ID = uuid.New()
	a.CompletedAt = time.Now().UTC()
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockAssessmentRepo) LatestByUser(context.Context, uuid.UUID) (repository.Assessment, error) {
	if m.latestErr != nil {
		return repository.Assessment{}, m.latestErr
	}
	return m.latest, nil
}

type mockRecommender struct {
	generated []uuid.UUID
	genErr    error
}

func (m *mockRecommender) Generate(_ context.Context, userID uuid.UUID) error {
	if m.genErr != nil {
		return m.genErr
	}
	m.generated = append(m.generated, userID)
	return nil
}

func (m *mockRecommender) List(context.Context, uuid.UUID) ([]RecommendationItem, error) {
	return nil, nil
}

func (m *mockRecommender) ToggleBookmark(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

type mockNotifier struct {
	notified []uuid.UUID
}

func (m *mockNotifier) RecommendationsReady(userID uuid.UUID) {
	m.notified = append(m.notified, userID)
}

type mockCourseRepo struct {
	courses   []repository.Course
	listErr   error
	exists    map[uuid.UUID]bool
	existsErr error
}

func (m *mockCourseRepo) ListRecommended(_ context.Context, _ []uuid.UUID, limit int) ([]repository.Course, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if limit > 0 && len(m.courses) > limit {
		return m.courses[:limit], nil
	}
	return m.courses, nil
}

func (m *mockCourseRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists[id], nil
}

type mockEnrollmentRepo struct {
	enrollErr error
	enrolled  []uuid.UUID
	listRows  []repository.UserCourseWithCourse
	listErr   error
	updates   []repository.ProgressUpdate
	updateErr error
}

func (m *mockEnrollmentRepo) Enroll(_ context.Context, userID uuid.UUID, courseID uuid.UUID) (repository.UserCourse, error) {
	if m.enrollErr != nil {
		return repository.UserCourse{}, m.enrollErr
	}
	m.enrolled = append(m.enrolled, courseID)
	return repository.UserCourse{
		ID:        uuid.New(),
		UserID:    userID,
		CourseID:  courseID,
		Status:    repository.CourseStatusEnrolled,
		Progress:  0,
		StartedAt: time.Now().UTC(),
	}, nil
}

func (m *mockEnrollmentRepo) ListByUser(context.Context, uuid.UUID) ([]repository.UserCourseWithCourse, error) {
	return m.listRows, m.listErr
}

func (m *mockEnrollmentRepo) UpdateProgress(_ context.Context, up repository.ProgressUpdate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, up)
	return nil
}

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}
