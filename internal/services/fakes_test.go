package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"conferencecentral/internal/domain"
)

// In-memory fakes for the repository and infrastructure ports.

type fakeConferenceRepo struct {
	byID          map[string]*domain.Conference
	nextID        int
	err           error // if set, Create returns this error
	queryResult   []*domain.Conference
	lastFilterSet *domain.FilterSet
	almostSoldOut []string
}

func newFakeConferenceRepo() *fakeConferenceRepo {
	return &fakeConferenceRepo{byID: make(map[string]*domain.Conference), nextID: 1}
}

func (f *fakeConferenceRepo) Create(ctx context.Context, conf *domain.Conference) error {
	if f.err != nil {
		return f.err
	}
	conf.ID = fmt.Sprintf("conf-%d", f.nextID)
	f.nextID++
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if conf, ok := f.byID[id]; ok {
		return conf, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeConferenceRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, conf := range f.byID {
		if conf.OrganizerID == organizerID {
			out = append(out, conf)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeConferenceRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	var out []*domain.Conference
	for _, id := range ids {
		if conf, ok := f.byID[id]; ok {
			out = append(out, conf)
		}
	}
	return out, nil
}

func (f *fakeConferenceRepo) Update(ctx context.Context, conf *domain.Conference) error {
	if _, ok := f.byID[conf.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[conf.ID] = conf
	return nil
}

func (f *fakeConferenceRepo) Query(ctx context.Context, fs *domain.FilterSet) ([]*domain.Conference, error) {
	f.lastFilterSet = fs
	return f.queryResult, nil
}

func (f *fakeConferenceRepo) ListAlmostSoldOutNames(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.almostSoldOut, nil
}

type fakeProfileRepo struct {
	byUserID map[string]*domain.Profile
	wishing  []*domain.Profile
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) GetOrCreate(ctx context.Context, userID, displayName, email string) (*domain.Profile, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if prof, ok := f.byUserID[userID]; ok {
		return prof, false, nil
	}
	prof := &domain.Profile{
		UserID:       userID,
		DisplayName:  displayName,
		MainEmail:    email,
		TeeShirtSize: domain.TeeShirtSizeNotSpecified,
	}
	f.byUserID[userID] = prof
	return prof, true, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if prof, ok := f.byUserID[userID]; ok {
		return prof, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	for _, prof := range f.byUserID {
		if prof.MainEmail == email {
			return prof, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, prof *domain.Profile) error {
	if _, ok := f.byUserID[prof.UserID]; !ok {
		return domain.ErrNotFound
	}
	f.byUserID[prof.UserID] = prof
	return nil
}

func (f *fakeProfileRepo) ListBySessionWish(ctx context.Context, sessionID string) ([]*domain.Profile, error) {
	return f.wishing, nil
}

type fakeSpeakerRepo struct {
	byEmail map[string]*domain.Speaker
}

func newFakeSpeakerRepo() *fakeSpeakerRepo {
	return &fakeSpeakerRepo{byEmail: make(map[string]*domain.Speaker)}
}

func (f *fakeSpeakerRepo) GetOrCreate(ctx context.Context, email, name, profileUserID string) (*domain.Speaker, bool, error) {
	if sp, ok := f.byEmail[email]; ok {
		return sp, false, nil
	}
	sp := &domain.Speaker{Email: email, Name: name, ProfileUserID: profileUserID}
	f.byEmail[email] = sp
	return sp, true, nil
}

func (f *fakeSpeakerRepo) GetByEmail(ctx context.Context, email string) (*domain.Speaker, error) {
	if sp, ok := f.byEmail[email]; ok {
		return sp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSpeakerRepo) GetByName(ctx context.Context, name string) (*domain.Speaker, error) {
	for _, sp := range f.byEmail {
		if sp.Name == name {
			return sp, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSessionRepo struct {
	byID          map[string]*domain.Session
	nextID        int
	bySpeakerName []*domain.Session
	queryResult   []*domain.Session
	lastFilterSet *domain.FilterSet
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session), nextID: 1}
}

func (f *fakeSessionRepo) Create(ctx context.Context, sess *domain.Session) error {
	sess.ID = fmt.Sprintf("sess-%d", f.nextID)
	f.nextID++
	f.byID[sess.ID] = sess
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if sess, ok := f.byID[id]; ok {
		return sess, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, sess := range f.byID {
		if sess.ConferenceID == conferenceID {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeSessionRepo) ListByType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, sess := range f.byID {
		if sess.ConferenceID == conferenceID && sess.TypeOfSession == typeOfSession {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListByDate(ctx context.Context, conferenceID, date string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, sess := range f.byID {
		if sess.ConferenceID == conferenceID && sess.Date == date {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListBySpeakerName(ctx context.Context, speakerName string) ([]*domain.Session, error) {
	return f.bySpeakerName, nil
}

func (f *fakeSessionRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	var out []*domain.Session
	for _, id := range ids {
		if sess, ok := f.byID[id]; ok {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) CountBySpeaker(ctx context.Context, conferenceID, speakerEmail string) (int, error) {
	count := 0
	for _, sess := range f.byID {
		if sess.ConferenceID == conferenceID && sess.SpeakerEmail == speakerEmail {
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRepo) Query(ctx context.Context, conferenceID string, fs *domain.FilterSet) ([]*domain.Session, error) {
	f.lastFilterSet = fs
	return f.queryResult, nil
}

type fakeRegistrationRepo struct {
	registered map[string]bool // conferenceID|userID
	err        error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registered: make(map[string]bool)}
}

func regKey(conferenceID, userID string) string { return conferenceID + "|" + userID }

func (f *fakeRegistrationRepo) Register(ctx context.Context, conferenceID, userID string) error {
	if f.err != nil {
		return f.err
	}
	key := regKey(conferenceID, userID)
	if f.registered[key] {
		return fmt.Errorf("%w: already registered for this conference", domain.ErrConflict)
	}
	f.registered[key] = true
	return nil
}

func (f *fakeRegistrationRepo) Unregister(ctx context.Context, conferenceID, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := regKey(conferenceID, userID)
	if !f.registered[key] {
		return false, nil
	}
	delete(f.registered, key)
	return true, nil
}

func (f *fakeRegistrationRepo) ListConferenceIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for key := range f.registered {
		confID, uid, ok := strings.Cut(key, "|")
		if ok && uid == userID {
			ids = append(ids, confID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeWishlistRepo struct {
	bySessionUser map[string]bool // userID|sessionID
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{bySessionUser: make(map[string]bool)}
}

func (f *fakeWishlistRepo) Add(ctx context.Context, userID, sessionID string) error {
	key := userID + "|" + sessionID
	if f.bySessionUser[key] {
		return fmt.Errorf("%w: session already on wishlist", domain.ErrConflict)
	}
	f.bySessionUser[key] = true
	return nil
}

func (f *fakeWishlistRepo) ListSessionIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for key := range f.bySessionUser {
		uid, sessionID, ok := strings.Cut(key, "|")
		if ok && uid == userID {
			ids = append(ids, sessionID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeTaskQueue struct {
	tasks []domain.Task
	err   error
}

func (f *fakeTaskQueue) Enqueue(ctx context.Context, task domain.Task) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, task)
	return nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

type fakeMailer struct {
	to      []string
	subject []string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.to = append(f.to, to)
	f.subject = append(f.subject, subject)
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	return "subject:" + templateName, "<p>html</p>", "text", nil
}
