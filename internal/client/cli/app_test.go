package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abylaikhan/uniadvisor/internal/client/api"
	"github.com/abylaikhan/uniadvisor/internal/client/models"
	"github.com/abylaikhan/uniadvisor/internal/logging"
)

// fakeAPI implements platformAPI with overridable function fields. A nil
// field returns zero values, so each test only wires what it exercises.
type fakeAPI struct {
	authenticated bool

	loginFn     func(email, password string) (api.TokenPair, error)
	registerFn  func(email, password, fullName string) (api.TokenPair, error)
	sendOTPFn   func(phone string) error
	verifyOTPFn func(phone, code string) (api.TokenPair, error)
	meFn        func() (models.Account, error)
	saveProfFn  func(p models.Profile) error

	listUnisFn   func() ([]models.University, error)
	listMajorsFn func(universityID int) ([]models.Major, error)
	recommendFn  func(userID, maxResults int) ([]models.University, error)

	createAppFn  func(userID, universityID, majorID int, notes string) (string, error)
	getAppFn     func(id string) (models.Application, error)
	uploadFn     func(appID, filename, documentType string) (models.Document, error)
	submitFn     func(id string) error
	listAppsFn   func(userID int, status string) (api.ApplicationsPage, error)
	listNotifsFn func(userID int, unreadOnly bool) (api.NotificationsPage, error)
	markReadFn   func(notificationID string, userID int) error

	questionsFn func(categories []string) ([]models.Question, error)
	evaluateFn  func(answers []models.Answer) ([]models.Recommendation, error)
	resultsFn   func() ([]models.AssessmentResult, error)

	sessionFn func() (string, error)
	optionsFn func() (models.FilterOptions, error)
	chatFn    func(message, sessionID string, filters models.ChatFilters) (models.ChatReply, error)
	queryFn   func(message, sessionID string, filters models.ChatFilters) (models.ChatReply, error)
	compareFn func(ids []int) ([]models.University, error)
}

func (f *fakeAPI) IsAuthenticated(context.Context) bool { return f.authenticated }
func (f *fakeAPI) Logout(context.Context) error         { return nil }

func (f *fakeAPI) Login(_ context.Context, email, password string) (api.TokenPair, error) {
	if f.loginFn == nil {
		return api.TokenPair{}, nil
	}
	return f.loginFn(email, password)
}

func (f *fakeAPI) Register(_ context.Context, email, password, fullName string) (api.TokenPair, error) {
	if f.registerFn == nil {
		return api.TokenPair{}, nil
	}
	return f.registerFn(email, password, fullName)
}

func (f *fakeAPI) SendOTP(_ context.Context, phone string) error {
	if f.sendOTPFn == nil {
		return nil
	}
	return f.sendOTPFn(phone)
}

func (f *fakeAPI) VerifyOTP(_ context.Context, phone, code string) (api.TokenPair, error) {
	if f.verifyOTPFn == nil {
		return api.TokenPair{}, nil
	}
	return f.verifyOTPFn(phone, code)
}

func (f *fakeAPI) Me(context.Context) (models.Account, error) {
	if f.meFn == nil {
		return models.Account{User: models.User{ID: 1}}, nil
	}
	return f.meFn()
}

func (f *fakeAPI) SaveProfile(_ context.Context, p models.Profile) error {
	if f.saveProfFn == nil {
		return nil
	}
	return f.saveProfFn(p)
}

func (f *fakeAPI) ListUniversities(context.Context) ([]models.University, error) {
	if f.listUnisFn == nil {
		return nil, nil
	}
	return f.listUnisFn()
}

func (f *fakeAPI) ListMajors(_ context.Context, universityID int) ([]models.Major, error) {
	if f.listMajorsFn == nil {
		return nil, nil
	}
	return f.listMajorsFn(universityID)
}

func (f *fakeAPI) Recommend(_ context.Context, userID, maxResults int) ([]models.University, error) {
	if f.recommendFn == nil {
		return nil, nil
	}
	return f.recommendFn(userID, maxResults)
}

func (f *fakeAPI) CreateApplication(_ context.Context, userID, universityID, majorID int, notes string) (string, error) {
	if f.createAppFn == nil {
		return "", nil
	}
	return f.createAppFn(userID, universityID, majorID, notes)
}

func (f *fakeAPI) GetApplication(_ context.Context, id string) (models.Application, error) {
	if f.getAppFn == nil {
		return models.Application{ID: id}, nil
	}
	return f.getAppFn(id)
}

func (f *fakeAPI) UploadDocument(_ context.Context, appID, filename string, _ io.Reader, documentType string) (models.Document, error) {
	if f.uploadFn == nil {
		return models.Document{}, nil
	}
	return f.uploadFn(appID, filename, documentType)
}

func (f *fakeAPI) SubmitApplication(_ context.Context, id string) error {
	if f.submitFn == nil {
		return nil
	}
	return f.submitFn(id)
}

func (f *fakeAPI) ListUserApplications(_ context.Context, userID int, status string) (api.ApplicationsPage, error) {
	if f.listAppsFn == nil {
		return api.ApplicationsPage{}, nil
	}
	return f.listAppsFn(userID, status)
}

func (f *fakeAPI) ListNotifications(_ context.Context, userID int, unreadOnly bool) (api.NotificationsPage, error) {
	if f.listNotifsFn == nil {
		return api.NotificationsPage{}, nil
	}
	return f.listNotifsFn(userID, unreadOnly)
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, notificationID string, userID int) error {
	if f.markReadFn == nil {
		return nil
	}
	return f.markReadFn(notificationID, userID)
}

func (f *fakeAPI) GenerateQuestions(_ context.Context, categories []string) ([]models.Question, error) {
	if f.questionsFn == nil {
		return nil, nil
	}
	return f.questionsFn(categories)
}

func (f *fakeAPI) Evaluate(_ context.Context, answers []models.Answer) ([]models.Recommendation, error) {
	if f.evaluateFn == nil {
		return nil, nil
	}
	return f.evaluateFn(answers)
}

func (f *fakeAPI) MyResults(context.Context) ([]models.AssessmentResult, error) {
	if f.resultsFn == nil {
		return nil, nil
	}
	return f.resultsFn()
}

func (f *fakeAPI) CreateChatSession(context.Context) (string, error) {
	if f.sessionFn == nil {
		return "sess-1", nil
	}
	return f.sessionFn()
}

func (f *fakeAPI) ChatFilterOptions(context.Context) (models.FilterOptions, error) {
	if f.optionsFn == nil {
		return models.FilterOptions{}, nil
	}
	return f.optionsFn()
}

func (f *fakeAPI) Chat(_ context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error) {
	if f.chatFn == nil {
		return models.ChatReply{}, nil
	}
	return f.chatFn(message, sessionID, filters)
}

func (f *fakeAPI) Query(_ context.Context, message, sessionID string, filters models.ChatFilters) (models.ChatReply, error) {
	if f.queryFn == nil {
		return models.ChatReply{}, nil
	}
	return f.queryFn(message, sessionID, filters)
}

func (f *fakeAPI) CompareUniversities(_ context.Context, ids []int) ([]models.University, error) {
	if f.compareFn == nil {
		return nil, nil
	}
	return f.compareFn(ids)
}

// fakeStore is an in-memory userStore.
type fakeStore struct {
	token  string
	userID int
}

func (f *fakeStore) AccessToken(context.Context) (string, error) { return f.token, nil }
func (f *fakeStore) SetUserID(_ context.Context, id int) error   { f.userID = id; return nil }
func (f *fakeStore) UserID(context.Context) (int, error)         { return f.userID, nil }

// newTestApp builds an App over the fakes with a captured output buffer.
func newTestApp(f *fakeAPI) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		api:    f,
		store:  &fakeStore{userID: 1},
		log:    logging.NopLogger{},
		reader: bufio.NewReader(strings.NewReader("")),
		out:    out,
		notify: NewNotifier(out),
	}, out
}

// stubTexts replaces getSimpleText with a queue of scripted answers. The
// last answer repeats once the queue drains.
func stubTexts(t *testing.T, answers ...string) func() {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		a := answers[min(i, len(answers)-1)]
		i++
		return a, nil
	}
	return func() { getSimpleText = orig }
}

func stubPasswords(t *testing.T, answers ...string) func() {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) (string, error) {
		a := answers[min(i, len(answers)-1)]
		i++
		return a, nil
	}
	return func() { getPassword = orig }
}

func stubConfirm(t *testing.T, answers ...bool) func() {
	t.Helper()
	orig := getConfirmation
	i := 0
	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		a := answers[min(i, len(answers)-1)]
		i++
		return a, nil
	}
	return func() { getConfirmation = orig }
}

func TestStartNotificationWatcher_AnnouncesIncrease(t *testing.T) {
	counts := []int{0, 2, 2}
	polls := make(chan struct{}, len(counts)+4)
	poll := 0
	f := &fakeAPI{
		authenticated: true,
		listNotifsFn: func(_ int, unreadOnly bool) (api.NotificationsPage, error) {
			if !unreadOnly {
				t.Error("watcher must poll unread only")
			}
			n := counts[min(poll, len(counts)-1)]
			poll++
			polls <- struct{}{}
			return api.NotificationsPage{UnreadCount: n}, nil
		},
	}
	a, out := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartNotificationWatcher(ctx, time.Millisecond)
		close(done)
	}()

	// Wait for the baseline poll and the increase to be observed.
	for i := 0; i < 3; i++ {
		select {
		case <-polls:
		case <-time.After(time.Second):
			t.Fatal("watcher never polled")
		}
	}
	cancel()
	<-done

	if !strings.Contains(out.String(), "2 unread notifications") {
		t.Errorf("increase not announced:\n%s", out.String())
	}
}

func TestStartNotificationWatcher_SilentWhenLoggedOut(t *testing.T) {
	calls := 0
	f := &fakeAPI{
		authenticated: false,
		listNotifsFn: func(int, bool) (api.NotificationsPage, error) {
			calls++
			return api.NotificationsPage{}, nil
		},
	}
	a, out := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartNotificationWatcher(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	if calls != 0 {
		t.Errorf("polled %d times while logged out", calls)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestUserID_CachedAndRefetched(t *testing.T) {
	meCalls := 0
	f := &fakeAPI{meFn: func() (models.Account, error) {
		meCalls++
		return models.Account{User: models.User{ID: 42}}, nil
	}}
	a, _ := newTestApp(f)
	a.store = &fakeStore{}

	id, err := a.userID(context.Background())
	if err != nil {
		t.Fatalf("userID err: %v", err)
	}
	if id != 42 {
		t.Errorf("id = %d, want 42", id)
	}

	// Second call hits the cache.
	if _, err := a.userID(context.Background()); err != nil {
		t.Fatalf("userID err: %v", err)
	}
	if meCalls != 1 {
		t.Errorf("Me called %d times, want 1", meCalls)
	}
}
