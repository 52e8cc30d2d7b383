package portal

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"barangay-app-client/core/domain"
	"barangay-app-client/core/interfaces"
)

// mockHTTPClient implements interfaces.HTTPClient with a func field.
type mockHTTPClient struct {
	doFunc func(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Do(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
	if m.doFunc != nil {
		return m.doFunc(ctx, method, url, header, body)
	}
	return &stubResponse{status: 200, body: `{}`}, nil
}

type stubResponse struct {
	status int
	body   string
}

func (r *stubResponse) StatusCode() int          { return r.status }
func (r *stubResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r *stubResponse) Header(key string) string { return "" }

const authBody = `{"token": "tok-1", "userId": 7, "email": "juan@example.com", "fullName": "Juan dela Cruz", "isAdmin": false}`

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.Session() == nil || client.Gateway() == nil || client.Interactions() == nil || client.Content() == nil {
		t.Error("client missing a wired service")
	}
	if client.Gateway().Origin() != "http://localhost:8080" {
		t.Errorf("Origin = %q, want default", client.Gateway().Origin())
	}
}

func TestNewClient_EmptyOriginRejected(t *testing.T) {
	_, err := NewClient(WithOrigin(""))
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !IsConfigurationError(err) {
		t.Errorf("err = %v, want configuration error", err)
	}
}

func TestNewClient_InvalidRateLimitRejected(t *testing.T) {
	_, err := NewClient(WithRateLimit(0, 0))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewClient_InvalidUploadMaxWaitRejected(t *testing.T) {
	_, err := NewClient(WithUploadMaxWait(-time.Second))
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLogin_PersistsSessionAndSignals(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
			return &stubResponse{status: 200, body: authBody}, nil
		},
	}
	client, err := NewClient(WithHTTPClient(httpClient))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ch, cancel := client.Session().Subscribe()
	defer cancel()
	<-ch // replayed startup signal

	auth, err := client.Login(context.Background(), "juan@example.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if auth.Token != "tok-1" {
		t.Errorf("Token = %q", auth.Token)
	}
	if !client.Session().IsLoggedIn() {
		t.Error("session not persisted after login")
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Error("no auth-change signal after login")
	}
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
			return &stubResponse{status: 401, body: `{"error": "Invalid email or password"}`}, nil
		},
	}
	client, _ := NewClient(WithHTTPClient(httpClient))

	_, err := client.Login(context.Background(), "juan@example.com", "wrong")
	if err == nil {
		t.Fatal("expected login failure")
	}
	if client.Session().IsLoggedIn() {
		t.Error("failed login left a session behind")
	}
}

func TestSignup_FailureClearsLingeringAuth(t *testing.T) {
	status := 200
	httpClient := &mockHTTPClient{
		doFunc: func(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
			if status == 200 {
				return &stubResponse{status: 200, body: authBody}, nil
			}
			return &stubResponse{status: 400, body: `{"error": "Email already registered"}`}, nil
		},
	}
	client, _ := NewClient(WithHTTPClient(httpClient))

	if _, err := client.Login(context.Background(), "juan@example.com", "pw"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	status = 400
	_, err := client.Signup(context.Background(), domain.SignupRequest{Email: "other@example.com", Password: "pw", FullName: "Other"})
	if err == nil {
		t.Fatal("expected signup failure")
	}
	if client.Session().IsLoggedIn() {
		t.Error("failed signup did not clear the session")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(ctx context.Context, method, url string, header http.Header, body io.Reader) (interfaces.Response, error) {
			return &stubResponse{status: 200, body: authBody}, nil
		},
	}
	client, _ := NewClient(WithHTTPClient(httpClient))
	client.Login(context.Background(), "juan@example.com", "pw")

	client.Logout(context.Background())

	if client.Session().IsLoggedIn() {
		t.Error("session survived logout")
	}
}

func TestNewUpload_FreshCoordinatorPerForm(t *testing.T) {
	client, _ := NewClient()

	a := client.NewUpload()
	b := client.NewUpload()
	if a == b {
		t.Error("NewUpload returned a shared coordinator")
	}

	a.SelectFile("photo.png", "image/png", []byte("png"))
	if b.Snapshot().HasFile {
		t.Error("coordinator state leaked between forms")
	}
}
