package contact

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

type memoryStore struct {
	saved []types.StoredSubmission
	err   error
}

func (m *memoryStore) SaveSubmission(_ context.Context, sub types.StoredSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, sub)
	return nil
}

type recordingNotifier struct {
	notified []types.StoredSubmission
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, sub types.StoredSubmission) error {
	r.notified = append(r.notified, sub)
	return r.err
}

func validSubmission() types.ContactSubmission {
	return types.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "Hello there",
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func fixedService(store Store, notifier Notifier, hasher *IPHasher) *Service {
	s := NewService(store, notifier, hasher, quietLogger())
	s.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("IST", 19800)) }
	s.newID = func() uuid.UUID { return uuid.MustParse("11111111-2222-3333-4444-555555555555") }
	return s
}

func TestService_AcceptStoresAndNotifies(t *testing.T) {
	store := &memoryStore{}
	notifier := &recordingNotifier{}
	hasher, err := NewIPHasher([]byte("secret"))
	require.NoError(t, err)

	s := fixedService(store, notifier, hasher)
	ctx := WithClientIP(context.Background(), "203.0.113.7")

	ok, err := s.Accept(ctx, validSubmission())
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, store.saved, 1)
	got := store.saved[0]
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", got.ID.String())
	assert.Equal(t, time.UTC, got.ReceivedAt.Location())
	assert.Equal(t, hasher.Hash("203.0.113.7"), got.IPHash)
	assert.NotContains(t, got.IPHash, "203.0.113.7")

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, got, notifier.notified[0])
}

func TestService_NoBackends(t *testing.T) {
	ok, err := NewService(nil, nil, nil, quietLogger()).Accept(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_TrimsFields(t *testing.T) {
	store := &memoryStore{}
	sub := types.ContactSubmission{Name: "  Ada ", Email: " ada@example.com ", Message: "\nhi\n"}

	ok, err := fixedService(store, nil, nil).Accept(context.Background(), sub)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Ada", store.saved[0].Name)
	assert.Equal(t, "ada@example.com", store.saved[0].Email)
	assert.Equal(t, "hi", store.saved[0].Message)
}

func TestService_RejectsInvalidSubmission(t *testing.T) {
	store := &memoryStore{}
	sub := validSubmission()
	sub.Email = "not-an-email"

	ok, err := fixedService(store, nil, nil).Accept(context.Background(), sub)
	assert.False(t, ok)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Email", verrs[0].Field())
	assert.Empty(t, store.saved)
}

func TestService_WhitespaceOnlyIsMissing(t *testing.T) {
	sub := validSubmission()
	sub.Message = "   "

	ok, err := fixedService(nil, nil, nil).Accept(context.Background(), sub)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestService_StoreFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	notifier := &recordingNotifier{}

	ok, err := fixedService(&memoryStore{err: storeErr}, notifier, nil).Accept(context.Background(), validSubmission())
	assert.False(t, ok)
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, notifier.notified)
}

func TestService_NotifyFailure(t *testing.T) {
	notifyErr := errors.New("smtp down")

	ok, err := fixedService(&memoryStore{}, &recordingNotifier{err: notifyErr}, nil).Accept(context.Background(), validSubmission())
	assert.False(t, ok)
	assert.ErrorIs(t, err, notifyErr)
}

func TestAcceptorFunc(t *testing.T) {
	var a Acceptor = AcceptorFunc(func(context.Context, types.ContactSubmission) (bool, error) {
		return true, nil
	})
	ok, err := a.Accept(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClientIP(t *testing.T) {
	assert.Empty(t, ClientIP(context.Background()))
	assert.Equal(t, "10.0.0.1", ClientIP(WithClientIP(context.Background(), "10.0.0.1")))
}

func TestIPHasher(t *testing.T) {
	a, err := NewIPHasher([]byte("key-a"))
	require.NoError(t, err)
	b, err := NewIPHasher([]byte("key-b"))
	require.NoError(t, err)

	assert.Len(t, a.Hash("192.0.2.1"), 64)
	assert.Equal(t, a.Hash("192.0.2.1"), a.Hash("192.0.2.1"))
	assert.NotEqual(t, a.Hash("192.0.2.1"), a.Hash("192.0.2.2"))
	assert.NotEqual(t, a.Hash("192.0.2.1"), b.Hash("192.0.2.1"))
	assert.Empty(t, a.Hash(""))
}

func TestIPHasher_KeyTooLong(t *testing.T) {
	_, err := NewIPHasher(bytes.Repeat([]byte("k"), 65))
	assert.Error(t, err)

	unkeyed, err := NewIPHasher(nil)
	require.NoError(t, err)
	assert.Len(t, unkeyed.Hash("192.0.2.1"), 64)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := LogNotifier{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	err := n.Notify(context.Background(), types.StoredSubmission{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Message: "hello"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"new contact message"`)
	assert.Contains(t, buf.String(), `"message_length":5`)
}

func TestSMTPNotifier(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	n := &SMTPNotifier{
		Host:     "smtp.example.com",
		Username: "site@example.com",
		Password: "app-password",
		To:       "owner@example.com",
		SendMail: func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		},
	}

	sub := types.StoredSubmission{
		ID:         uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Name:       "Ada\r\nBcc: victim@example.com",
		Email:      "ada@example.com",
		Message:    "Hello",
		ReceivedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, n.Notify(context.Background(), sub))

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	headers, body, found := strings.Cut(string(gotMsg), "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, headers, "Subject: Portfolio Contact: Ada  Bcc: victim@example.com\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "11111111-2222-3333-4444-555555555555")
}

func TestSMTPNotifier_EncodesNonASCIISubject(t *testing.T) {
	var gotMsg []byte
	n := &SMTPNotifier{
		Host: "smtp.example.com", Username: "site@example.com", Password: "p", To: "owner@example.com",
		SendMail: func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			gotMsg = msg
			return nil
		},
	}

	sub := types.StoredSubmission{ID: uuid.New(), Name: "José Müller ✓", Email: "jose@example.com", Message: "Olá"}
	require.NoError(t, n.Notify(context.Background(), sub))

	headers, body, found := strings.Cut(string(gotMsg), "\r\n\r\n")
	require.True(t, found)
	assert.NotContains(t, headers, "José")
	assert.NotContains(t, headers, "✓")

	var subject string
	for _, line := range strings.Split(headers, "\r\n") {
		if v, ok := strings.CutPrefix(line, "Subject: "); ok {
			subject = v
		}
	}
	assert.Contains(t, subject, "=?utf-8?q?")
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: José Müller ✓", decoded)

	assert.Contains(t, body, "Name: José Müller ✓")
}

func TestSMTPNotifier_NotConfigured(t *testing.T) {
	n := &SMTPNotifier{Host: "smtp.example.com"}
	err := n.Notify(context.Background(), types.StoredSubmission{})
	assert.ErrorIs(t, err, ErrSMTPNotConfigured)
}

func TestSMTPNotifier_SendFailure(t *testing.T) {
	n := &SMTPNotifier{
		Host: "smtp.example.com", Port: "2525", Username: "u", Password: "p", To: "t@example.com",
		SendMail: func(addr string, _ smtp.Auth, _ string, _ []string, _ []byte) error {
			assert.Equal(t, "smtp.example.com:2525", addr)
			return errors.New("connection refused")
		},
	}
	err := n.Notify(context.Background(), types.StoredSubmission{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPNotifier_CancelledContext(t *testing.T) {
	called := false
	n := &SMTPNotifier{
		Host: "h", Username: "u", Password: "p", To: "t@example.com",
		SendMail: func(string, smtp.Auth, string, []string, []byte) error {
			called = true
			return nil
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.Notify(ctx, types.StoredSubmission{}), context.Canceled)
	assert.False(t, called)
}
