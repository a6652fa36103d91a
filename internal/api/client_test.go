package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mvillar/fastfeet-front/internal/model"
)

const testCookieName = "fastfeet.session"

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, testCookieName, zap.NewNop().Sugar())
	require.NoError(t, err)

	return client
}

func TestLogin_StoresSessionCookie(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var payload model.LoginDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "52998224725", payload.CPF)
		assert.Equal(t, "supersecret", payload.Password)

		http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "token-abc", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))

	err := client.Login(context.Background(), model.LoginDTO{CPF: "52998224725", Password: "supersecret"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", client.SessionToken())
}

func TestResetSession_DropsCookie(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "token-abc", Path: "/"})
	}))

	require.NoError(t, client.Login(context.Background(), model.LoginDTO{}))
	require.NotEmpty(t, client.SessionToken())

	client.ResetSession()

	assert.Empty(t, client.SessionToken())
}

func TestGetOrder_DecodesResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "42",
			"status": "WAITING",
			"recipientName": "John Doe",
			"recipientAddress": "Baker Street 221b",
			"recipientZipcode": "01001000",
			"createdAt": "2025-01-01T08:00:00Z"
		}`))
	}))

	order, err := client.GetOrder(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "42", order.ID)
	assert.Equal(t, model.OrderStatusWaiting, order.Status)
	assert.Nil(t, order.PickUpAt)
	assert.Nil(t, order.DeliveryAt)
}

func TestGetOrders_SendsPagination(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("pageIndex"))
		assert.Equal(t, "8", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{"id": "42", "title": "Box", "status": "DONE", "createdAt": "2025-01-01T08:00:00Z"}],
			"total": 1, "totalPages": 1, "pageIndex": 2, "limit": 8
		}`))
	}))

	page, err := client.GetOrders(context.Background(), 2, 8)

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Box", page.Data[0].Title)
	assert.Equal(t, 2, page.PageIndex)
}

func TestPickUpOrder_UsesPatchAndDecodesTimestamp(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/42/status/pick-up", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pickUpAt": "2025-01-01T10:00:00Z"}`))
	}))

	response, err := client.PickUpOrder(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T10:00:00Z", response.PickUpAt)
}

func TestCreateRecipient_SendsNumericZipcode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recipients", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(1001000), payload["zipcode"])
		assert.Equal(t, "Jane Doe", payload["fullName"])

		w.WriteHeader(http.StatusCreated)
	}))

	err := client.CreateRecipient(context.Background(), model.CreateRecipientDTO{
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		State:        "SP",
		City:         "Sao Paulo",
		Neighborhood: "Centro",
		Address:      "Rua A, 1",
		Zipcode:      "01001000",
	})

	require.NoError(t, err)
}

func TestGetRecipientsLite_SendsSearchQuery(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipients/lite", r.URL.Path)
		assert.Equal(t, "jane", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [], "total": 0, "totalPages": 0, "pageIndex": 1, "limit": 10}`))
	}))

	page, err := client.GetRecipientsLite(context.Background(), 1, "jane")

	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestDo_DecodesUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code": "CONFLICT", "details": "already picked up"}`))
	}))

	_, err := client.PickUpOrder(context.Background(), "42")

	require.Error(t, err)
	var upstream *model.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusConflict, upstream.Status)
	assert.Equal(t, "already picked up", upstream.Details)
	assert.Equal(t, "already picked up", model.UpstreamDetails(err, "fallback"))
}

func TestDo_RecognizesSessionExpiry(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": "UNAUTHORIZED", "details": "access denied"}`))
	}))

	_, err := client.GetUser(context.Background())

	require.Error(t, err)
	assert.True(t, model.IsUnauthorized(err))
}

func TestDo_SessionCookieAccompaniesLaterRequests(t *testing.T) {
	var sawCookie bool
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "token-abc", Path: "/"})
		case "/users/me":
			cookie, err := r.Cookie(testCookieName)
			if err == nil && cookie.Value == "token-abc" {
				sawCookie = true
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "u1", "fullName": "Jane", "email": "jane@example.com", "role": "ADMIN"}`))
		}
	}))

	require.NoError(t, client.Login(context.Background(), model.LoginDTO{}))

	user, err := client.GetUser(context.Background())

	require.NoError(t, err)
	assert.True(t, sawCookie)
	assert.Equal(t, model.RoleAdmin, user.Role)
}
