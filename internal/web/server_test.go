package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/jeffoo713/lightBnB/internal/dberr"
	"github.com/jeffoo713/lightBnB/internal/dbtest"
	"github.com/jeffoo713/lightBnB/internal/property"
	"github.com/jeffoo713/lightBnB/internal/reservation"
	"github.com/jeffoo713/lightBnB/internal/review"
	"github.com/jeffoo713/lightBnB/internal/user"
)

func testServer(t *testing.T) (*Server, *sqlx.DB) {
	t.Helper()
	d := dbtest.Open(t)
	return NewServer(d), d
}

func apiRequest(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}

	r := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)

	w := apiRequest(t, srv, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q", ct)
	}
}

func TestSearchProperties(t *testing.T) {
	srv, d := testServer(t)
	owner := dbtest.InsertUser(t, d, "Owner", "owner@example.com")
	guest := dbtest.InsertUser(t, d, "Guest", "guest@example.com")
	for i, c := range []int64{9000, 4000, 20000, 12000} {
		id := dbtest.InsertProperty(t, d, owner, fmt.Sprintf("Place %d", i), "Vancouver", c)
		dbtest.InsertReview(t, d, guest, id, 4)
	}
	dbtest.InsertProperty(t, d, owner, "Far", "Calgary", 100)

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"city and limit", "?city=VANCOUVER&limit=3", []int64{4000, 9000, 12000}},
		{"price range", "?minimum_price_per_night=50&maximum_price_per_night=150", []int64{9000, 12000}},
		{"minimum rating excludes unreviewed", "?minimum_rating=4", []int64{4000, 9000, 12000, 20000}},
		{"owner", fmt.Sprintf("?owner_id=%d&city=calg", owner), []int64{100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apiRequest(t, srv, "GET", "/api/properties"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}

			var props []property.Property
			decode(t, w, &props)
			if len(props) != len(tt.want) {
				t.Fatalf("got %d properties, want %d", len(props), len(tt.want))
			}
			for i, p := range props {
				if p.CostPerNight != tt.want[i] {
					t.Errorf("property %d cost = %d, want %d", i, p.CostPerNight, tt.want[i])
				}
			}
		})
	}
}

func TestSearchPropertiesBadQuery(t *testing.T) {
	srv, _ := testServer(t)

	for _, q := range []string{
		"?limit=ten",
		"?owner_id=x",
		"?minimum_rating=high",
		"?minimum_price_per_night=1.5",
		"?minimum_price_per_night=10&maximum_price_per_night=100000000000000000",
		"?minimum_price_per_night=-5&maximum_price_per_night=100",
	} {
		w := apiRequest(t, srv, "GET", "/api/properties"+q, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, w.Code)
		}
	}
}

func TestAddProperty(t *testing.T) {
	srv, d := testServer(t)
	owner := dbtest.InsertUser(t, d, "Owner", "owner@example.com")

	w := apiRequest(t, srv, "POST", "/api/properties", property.NewProperty{
		OwnerID:      owner,
		Title:        "Harbour View",
		CostPerNight: 12500,
		Street:       "200 Burrard St",
		City:         "Vancouver",
		Country:      "Canada",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var p property.Property
	decode(t, w, &p)
	if p.ID == 0 || p.Title != "Harbour View" || p.OwnerID != owner {
		t.Errorf("got %+v", p)
	}
}

func TestAddPropertyErrors(t *testing.T) {
	srv, _ := testServer(t)

	tests := []struct {
		name string
		body interface{}
		code int
	}{
		{"missing fields", property.NewProperty{Title: "x"}, http.StatusBadRequest},
		{"unknown owner", property.NewProperty{OwnerID: 999, Title: "x", Street: "s", City: "c", Country: "c"}, http.StatusConflict},
		{"unknown field", map[string]string{"nope": "x"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apiRequest(t, srv, "POST", "/api/properties", tt.body)
			if w.Code != tt.code {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
		})
	}
}

func TestReviews(t *testing.T) {
	srv, d := testServer(t)
	owner := dbtest.InsertUser(t, d, "Owner", "owner@example.com")
	guest := dbtest.InsertUser(t, d, "Guest", "guest@example.com")
	prop := dbtest.InsertProperty(t, d, owner, "Loft", "Vancouver", 9000)
	path := fmt.Sprintf("/api/properties/%d/reviews", prop)

	w := apiRequest(t, srv, "POST", path, map[string]interface{}{"guest_id": guest, "rating": 5, "message": "Great"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	w = apiRequest(t, srv, "POST", path, map[string]interface{}{"guest_id": guest, "rating": 9})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out of range rating: status = %d, want 400", w.Code)
	}

	w = apiRequest(t, srv, "GET", path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var reviews []review.Review
	decode(t, w, &reviews)
	if len(reviews) != 1 || reviews[0].Message != "Great" || reviews[0].PropertyID != prop {
		t.Errorf("got %+v", reviews)
	}

	w = apiRequest(t, srv, "GET", "/api/properties/abc/reviews", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", w.Code)
	}
}

func TestReservations(t *testing.T) {
	srv, d := testServer(t)
	owner := dbtest.InsertUser(t, d, "Owner", "owner@example.com")
	guest := dbtest.InsertUser(t, d, "Guest", "guest@example.com")
	prop := dbtest.InsertProperty(t, d, owner, "Loft", "Vancouver", 9000)

	for _, start := range []string{"2026-05-01", "2026-03-01", "2026-04-01"} {
		w := apiRequest(t, srv, "POST", "/api/reservations", map[string]interface{}{
			"guest_id": guest, "property_id": prop, "start_date": start, "end_date": start[:8] + "05",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("add %s: status = %d, body = %s", start, w.Code, w.Body.String())
		}
	}

	w := apiRequest(t, srv, "GET", fmt.Sprintf("/api/reservations?guest_id=%d&limit=2", guest), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list []reservation.Reservation
	decode(t, w, &list)
	if len(list) != 2 {
		t.Fatalf("got %d reservations, want 2", len(list))
	}
	if got := list[0].StartDate.Format(reservation.DateLayout); got != "2026-03-01" {
		t.Errorf("first start = %s, want 2026-03-01", got)
	}
}

func TestReservationErrors(t *testing.T) {
	srv, d := testServer(t)
	guest := dbtest.InsertUser(t, d, "Guest", "guest@example.com")

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
	}{
		{"missing guest", "GET", "/api/reservations", nil, http.StatusBadRequest},
		{"bad date", "POST", "/api/reservations", map[string]interface{}{
			"guest_id": guest, "property_id": 1, "start_date": "May 1", "end_date": "2026-05-03",
		}, http.StatusBadRequest},
		{"end before start", "POST", "/api/reservations", map[string]interface{}{
			"guest_id": guest, "property_id": 1, "start_date": "2026-05-03", "end_date": "2026-05-01",
		}, http.StatusBadRequest},
		{"unknown property", "POST", "/api/reservations", map[string]interface{}{
			"guest_id": guest, "property_id": 404, "start_date": "2026-05-01", "end_date": "2026-05-03",
		}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := apiRequest(t, srv, tt.method, tt.path, tt.body)
			if w.Code != tt.code {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.code, w.Body.String())
			}
		})
	}
}

func TestUsers(t *testing.T) {
	srv, _ := testServer(t)

	w := apiRequest(t, srv, "POST", "/users", user.NewUser{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body = %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("password leaked: %s", w.Body.String())
	}
	var u user.User
	decode(t, w, &u)

	w = apiRequest(t, srv, "POST", "/users", user.NewUser{
		Name: "Ada", Email: "ada@example.com", Password: "another one",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d, want 409", w.Code)
	}

	w = apiRequest(t, srv, "POST", "/users", user.NewUser{
		Name: "Bo", Email: "bo@example.com", Password: strings.Repeat("p", 80),
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("long password: status = %d, want 400", w.Code)
	}

	w = apiRequest(t, srv, "POST", "/users/login", map[string]string{
		"email": "ada@example.com", "password": "correct horse",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = apiRequest(t, srv, "POST", "/users/login", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login: status = %d, want 401", w.Code)
	}

	w = apiRequest(t, srv, "GET", fmt.Sprintf("/users/%d", u.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}
	var got user.User
	decode(t, w, &got)
	if got.Email != "ada@example.com" {
		t.Errorf("email = %q", got.Email)
	}

	w = apiRequest(t, srv, "GET", "/users/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing user: status = %d, want 404", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t)

	w := apiRequest(t, srv, "DELETE", "/api/properties", nil)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestWriteStoreError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{dberr.New("op", dberr.KindNotFound, nil), http.StatusNotFound},
		{dberr.New("op", dberr.KindInvalid, nil), http.StatusBadRequest},
		{dberr.New("op", dberr.KindConstraint, nil), http.StatusConflict},
		{dberr.New("op", dberr.KindUnavailable, nil), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
		{user.ErrInvalidCredentials, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			w := httptest.NewRecorder()
			writeStoreError(w, httptest.NewRequest("GET", "/", nil), tt.err)
			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
			if tt.code == http.StatusInternalServerError && strings.Contains(w.Body.String(), "boom") {
				t.Error("internal error detail leaked")
			}
		})
	}
}
