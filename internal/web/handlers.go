package web

import (
	"net/http"
	"time"

	"github.com/jeffoo713/lightBnB/internal/property"
	"github.com/jeffoo713/lightBnB/internal/reservation"
	"github.com/jeffoo713/lightBnB/internal/review"
	"github.com/jeffoo713/lightBnB/internal/user"
)

func (s *Server) handleSearchProperties(w http.ResponseWriter, r *http.Request) {
	opts := property.SearchOptions{City: r.URL.Query().Get("city")}

	owner, err := queryInt64(r, "owner_id")
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if owner != nil {
		opts.OwnerID = *owner
	}

	if opts.MinimumPricePerNight, err = queryInt64(r, "minimum_price_per_night"); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if opts.MaximumPricePerNight, err = queryInt64(r, "maximum_price_per_night"); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if opts.MinimumRating, err = queryFloat(r, "minimum_rating"); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := queryInt64(r, "limit")
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	n := property.DefaultLimit
	if limit != nil {
		n = int(*limit)
	}

	props, err := s.properties.Search(r.Context(), opts, n)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, props, http.StatusOK)
}

func (s *Server) handleAddProperty(w http.ResponseWriter, r *http.Request) {
	var np property.NewProperty
	if err := decodeBody(r, &np); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := s.properties.Add(r.Context(), np)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, p, http.StatusCreated)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}

	reviews, err := s.reviews.ListByProperty(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, reviews, http.StatusOK)
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiError(w, "invalid property ID", http.StatusBadRequest)
		return
	}

	var req struct {
		GuestID int64  `json:"guest_id"`
		Rating  int    `json:"rating"`
		Message string `json:"message"`
	}
	if err := decodeBody(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	rv, err := s.reviews.Add(r.Context(), review.NewReview{
		GuestID:    req.GuestID,
		PropertyID: id,
		Rating:     req.Rating,
		Message:    req.Message,
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, rv, http.StatusCreated)
}

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	guestID, err := queryInt64(r, "guest_id")
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if guestID == nil {
		apiError(w, "guest_id is required", http.StatusBadRequest)
		return
	}

	limit, err := queryInt64(r, "limit")
	if err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}
	n := reservation.DefaultLimit
	if limit != nil {
		n = int(*limit)
	}

	list, err := s.reservations.ListByGuest(r.Context(), *guestID, n)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, list, http.StatusOK)
}

func (s *Server) handleAddReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GuestID    int64  `json:"guest_id"`
		PropertyID int64  `json:"property_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
	}
	if err := decodeBody(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(reservation.DateLayout, req.StartDate)
	if err != nil {
		apiError(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(reservation.DateLayout, req.EndDate)
	if err != nil {
		apiError(w, "end_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	res, err := s.reservations.Add(r.Context(), reservation.NewReservation{
		GuestID:    req.GuestID,
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, res, http.StatusCreated)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var nu user.NewUser
	if err := decodeBody(r, &nu); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	u, err := s.accounts.Register(r.Context(), nu)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, u, http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	u, err := s.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, u, http.StatusOK)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		apiError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	u, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	apiJSON(w, u, http.StatusOK)
}
