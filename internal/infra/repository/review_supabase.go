package repository

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/supabase"
)

type ReviewSupabaseRepository struct {
	client *supabase.Client
}

func NewReviewSupabaseRepository(client *supabase.Client) *ReviewSupabaseRepository {
	return &ReviewSupabaseRepository{client: client}
}

// ListApprovedShowcase is the home-page teaser: four newest approved
// reviews, selected columns only.
func (r *ReviewSupabaseRepository) ListApprovedShowcase(ctx context.Context) ([]models.Review, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "reviews",
		Columns: "id,rating,comment,created_at",
		Filter:  &supabase.Filter{Column: "is_approved", Op: supabase.OpEq, Value: "true"},
		Order:   "created_at.desc",
		RangeTo: 3,
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Review]("reviews", raw)
}

func (r *ReviewSupabaseRepository) ListApproved(ctx context.Context) ([]models.Review, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "reviews",
		Filter: &supabase.Filter{Column: "is_approved", Op: supabase.OpEq, Value: "true"},
		Order:  "created_at.desc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Review]("reviews", raw)
}

func (r *ReviewSupabaseRepository) ListByStylist(ctx context.Context, stylistID int64) ([]models.Review, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "reviews",
		Filter: &supabase.Filter{Column: "stylist_id", Op: supabase.OpEq, Value: itoa(stylistID)},
		Order:  "created_at.desc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Review]("reviews", raw)
}

func (r *ReviewSupabaseRepository) ListByService(ctx context.Context, serviceID int64) ([]models.Review, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "reviews",
		Filter: &supabase.Filter{Column: "service_id", Op: supabase.OpEq, Value: itoa(serviceID)},
		Order:  "created_at.desc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Review]("reviews", raw)
}

func (r *ReviewSupabaseRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table: "reviews",
		Order: "created_at.desc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Review]("reviews", raw)
}

func (r *ReviewSupabaseRepository) HasReviewForAppointment(ctx context.Context, appointmentID int64) bool {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "reviews",
		Filter: &supabase.Filter{Column: "appointment_id", Op: supabase.OpEq, Value: itoa(appointmentID)},
	})
	if err != nil {
		return false
	}
	rows, err := supabase.Rows[models.Review]("reviews", raw)
	return err == nil && len(rows) > 0
}

type ReviewInput struct {
	UserID        int64  `json:"user_id"`
	ServiceID     *int64 `json:"service_id,omitempty"`
	StylistID     *int64 `json:"stylist_id,omitempty"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	IsApproved    bool   `json:"is_approved"`
}

func (r *ReviewSupabaseRepository) CreateReview(ctx context.Context, in ReviewInput) error {
	_, err := r.client.Insert(ctx, "reviews", in)
	return err
}

func (r *ReviewSupabaseRepository) ApproveReview(ctx context.Context, reviewID int64) error {
	patch := struct {
		IsApproved bool `json:"is_approved"`
	}{IsApproved: true}

	_, err := r.client.AsAdmin().Update(ctx, "reviews", itoa(reviewID), patch)
	return err
}

func (r *ReviewSupabaseRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	return r.client.AsAdmin().Delete(ctx, "reviews", itoa(reviewID))
}
