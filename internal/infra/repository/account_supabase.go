package repository

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/supabase"
)

type AccountSupabaseRepository struct {
	client *supabase.Client
}

func NewAccountSupabaseRepository(client *supabase.Client) *AccountSupabaseRepository {
	return &AccountSupabaseRepository{client: client}
}

func (r *AccountSupabaseRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "users",
		Filter: &supabase.Filter{Column: "username", Op: supabase.OpEq, Value: username},
	})
	if err != nil {
		return nil, err
	}
	return supabase.Row[models.User]("users", raw)
}

func (r *AccountSupabaseRepository) GetUsername(ctx context.Context, userID int64) string {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "users",
		Columns: "id,username",
		Filter:  &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(userID)},
	})
	if err != nil {
		return ""
	}
	user, err := supabase.Row[models.User]("users", raw)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}

type UserInput struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role"`
}

func (r *AccountSupabaseRepository) CreateUser(ctx context.Context, in UserInput) error {
	_, err := r.client.Insert(ctx, "users", in)
	return err
}

func (r *AccountSupabaseRepository) CountUsers(ctx context.Context) int {
	return countRows(ctx, r.client, "users")
}
