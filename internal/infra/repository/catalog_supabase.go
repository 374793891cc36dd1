package repository

import (
	"context"

	"github.com/velvetrow/salon-booking/internal/models"
	"github.com/velvetrow/salon-booking/internal/supabase"
)

// CatalogSupabaseRepository reads and mutates the service and stylist
// catalog. Mutations run on the elevated tier; they are only reachable from
// admin routes.
type CatalogSupabaseRepository struct {
	client *supabase.Client
}

func NewCatalogSupabaseRepository(client *supabase.Client) *CatalogSupabaseRepository {
	return &CatalogSupabaseRepository{client: client}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *CatalogSupabaseRepository) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table: "service_categories",
		Order: "name.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.ServiceCategory]("service_categories", raw)
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CatalogSupabaseRepository) CreateCategory(ctx context.Context, in CategoryInput) error {
	_, err := r.client.AsAdmin().Insert(ctx, "service_categories", in)
	return err
}

// --------------------------------------------------
// Services
// --------------------------------------------------

// ListServicesShowcase is the home-page teaser: four cheapest active
// services, selected columns only.
func (r *CatalogSupabaseRepository) ListServicesShowcase(ctx context.Context) ([]models.Service, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "services",
		Columns: "id,name,description,price",
		Filter:  &supabase.Filter{Column: "is_active", Op: supabase.OpEq, Value: "true"},
		Order:   "price.asc",
		RangeTo: 3,
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Service]("services", raw)
}

func (r *CatalogSupabaseRepository) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "services",
		Filter: &supabase.Filter{Column: "is_active", Op: supabase.OpEq, Value: "true"},
		Order:  "name.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Service]("services", raw)
}

func (r *CatalogSupabaseRepository) ListServicesByCategory(ctx context.Context, categoryID int64) ([]models.Service, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "services",
		Filter: &supabase.Filter{Column: "category_id", Op: supabase.OpEq, Value: itoa(categoryID)},
		Order:  "price.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Service]("services", raw)
}

func (r *CatalogSupabaseRepository) ListAllServices(ctx context.Context) ([]models.Service, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table: "services",
		Order: "name.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Service]("services", raw)
}

func (r *CatalogSupabaseRepository) GetService(ctx context.Context, serviceID int64) (*models.Service, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "services",
		Filter: &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(serviceID)},
	})
	if err != nil {
		return nil, err
	}
	return supabase.Row[models.Service]("services", raw)
}

// GetServiceWithCategory pulls the service and then its category: two
// sequential point lookups, not a join.
func (r *CatalogSupabaseRepository) GetServiceWithCategory(ctx context.Context, serviceID int64) (*models.Service, error) {
	service, err := r.GetService(ctx, serviceID)
	if err != nil || service == nil {
		return nil, err
	}

	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "service_categories",
		Filter: &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: service.CategoryID.String()},
	})
	if err == nil {
		if category, derr := supabase.Row[models.ServiceCategory]("service_categories", raw); derr == nil && category != nil {
			service.Category = category
			service.CategoryName = category.Name
		}
	}
	return service, nil
}

type ServiceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  int64  `json:"category_id"`
	Price       string `json:"price"`
	Duration    int    `json:"duration"`
	IsActive    bool   `json:"is_active"`
}

func (r *CatalogSupabaseRepository) CreateService(ctx context.Context, in ServiceInput) error {
	_, err := r.client.AsAdmin().Insert(ctx, "services", in)
	return err
}

func (r *CatalogSupabaseRepository) UpdateService(ctx context.Context, serviceID int64, in ServiceInput) error {
	_, err := r.client.AsAdmin().Update(ctx, "services", itoa(serviceID), in)
	return err
}

func (r *CatalogSupabaseRepository) DeleteService(ctx context.Context, serviceID int64) error {
	return r.client.AsAdmin().Delete(ctx, "services", itoa(serviceID))
}

func (r *CatalogSupabaseRepository) CountServices(ctx context.Context) int {
	return countRows(ctx, r.client, "services")
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

// ListStylistsShowcase is the home-page teaser: five active stylists,
// selected columns only.
func (r *CatalogSupabaseRepository) ListStylistsShowcase(ctx context.Context) ([]models.Stylist, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "stylists",
		Columns: "id,name,bio,profile_image,experience_years",
		Filter:  &supabase.Filter{Column: "is_active", Op: supabase.OpEq, Value: "true"},
		RangeTo: 4,
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Stylist]("stylists", raw)
}

func (r *CatalogSupabaseRepository) ListActiveStylists(ctx context.Context) ([]models.Stylist, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "stylists",
		Filter: &supabase.Filter{Column: "is_active", Op: supabase.OpEq, Value: "true"},
		Order:  "name.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Stylist]("stylists", raw)
}

func (r *CatalogSupabaseRepository) ListAllStylists(ctx context.Context) ([]models.Stylist, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table: "stylists",
		Order: "name.asc",
	})
	if err != nil {
		return nil, err
	}
	return supabase.Rows[models.Stylist]("stylists", raw)
}

func (r *CatalogSupabaseRepository) GetStylist(ctx context.Context, stylistID int64) (*models.Stylist, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "stylists",
		Filter: &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(stylistID)},
	})
	if err != nil {
		return nil, err
	}
	return supabase.Row[models.Stylist]("stylists", raw)
}

// GetStylistDetails loads a stylist and the services they offer, resolved
// through the join table one point lookup at a time.
func (r *CatalogSupabaseRepository) GetStylistDetails(ctx context.Context, stylistID int64) (*models.Stylist, error) {
	stylist, err := r.GetStylist(ctx, stylistID)
	if err != nil || stylist == nil {
		return nil, err
	}

	serviceIDs, err := r.ListStylistServiceIDs(ctx, stylistID)
	if err != nil {
		return stylist, nil
	}
	stylist.ServiceIDs = serviceIDs

	for _, serviceID := range serviceIDs {
		service, err := r.GetService(ctx, serviceID)
		if err != nil || service == nil {
			continue
		}
		stylist.Services = append(stylist.Services, *service)
	}
	return stylist, nil
}

func (r *CatalogSupabaseRepository) ListStylistServiceIDs(ctx context.Context, stylistID int64) ([]int64, error) {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "stylist_services",
		Filter: &supabase.Filter{Column: "stylist_id", Op: supabase.OpEq, Value: itoa(stylistID)},
	})
	if err != nil {
		return nil, err
	}

	joins, err := supabase.Rows[models.StylistService]("stylist_services", raw)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(joins))
	for _, j := range joins {
		ids = append(ids, j.ServiceID.Int64())
	}
	return ids, nil
}

type StylistInput struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImage    string `json:"profile_image"`
	ExperienceYears int    `json:"experience_years"`
	IsActive        bool   `json:"is_active"`
}

// CreateStylist returns the new stylist's id so the caller can attach
// service associations.
func (r *CatalogSupabaseRepository) CreateStylist(ctx context.Context, in StylistInput) (int64, error) {
	raw, err := r.client.AsAdmin().Insert(ctx, "stylists", in)
	if err != nil {
		return 0, err
	}

	created, err := supabase.Row[models.Stylist]("stylists", raw)
	if err != nil {
		return 0, err
	}
	if created == nil {
		return 0, nil
	}
	return created.ID.Int64(), nil
}

func (r *CatalogSupabaseRepository) UpdateStylist(ctx context.Context, stylistID int64, in StylistInput) error {
	_, err := r.client.AsAdmin().Update(ctx, "stylists", itoa(stylistID), in)
	return err
}

func (r *CatalogSupabaseRepository) SetStylistPhoto(ctx context.Context, stylistID int64, url string) error {
	patch := struct {
		ProfileImage string `json:"profile_image"`
	}{ProfileImage: url}

	_, err := r.client.AsAdmin().Update(ctx, "stylists", itoa(stylistID), patch)
	return err
}

// ReplaceStylistServices drops every join row for the stylist and inserts
// the new set, one call per row.
func (r *CatalogSupabaseRepository) ReplaceStylistServices(ctx context.Context, stylistID int64, serviceIDs []int64) error {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:  "stylist_services",
		Filter: &supabase.Filter{Column: "stylist_id", Op: supabase.OpEq, Value: itoa(stylistID)},
	})
	if err == nil {
		if joins, derr := supabase.Rows[models.StylistService]("stylist_services", raw); derr == nil {
			for _, j := range joins {
				_ = r.client.AsAdmin().Delete(ctx, "stylist_services", j.ID.String())
			}
		}
	}

	for _, serviceID := range serviceIDs {
		join := struct {
			StylistID int64 `json:"stylist_id"`
			ServiceID int64 `json:"service_id"`
		}{StylistID: stylistID, ServiceID: serviceID}

		if _, err := r.client.AsAdmin().Insert(ctx, "stylist_services", join); err != nil {
			return err
		}
	}
	return nil
}

// DeleteStylist removes the stylist's join rows first, then the stylist.
func (r *CatalogSupabaseRepository) DeleteStylist(ctx context.Context, stylistID int64) error {
	if err := r.ReplaceStylistServices(ctx, stylistID, nil); err != nil {
		return err
	}
	return r.client.AsAdmin().Delete(ctx, "stylists", itoa(stylistID))
}

func (r *CatalogSupabaseRepository) CountStylists(ctx context.Context) int {
	return countRows(ctx, r.client, "stylists")
}

// GetServiceName is a point lookup used to decorate listings.
func (r *CatalogSupabaseRepository) GetServiceName(ctx context.Context, serviceID int64) string {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "services",
		Columns: "id,name",
		Filter:  &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(serviceID)},
	})
	if err != nil {
		return ""
	}
	service, err := supabase.Row[models.Service]("services", raw)
	if err != nil || service == nil {
		return ""
	}
	return service.Name
}

// GetStylistName is a point lookup used to decorate listings.
func (r *CatalogSupabaseRepository) GetStylistName(ctx context.Context, stylistID int64) string {
	raw, err := r.client.Select(ctx, supabase.SelectQuery{
		Table:   "stylists",
		Columns: "id,name",
		Filter:  &supabase.Filter{Column: "id", Op: supabase.OpEq, Value: itoa(stylistID)},
	})
	if err != nil {
		return ""
	}
	stylist, err := supabase.Row[models.Stylist]("stylists", raw)
	if err != nil || stylist == nil {
		return ""
	}
	return stylist.Name
}
